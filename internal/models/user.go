package models

import (
	"strconv"
	"time"
)

// User represents an employee of an account
type User struct {
	UserID              string    `json:"user_id"`
	AccountID           string    `json:"account_id"`
	Email               string    `json:"email"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Role                string    `json:"role"`
	Department          string    `json:"department"`
	ManagerID           *string   `json:"manager_id"` // nil for the first users
	HireDate            time.Time `json:"hire_date"`
	Status              string    `json:"status"`
	Timezone            string    `json:"timezone"`
	WeeklyCapacityHours int       `json:"weekly_capacity_hours"`
}

func (u User) Columns() []string {
	return []string{
		"user_id", "account_id", "email", "first_name", "last_name", "role", "department",
		"manager_id", "hire_date", "status", "timezone", "weekly_capacity_hours",
	}
}

func (u User) Values() []string {
	return []string{
		u.UserID, u.AccountID, u.Email, u.FirstName, u.LastName, u.Role, u.Department,
		nullable(u.ManagerID), FormatDate(u.HireDate), u.Status, u.Timezone,
		strconv.Itoa(u.WeeklyCapacityHours),
	}
}
