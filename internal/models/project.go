package models

import (
	"strconv"
	"time"
)

// Project represents a billable project owned by an account
type Project struct {
	ProjectID     string     `json:"project_id"`
	AccountID     string     `json:"account_id"`
	ProjectName   string     `json:"project_name"`
	Status        string     `json:"status"` // active, on_hold
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"` // open-ended when nil
	BudgetedHours int        `json:"budgeted_hours"`
	Priority      string     `json:"priority"`
}

func (p Project) Columns() []string {
	return []string{"project_id", "account_id", "project_name", "status", "start_date", "end_date", "budgeted_hours", "priority"}
}

func (p Project) Values() []string {
	return []string{
		p.ProjectID, p.AccountID, p.ProjectName, p.Status, FormatDate(p.StartDate),
		nullableDate(p.EndDate), strconv.Itoa(p.BudgetedHours), p.Priority,
	}
}
