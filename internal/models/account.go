package models

import "time"

// Account represents a customer company
type Account struct {
	AccountID        string    `json:"account_id"`
	CompanyName      string    `json:"company_name"`
	Industry         string    `json:"industry"`
	CompanySize      string    `json:"company_size"`
	AccountStatus    string    `json:"account_status"`
	SubscriptionTier string    `json:"subscription_tier"` // pro, business, enterprise
	CreatedDate      time.Time `json:"account_created_date"`
	PrimaryContact   string    `json:"primary_contact"`
	Timezone         string    `json:"timezone"`
}

func (a Account) Columns() []string {
	return []string{
		"account_id", "company_name", "industry", "company_size", "account_status",
		"subscription_tier", "account_created_date", "primary_contact", "timezone",
	}
}

func (a Account) Values() []string {
	return []string{
		a.AccountID, a.CompanyName, a.Industry, a.CompanySize, a.AccountStatus,
		a.SubscriptionTier, FormatDate(a.CreatedDate), a.PrimaryContact, a.Timezone,
	}
}
