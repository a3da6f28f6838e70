package generator

import (
	"strings"

	"github.com/balkashynov/trackgen/internal/models"
)

// Fixed reference data the dimensions are built from.

var accountSeeds = []models.Account{
	{AccountID: "ACC001", CompanyName: "TechStart Inc", Industry: "Technology", CompanySize: "Small", SubscriptionTier: "pro", Timezone: "America/New_York"},
	{AccountID: "ACC002", CompanyName: "Global Services LLC", Industry: "Consulting", CompanySize: "Medium", SubscriptionTier: "enterprise", Timezone: "America/Chicago"},
	{AccountID: "ACC003", CompanyName: "Innovation Labs", Industry: "Software", CompanySize: "Large", SubscriptionTier: "pro", Timezone: "America/Los_Angeles"},
	{AccountID: "ACC004", CompanyName: "Digital Solutions Corp", Industry: "IT Services", CompanySize: "Medium", SubscriptionTier: "business", Timezone: "America/New_York"},
	{AccountID: "ACC005", CompanyName: "Creative Agency Group", Industry: "Marketing", CompanySize: "Small", SubscriptionTier: "business", Timezone: "America/Denver"},
}

var accountCreatedDates = []string{"2024-01-15", "2023-06-20", "2024-03-10", "2023-11-05", "2024-05-22"}

var applicationSeeds = []models.Application{
	// dev tools
	{AppID: "APP001", AppName: "Visual Studio Code", Category: "Development", Classification: models.Productive},
	{AppID: "APP002", AppName: "IntelliJ IDEA", Category: "Development", Classification: models.Productive},
	{AppID: "APP003", AppName: "PyCharm", Category: "Development", Classification: models.Productive},

	// project management
	{AppID: "APP005", AppName: "Jira", Category: "Productivity", Classification: models.Productive},
	{AppID: "APP006", AppName: "Trello", Category: "Productivity", Classification: models.Productive},
	{AppID: "APP008", AppName: "Notion", Category: "Productivity", Classification: models.Productive},

	// design
	{AppID: "APP009", AppName: "Figma", Category: "Design", Classification: models.Productive},
	{AppID: "APP010", AppName: "Adobe Photoshop", Category: "Design", Classification: models.Productive},

	// communication
	{AppID: "APP012", AppName: "Slack", Category: "Communication", Classification: models.Neutral},
	{AppID: "APP013", AppName: "Microsoft Teams", Category: "Communication", Classification: models.Neutral},
	{AppID: "APP014", AppName: "Zoom", Category: "Communication", Classification: models.Neutral},

	// browsers
	{AppID: "APP016", AppName: "Google Chrome", Category: "Browsing", Classification: models.Neutral},
	{AppID: "APP017", AppName: "Firefox", Category: "Browsing", Classification: models.Neutral},

	// email
	{AppID: "APP019", AppName: "Gmail", Category: "Email", Classification: models.Neutral},
	{AppID: "APP020", AppName: "Outlook", Category: "Email", Classification: models.Neutral},

	// docs
	{AppID: "APP021", AppName: "Google Docs", Category: "Documentation", Classification: models.Productive},
	{AppID: "APP022", AppName: "Microsoft Word", Category: "Documentation", Classification: models.Productive},

	// version control
	{AppID: "APP024", AppName: "GitHub Desktop", Category: "Development", Classification: models.Productive},

	// time wasters
	{AppID: "APP026", AppName: "YouTube", Category: "Entertainment", Classification: models.Unproductive},
	{AppID: "APP027", AppName: "Netflix", Category: "Entertainment", Classification: models.Unproductive},
	{AppID: "APP028", AppName: "Facebook", Category: "Social Media", Classification: models.Unproductive},
}

// classificationWeight biases app choice towards productive tools
var classificationWeight = map[string]float64{
	models.Productive:   0.6,
	models.Neutral:      0.3,
	models.Unproductive: 0.1,
}

var projectNames = []string{
	"Website Redesign", "Mobile App v2.0", "API Integration", "Database Migration",
	"Customer Portal", "Analytics Dashboard", "Marketing Campaign Q4", "Security Audit",
	"Performance Optimization", "User Onboarding Flow", "Payment Gateway",
	"Content Management System", "Email Automation", "Inventory System",
	"Reporting Module", "Search Feature", "Admin Panel", "Chat Integration",
	"Data Pipeline", "ML Model Training",
}

var (
	userRoles       = []string{"Developer", "Senior Developer", "Designer", "Product Manager", "QA Engineer"}
	userDepartments = []string{"Engineering", "Product", "Marketing", "Operations"}
	userTimezones   = []string{"America/New_York", "America/Los_Angeles"}

	// three in four projects are active
	projectStatuses   = []string{"active", "active", "active", "on_hold"}
	projectPriorities = []string{"High", "Medium", "Low"}

	taskTypes    = []string{"Bug Fix", "Feature Development", "Code Review", "Testing", "Documentation", "Meeting"}
	taskStatuses = []string{"todo", "in_progress", "completed", "blocked"}
)

// isWebBased reports whether an app runs in the browser
func isWebBased(name string) bool {
	return strings.Contains(name, "Google") || strings.Contains(name, "Gmail") || name == "Jira" || name == "Figma"
}
