package models

// Productivity classifications
const (
	Productive   = "productive"
	Neutral      = "neutral"
	Unproductive = "unproductive"
)

// Application represents a tracked desktop or web app
type Application struct {
	AppID          string `json:"app_id"`
	AppName        string `json:"app_name"`
	Category       string `json:"category"`
	Classification string `json:"productivity_classification"`
	IsWebBased     bool   `json:"is_web_based"`
	Version        string `json:"version"`
}

func (a Application) Columns() []string {
	return []string{"app_id", "app_name", "category", "productivity_classification", "is_web_based", "version"}
}

func (a Application) Values() []string {
	return []string{a.AppID, a.AppName, a.Category, a.Classification, FormatBool(a.IsWebBased), a.Version}
}
