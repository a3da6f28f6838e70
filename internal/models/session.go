package models

import (
	"strconv"
	"time"
)

// Session represents one tracked block of activity in a single app
type Session struct {
	SessionID          string    `json:"session_id"`
	UserID             string    `json:"user_id"`
	AccountID          string    `json:"account_id"`
	AppID              string    `json:"app_id"`
	ProjectID          *string   `json:"project_id"`
	TaskID             *string   `json:"task_id"`
	Date               time.Time `json:"date"`
	StartTimestamp     time.Time `json:"start_timestamp"`
	DurationMinutes    float64   `json:"duration_minutes"` // 5..180
	KeyboardStrokes    int       `json:"keyboard_strokes"`
	MouseClicks        int       `json:"mouse_clicks"`
	ActivityPercentage float64   `json:"activity_percentage"` // 0..100
	IsManualEntry      bool      `json:"is_manual_entry"`
	ScreenshotCount    int       `json:"screenshot_count"`
}

func (s Session) Columns() []string {
	return []string{
		"session_id", "user_id", "account_id", "app_id", "project_id", "task_id", "date",
		"start_timestamp", "duration_minutes", "keyboard_strokes", "mouse_clicks",
		"activity_percentage", "is_manual_entry", "screenshot_count",
	}
}

func (s Session) Values() []string {
	return []string{
		s.SessionID, s.UserID, s.AccountID, s.AppID, nullable(s.ProjectID), nullable(s.TaskID),
		FormatDate(s.Date), FormatTimestamp(s.StartTimestamp), FormatFloat(s.DurationMinutes),
		strconv.Itoa(s.KeyboardStrokes), strconv.Itoa(s.MouseClicks),
		FormatFloat(s.ActivityPercentage), FormatBool(s.IsManualEntry), strconv.Itoa(s.ScreenshotCount),
	}
}
