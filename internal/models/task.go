package models

import (
	"strconv"
	"time"
)

// Task represents a unit of work inside a project
type Task struct {
	TaskID         string    `json:"task_id"`
	ProjectID      string    `json:"project_id"`
	TaskName       string    `json:"task_name"`
	TaskStatus     string    `json:"task_status"` // todo, in_progress, completed, blocked
	EstimatedHours int       `json:"estimated_hours"`
	CreatedDate    time.Time `json:"created_date"`
}

func (t Task) Columns() []string {
	return []string{"task_id", "project_id", "task_name", "task_status", "estimated_hours", "created_date"}
}

func (t Task) Values() []string {
	return []string{t.TaskID, t.ProjectID, t.TaskName, t.TaskStatus, strconv.Itoa(t.EstimatedHours), FormatDate(t.CreatedDate)}
}
