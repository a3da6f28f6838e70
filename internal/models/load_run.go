package models

import "time"

// LoadRun records one table replacement performed by the loader
type LoadRun struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	RunID      string    `gorm:"not null;index" json:"run_id"`
	Table      string    `gorm:"column:table_name;not null" json:"table_name"`
	SourceFile string    `gorm:"not null" json:"source_file"`
	RowCount   int64     `gorm:"not null" json:"row_count"`
	LoadedAt   time.Time `gorm:"not null" json:"loaded_at"`
}

// TableName overrides the gorm default
func (LoadRun) TableName() string {
	return "load_runs"
}
