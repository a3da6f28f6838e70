package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/trackgen/internal/models"
)

// TableCount is the row count of one table in the store
type TableCount struct {
	Name string
	Rows int64
}

// Verify returns the row count of every user table, ordered by name
func Verify(ctx context.Context, db *gorm.DB) ([]TableCount, error) {
	var names []string
	err := db.WithContext(ctx).
		Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name").
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	counts := make([]TableCount, 0, len(names))
	for _, name := range names {
		var n int64
		if err := db.WithContext(ctx).Table(name).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts = append(counts, TableCount{Name: name, Rows: n})
	}
	return counts, nil
}

// RecentRuns returns the audit rows of the latest load run
func RecentRuns(ctx context.Context, db *gorm.DB) ([]models.LoadRun, error) {
	var latest models.LoadRun
	err := db.WithContext(ctx).Order("id DESC").Limit(1).Find(&latest).Error
	if err != nil {
		return nil, err
	}
	if latest.ID == 0 {
		return nil, nil // No runs yet is not an error
	}

	var runs []models.LoadRun
	err = db.WithContext(ctx).
		Where("run_id = ?", latest.RunID).
		Order("id ASC").
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
