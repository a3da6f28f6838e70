package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/trackgen/internal/db"
	"github.com/balkashynov/trackgen/internal/models"
)

// RunVerifyTUI starts the interactive verification report
func RunVerifyTUI(dbPath string, counts []db.TableCount, runs []models.LoadRun) error {
	model := NewVerifyModel(dbPath, counts, runs)

	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}
