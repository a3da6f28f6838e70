package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/balkashynov/trackgen/internal/db"
	"github.com/balkashynov/trackgen/internal/models"
)

// VerifyModel shows per-table row counts of the store
type VerifyModel struct {
	table  table.Model
	dbPath string
	total  int64
	runID  string
	empty  []string // tables with zero rows

	naturalHeight int // table height that shows every row
	quitting      bool
}

// viewChrome is the number of lines View renders around the table
const viewChrome = 9


// NewVerifyModel builds the report from table counts and the latest load run
func NewVerifyModel(dbPath string, counts []db.TableCount, runs []models.LoadRun) VerifyModel {
	loadedAt := make(map[string]string, len(runs))
	var runID string
	for _, r := range runs {
		loadedAt[r.Table] = r.LoadedAt.Format("2006-01-02 15:04:05")
		runID = r.RunID
	}

	columns := []table.Column{
		{Title: "TABLE", Width: 32},
		{Title: "ROWS", Width: 12},
		{Title: "LAST LOAD", Width: 20},
	}

	m := VerifyModel{dbPath: dbPath, runID: runID}
	rows := make([]table.Row, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, table.Row{c.Name, humanize.Comma(c.Rows), loadedAt[c.Name]})
		m.total += c.Rows
		if c.Rows == 0 {
			m.empty = append(m.empty, c.Name)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		BorderBottom(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(false)
	t.SetStyles(styles)

	m.table = t
	m.naturalHeight = min(len(rows)+2, 20)
	m.fitTable(0)
	return m
}

// fitTable sizes the table to the terminal height, or to its rows when the
// height is unknown.
func (m *VerifyModel) fitTable(termHeight int) {
	h := m.naturalHeight
	if termHeight > 0 {
		h = min(h, max(termHeight-viewChrome, 3))
	}
	m.table.SetHeight(h)
}

// Init initializes the model
func (m VerifyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m VerifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.fitTable(msg.Height)
		m.table.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the report
func (m VerifyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(titleStyle.Render("trackgen verify"))
	b.WriteString("\n")

	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(subtle.Render(m.dbPath))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder))
	b.WriteString(boxStyle.Render(m.table.View()))
	b.WriteString("\n")

	totalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total: %s rows", humanize.Comma(m.total))))
	if m.runID != "" {
		b.WriteString(subtle.Render(fmt.Sprintf("  ·  last run %s", m.runID)))
	}
	b.WriteString("\n")

	if len(m.empty) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		b.WriteString(warnStyle.Render("Empty: " + strings.Join(m.empty, ", ")))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString(helpStyle.Render("↑/↓ navigate • q/esc quit"))
	return b.String()
}
