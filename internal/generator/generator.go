// Package generator builds the synthetic time-tracking dataset.
//
// Every step draws from one explicitly passed Rand, so a seed fully
// determines the output.
package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/balkashynov/trackgen/internal/models"
)

// DefaultDuplicateRatio is the share of sessions appended again as noise
const DefaultDuplicateRatio = 0.005

// Options controls a generation run
type Options struct {
	Seed           uint64
	Start          time.Time
	End            time.Time
	AsOf           time.Time // reference for relative dates; defaults to End
	DuplicateRatio float64
}

// Dataset holds every generated table plus the activity model behind it
type Dataset struct {
	Accounts     []models.Account
	Users        []models.User
	Applications []models.Application
	Projects     []models.Project
	Tasks        []models.Task
	Sessions     []models.Session

	Profiles Profiles
}

// Table is a named set of rows ready to be written
type Table struct {
	Name    string
	Columns []string
	Rows    []models.Record
}

// Tables returns the dataset as artifacts in load order
func (d *Dataset) Tables() []Table {
	return []Table{
		newTable(models.ArtifactAccounts, d.Accounts),
		newTable(models.ArtifactUsers, d.Users),
		newTable(models.ArtifactApplications, d.Applications),
		newTable(models.ArtifactProjects, d.Projects),
		newTable(models.ArtifactTasks, d.Tasks),
		newTable(models.ArtifactSessions, d.Sessions),
	}
}

func newTable[T models.Record](name string, rows []T) Table {
	var zero T
	t := Table{Name: name, Columns: zero.Columns(), Rows: make([]models.Record, len(rows))}
	for i, r := range rows {
		t.Rows[i] = r
	}
	return t
}

// Generate builds the full dataset
func Generate(opts Options, logger *slog.Logger) (*Dataset, error) {
	if opts.End.Before(opts.Start) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			models.FormatDate(opts.End), models.FormatDate(opts.Start))
	}
	if logger == nil {
		logger = slog.Default()
	}
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = opts.End
	}
	ratio := opts.DuplicateRatio
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("duplicate ratio %g must be between 0 and 1", ratio)
	}
	if ratio == 0 {
		ratio = DefaultDuplicateRatio
	}

	r := NewRand(opts.Seed)
	ds := &Dataset{}

	ds.Accounts = GenerateAccounts(r)
	logger.Info("generated accounts", "rows", len(ds.Accounts))

	ds.Users = GenerateUsers(r, asOf)
	logger.Info("generated users", "rows", len(ds.Users))

	ds.Applications = GenerateApplications(r)
	logger.Info("generated applications", "rows", len(ds.Applications))

	ds.Projects = GenerateProjects(r, asOf)
	logger.Info("generated projects", "rows", len(ds.Projects))

	ds.Tasks = GenerateTasks(r, ds.Projects, asOf)
	logger.Info("generated tasks", "rows", len(ds.Tasks))

	ds.Profiles = BuildProfiles(ds.Users, opts.Start)
	counts := ds.Profiles.CountByTier()
	logger.Info("activity tiers",
		"high", counts[TierHigh], "moderate", counts[TierModerate],
		"low", counts[TierLow], "churned", counts[TierChurned])

	window := Window{Start: opts.Start, End: opts.End}
	catalog := Catalog{
		Users:        ds.Users,
		Applications: ds.Applications,
		Projects:     ds.Projects,
		Tasks:        ds.Tasks,
	}
	sessions := GenerateSessions(r, window, catalog, ds.Profiles, logger)
	ds.Sessions = AddDuplicates(r, sessions, ratio)
	logger.Info("generated sessions", "rows", len(ds.Sessions), "duplicates", len(ds.Sessions)-len(sessions))

	return ds, nil
}
