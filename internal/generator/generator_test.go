package generator

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	fixtureOnce sync.Once
	fixtureDS   *Dataset
	fixtureErr  error
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultOptions() Options {
	return Options{Seed: 42, Start: windowStart, End: windowEnd}
}

// fixture generates the default six-month dataset once per test binary
func fixture(t *testing.T) *Dataset {
	t.Helper()
	fixtureOnce.Do(func() {
		fixtureDS, fixtureErr = Generate(defaultOptions(), quietLogger())
	})
	require.NoError(t, fixtureErr)
	return fixtureDS
}

func TestGenerate_RowCounts(t *testing.T) {
	ds := fixture(t)

	assert.Len(t, ds.Accounts, 5)
	assert.Len(t, ds.Users, UserCount)
	assert.Len(t, ds.Applications, 21)
	assert.Len(t, ds.Projects, 20)
	assert.GreaterOrEqual(t, len(ds.Tasks), 20*3)
	assert.LessOrEqual(t, len(ds.Tasks), 20*8)
	assert.NotEmpty(t, ds.Sessions)
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a, err := Generate(defaultOptions(), quietLogger())
	require.NoError(t, err)
	b, err := Generate(defaultOptions(), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, a.Accounts, b.Accounts)
	assert.Equal(t, a.Users, b.Users)
	assert.Equal(t, a.Applications, b.Applications)
	assert.Equal(t, a.Projects, b.Projects)
	assert.Equal(t, a.Tasks, b.Tasks)
	assert.Equal(t, len(a.Sessions), len(b.Sessions))
	assert.Equal(t, a.Sessions, b.Sessions)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	opts := defaultOptions()
	opts.End = windowStart.AddDate(0, 0, 14)
	a, err := Generate(opts, quietLogger())
	require.NoError(t, err)

	opts.Seed = 7
	b, err := Generate(opts, quietLogger())
	require.NoError(t, err)

	assert.NotEqual(t, a.Users, b.Users)
}

func TestGenerate_RejectsInvertedWindow(t *testing.T) {
	opts := defaultOptions()
	opts.Start, opts.End = windowEnd, windowStart

	ds, err := Generate(opts, quietLogger())
	assert.Error(t, err)
	assert.Nil(t, ds)
}

func TestGenerate_RejectsDuplicateRatioOutOfRange(t *testing.T) {
	for _, ratio := range []float64{-0.5, 1.5} {
		opts := defaultOptions()
		opts.End = windowStart.AddDate(0, 0, 7)
		opts.DuplicateRatio = ratio

		ds, err := Generate(opts, quietLogger())
		assert.Error(t, err, "ratio %g", ratio)
		assert.Nil(t, ds)
	}
}

func TestGenerate_TablesInArtifactOrder(t *testing.T) {
	ds := fixture(t)
	tables := ds.Tables()
	require.Len(t, tables, 6)

	names := make([]string, len(tables))
	for i, tbl := range tables {
		names[i] = tbl.Name
		assert.NotEmpty(t, tbl.Columns, tbl.Name)
		for _, row := range tbl.Rows {
			assert.Len(t, row.Values(), len(tbl.Columns), tbl.Name)
			break
		}
	}
	assert.Equal(t, []string{
		"dim_accounts", "dim_users", "dim_applications",
		"dim_projects", "dim_tasks", "fact_activity_sessions",
	}, names)
	assert.Len(t, tables[5].Rows, len(ds.Sessions))
}
