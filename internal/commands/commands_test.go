package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/trackgen/internal/config"
	"github.com/balkashynov/trackgen/internal/db"
	"github.com/balkashynov/trackgen/internal/models"
)

// execute runs the command tree with an isolated config dir and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvSeed, config.EnvRawDir, config.EnvDBPath, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir(), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2025-08-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "trackgen 1.2.3 (commit abc123, built 2025-08-01)\n", out)
}

func TestHelp(t *testing.T) {
	out, err := execute(t, "help")
	require.NoError(t, err)
	for _, name := range []string{"generate", "load", "verify", "run"} {
		assert.Contains(t, out, name)
	}
}

func TestGenerate_WritesArtifacts(t *testing.T) {
	raw := filepath.Join(t.TempDir(), "raw")

	out, err := execute(t, "generate", "--out", raw, "--start", "2025-08-01", "--end", "+14 days")
	require.NoError(t, err)

	assert.Contains(t, out, "2025-08-01 to 2025-08-15 (seed 42)")
	for _, name := range models.Artifacts {
		assert.FileExists(t, filepath.Join(raw, models.ArtifactFile(name)))
		assert.Contains(t, out, name)
	}
}

func TestGenerate_RejectsInvertedWindow(t *testing.T) {
	_, err := execute(t, "generate", "--out", t.TempDir(), "--start", "2025-08-10", "--end", "2025-08-01")
	assert.Error(t, err)
}

func TestGenerate_RejectsBadDate(t *testing.T) {
	_, err := execute(t, "generate", "--out", t.TempDir(), "--start", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start")
}

func TestGenerateLoadVerify(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw")
	dbPath := filepath.Join(dir, "db", "analytics.db")

	_, err := execute(t, "generate", "--out", raw, "--seed", "7", "--end", "2025-08-10")
	require.NoError(t, err)

	out, err := execute(t, "load", "--raw", raw, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "raw_dim_accounts")
	assert.Contains(t, out, "Database ready")

	out, err = execute(t, "verify", "--db", dbPath, "--no-ui")
	require.NoError(t, err)
	assert.Contains(t, out, "TABLE")
	assert.Contains(t, out, "raw_fact_activity_sessions")

	out, err = execute(t, "verify", "--db", dbPath, "--json")
	require.NoError(t, err)

	var rows []struct {
		Table string `json:"table"`
		Rows  int64  `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	counts := map[string]int64{}
	for _, r := range rows {
		counts[r.Table] = r.Rows
	}
	assert.Equal(t, int64(5), counts["raw_dim_accounts"])
	assert.Equal(t, int64(50), counts["raw_dim_users"])
	assert.Equal(t, int64(21), counts["raw_dim_applications"])
	assert.Equal(t, int64(20), counts["raw_dim_projects"])
	assert.Equal(t, int64(len(models.Artifacts)), counts["load_runs"])
}

func TestLoad_MissingArtifactIsSkipped(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw")
	dbPath := filepath.Join(dir, "analytics.db")

	_, err := execute(t, "generate", "--out", raw, "--end", "2025-08-05")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(raw, models.ArtifactFile(models.ArtifactTasks))))

	out, err := execute(t, "load", "--raw", raw, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")
	assert.False(t, strings.Contains(out, "raw_dim_tasks "), "dim_tasks should not be loaded")
}

func TestRun_GeneratesAndLoads(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw")
	dbPath := filepath.Join(dir, "analytics.db")

	out, err := execute(t, "run", "--out", raw, "--db", dbPath, "--end", "2025-08-07")
	require.NoError(t, err)
	assert.Contains(t, out, "Raw data ready")
	assert.Contains(t, out, "Database ready")
	assert.FileExists(t, dbPath)
}

func TestVerify_MissingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "typo.db")

	_, err := execute(t, "verify", "--db", dbPath, "--no-ui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found")
	assert.NoFileExists(t, dbPath)
}

func TestVerify_EmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	store, err := db.Open(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close(store))

	out, err := execute(t, "verify", "--db", dbPath, "--no-ui")
	require.NoError(t, err)
	// the migration table is always present
	assert.Contains(t, out, "load_runs")
}
