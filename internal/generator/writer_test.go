package generator

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/trackgen/internal/models"
)

func TestWriteDataset_WritesEveryArtifact(t *testing.T) {
	opts := defaultOptions()
	opts.End = windowStart.AddDate(0, 0, 20)
	ds, err := Generate(opts, quietLogger())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "data", "raw")
	written, err := WriteDataset(dir, ds)
	require.NoError(t, err)
	require.Len(t, written, len(models.Artifacts))

	for i, w := range written {
		assert.Equal(t, models.Artifacts[i], w.Name)
		assert.Equal(t, filepath.Join(dir, models.ArtifactFile(w.Name)), w.Path)

		records := readCSV(t, w.Path)
		require.NotEmpty(t, records, w.Name)
		assert.Equal(t, ds.Tables()[i].Columns, records[0], w.Name)
		assert.Len(t, records, w.Rows+1, w.Name)
	}
}

func TestWriteDataset_NullsAndFormats(t *testing.T) {
	opts := defaultOptions()
	opts.End = windowStart.AddDate(0, 0, 20)
	ds, err := Generate(opts, quietLogger())
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = WriteDataset(dir, ds)
	require.NoError(t, err)

	users := readCSV(t, filepath.Join(dir, "dim_users.csv"))
	managerCol := indexOf(users[0], "manager_id")
	require.GreaterOrEqual(t, managerCol, 0)
	assert.Equal(t, "", users[1][managerCol], "first user has no manager")
	assert.Regexp(t, `^USR\d{4}$`, users[unmanagedUsers+1][managerCol])

	sessions := readCSV(t, filepath.Join(dir, "fact_activity_sessions.csv"))
	startCol := indexOf(sessions[0], "start_timestamp")
	durCol := indexOf(sessions[0], "duration_minutes")
	manualCol := indexOf(sessions[0], "is_manual_entry")
	for _, rec := range sessions[1:] {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:00$`, rec[startCol])
		assert.Regexp(t, `^\d+\.\d{2}$`, rec[durCol])
		assert.Contains(t, []string{"True", "False"}, rec[manualCol])
	}
}

func TestWriteDataset_UnwritableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := WriteDataset(filepath.Join(file, "raw"), &Dataset{})
	assert.Error(t, err)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
