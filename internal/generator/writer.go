package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/balkashynov/trackgen/internal/models"
)

// WrittenArtifact describes one CSV file produced by WriteDataset
type WrittenArtifact struct {
	Name string
	Path string
	Rows int
}

// WriteDataset writes every table of ds as a CSV file with a header row
// into dir, creating it if needed.
func WriteDataset(dir string, ds *Dataset) ([]WrittenArtifact, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create raw data directory: %w", err)
	}

	var written []WrittenArtifact
	for _, t := range ds.Tables() {
		path := filepath.Join(dir, models.ArtifactFile(t.Name))
		if err := writeTable(path, t); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", t.Name, err)
		}
		written = append(written, WrittenArtifact{Name: t.Name, Path: path, Rows: len(t.Rows)})
	}
	return written, nil
}

func writeTable(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row.Values()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
