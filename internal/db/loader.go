package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/balkashynov/trackgen/internal/models"
)

const defaultBatchSize = 500

// maxBindVars is SQLite's default SQLITE_MAX_VARIABLE_NUMBER
const maxBindVars = 32766

// TableLoad is the outcome of loading one artifact
type TableLoad struct {
	Artifact string
	Table    string
	Source   string
	Rows     int64
	Skipped  bool
}

// Loader replaces raw_ tables from generated CSV artifacts
type Loader struct {
	db        *gorm.DB
	logger    *slog.Logger
	batchSize int
}

// NewLoader creates a loader bound to an open store
func NewLoader(db *gorm.DB, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{db: db, logger: logger, batchSize: defaultBatchSize}
}

// LoadAll loads every expected artifact from rawDir. Missing files are
// skipped with a warning; any other failure stops the run. Tables loaded
// before a failure stay loaded.
func (l *Loader) LoadAll(ctx context.Context, rawDir string) ([]TableLoad, error) {
	runID := uuid.NewString()
	l.logger.Info("loading artifacts", "run_id", runID, "raw_dir", rawDir)

	var results []TableLoad
	for _, name := range models.Artifacts {
		path := filepath.Join(rawDir, models.ArtifactFile(name))
		res := TableLoad{Artifact: name, Table: models.RawTable(name), Source: path}

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				l.logger.Warn("artifact not found, skipping", "artifact", models.ArtifactFile(name), "path", path)
				res.Skipped = true
				results = append(results, res)
				continue
			}
			return results, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		rows, err := l.LoadFile(ctx, res.Table, path)
		if err != nil {
			return results, fmt.Errorf("failed to load %s: %w", res.Table, err)
		}
		res.Rows = rows

		if err := l.recordRun(ctx, runID, res); err != nil {
			return results, fmt.Errorf("failed to record load of %s: %w", res.Table, err)
		}
		l.logger.Info("loaded table", "table", res.Table, "rows", rows)
		results = append(results, res)
	}
	return results, nil
}

// LoadFile drops table if present and recreates it from the CSV at path,
// inserting every row. It returns the number of rows in the new table.
func (l *Loader) LoadFile(ctx context.Context, table, path string) (int64, error) {
	frame, err := ReadFrame(path)
	if err != nil {
		return 0, err
	}
	if len(frame.Columns) == 0 {
		return 0, fmt.Errorf("%s: no columns", path)
	}
	types := frame.InferTypes()

	var count int64
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop: %w", err)
		}
		if err := tx.Exec(createTableSQL(table, frame.Columns, types)).Error; err != nil {
			return fmt.Errorf("create: %w", err)
		}
		if err := l.insertRows(tx, table, frame, types); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return tx.Table(table).Count(&count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (l *Loader) insertRows(tx *gorm.DB, table string, frame *Frame, types []ColumnType) error {
	cols := make([]string, len(frame.Columns))
	for i, c := range frame.Columns {
		cols[i] = quoteIdent(c)
	}
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",") + ")"
	prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES ", quoteIdent(table), strings.Join(cols, ", "))

	size := rowsPerBatch(l.batchSize, len(cols))
	for start := 0; start < len(frame.Rows); start += size {
		end := min(start+size, len(frame.Rows))
		batch := frame.Rows[start:end]

		tuples := make([]string, len(batch))
		args := make([]interface{}, 0, len(batch)*len(cols))
		for i, row := range batch {
			tuples[i] = placeholder
			for c := range cols {
				var v string
				if c < len(row) {
					v = row[c]
				}
				args = append(args, convert(v, types[c]))
			}
		}

		if err := tx.Exec(prefix+strings.Join(tuples, ", "), args...).Error; err != nil {
			return err
		}
	}
	return nil
}

// rowsPerBatch caps a batch so its bind variables stay within SQLite's limit
func rowsPerBatch(batchSize, columns int) int {
	return max(1, min(batchSize, maxBindVars/columns))
}

func (l *Loader) recordRun(ctx context.Context, runID string, res TableLoad) error {
	run := models.LoadRun{
		RunID:      runID,
		Table:      res.Table,
		SourceFile: res.Source,
		RowCount:   res.Rows,
		LoadedAt:   time.Now().UTC(),
	}
	return l.db.WithContext(ctx).Create(&run).Error
}

func createTableSQL(table string, columns []string, types []ColumnType) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = quoteIdent(c) + " " + types[i].SQL()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
}
