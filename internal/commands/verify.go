package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/balkashynov/trackgen/internal/db"
	"github.com/balkashynov/trackgen/internal/tui"
)

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Show row counts of every table in the database",
		Long: `Show the row count of every table in the SQLite database together with the
time each raw_ table was last loaded. Opens an interactive table by default.

Examples:
  trackgen verify
  trackgen verify --no-ui
  trackgen verify --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("db") {
				a.cfg.DBPath, _ = cmd.Flags().GetString("db")
			}
			return a.verify(cmd)
		},
	}
	cmd.Flags().String("db", "", "SQLite database file")
	cmd.Flags().Bool("no-ui", false, "Print plain text instead of the interactive table")
	cmd.Flags().Bool("json", false, "Print JSON")
	return cmd
}

func (a *app) verify(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// Open would create an empty database, so check first
	if _, err := os.Stat(a.cfg.DBPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("database not found at %s, run 'trackgen load' first", a.cfg.DBPath)
		}
		return fmt.Errorf("failed to access database: %w", err)
	}

	store, err := db.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close(store)

	counts, err := db.Verify(ctx, store)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		type tableJSON struct {
			Table string `json:"table"`
			Rows  int64  `json:"rows"`
		}
		rows := make([]tableJSON, len(counts))
		for i, c := range counts {
			rows[i] = tableJSON{Table: c.Name, Rows: c.Rows}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
		printCounts(out, counts)
		return nil
	}

	runs, err := db.RecentRuns(ctx, store)
	if err != nil {
		return err
	}
	return tui.RunVerifyTUI(a.cfg.DBPath, counts, runs)
}

// printCounts writes a plain table of row counts
func printCounts(out io.Writer, counts []db.TableCount) {
	if len(counts) == 0 {
		fmt.Fprintln(out, "No tables found. Use 'trackgen load' to populate the database.")
		return
	}

	fmt.Fprintf(out, "%-32s %12s\n", "TABLE", "ROWS")
	fmt.Fprintln(out, strings.Repeat("-", 45))
	for _, c := range counts {
		fmt.Fprintf(out, "%-32s %12s\n", c.Name, humanize.Comma(c.Rows))
	}
}
