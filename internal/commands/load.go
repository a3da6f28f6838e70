package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/balkashynov/trackgen/internal/db"
)

func newLoadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load CSV artifacts into the SQLite database",
		Long: `Replace the raw_ tables of the SQLite database with the contents of the
generated CSV artifacts. Missing artifacts are skipped with a warning.

Examples:
  trackgen load
  trackgen load --raw /tmp/raw --db /tmp/analytics.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyLoadFlags(cmd)
			return a.load(cmd)
		},
	}
	addLoadFlags(cmd)
	return cmd
}

func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().String("raw", "", "Directory holding the CSV artifacts")
	cmd.Flags().String("db", "", "SQLite database file")
}

func (a *app) applyLoadFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("raw") {
		a.cfg.RawDir, _ = flags.GetString("raw")
	}
	if flags.Changed("db") {
		a.cfg.DBPath, _ = flags.GetString("db")
	}
}

func (a *app) load(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "📥 Loading CSV files into %s\n", a.cfg.DBPath)

	store, err := db.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close(store)

	results, err := db.NewLoader(store, a.logger).LoadAll(ctx, a.cfg.RawDir)
	for _, r := range results {
		if r.Skipped {
			fmt.Fprintf(out, "  ⚠️  %s not found, skipped\n", r.Source)
			continue
		}
		fmt.Fprintf(out, "  %-28s %s rows\n", r.Table, humanize.Comma(r.Rows))
	}
	if err != nil {
		return err
	}

	counts, err := db.Verify(ctx, store)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nVerifying...")
	printCounts(out, counts)
	fmt.Fprintf(out, "✅ Database ready at %s\n", a.cfg.DBPath)
	return nil
}
