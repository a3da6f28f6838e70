package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/balkashynov/trackgen/internal/generator"
	"github.com/balkashynov/trackgen/internal/parser"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic CSV artifacts",
		Long: `Generate the six raw tables (accounts, users, applications, projects, tasks,
activity sessions) as CSV files with a header row.

The same seed always produces the same data.

Examples:
  trackgen generate
  trackgen generate --seed 7 --out /tmp/raw
  trackgen generate --start 2025-01-01 --end +3 months`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyGenerateFlags(cmd); err != nil {
				return err
			}
			return a.generate(cmd)
		},
	}
	addGenerateFlags(cmd)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Random seed (default from config, 42)")
	cmd.Flags().StringP("out", "o", "", "Directory for the CSV artifacts")
	cmd.Flags().String("start", "", "First simulated day: yyyy-mm-dd or dd/mm/yyyy")
	cmd.Flags().String("end", "", "Last simulated day: yyyy-mm-dd, dd/mm/yyyy, or +N days|weeks|months from start")
}

// applyGenerateFlags overrides config with explicitly set flags
func (a *app) applyGenerateFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		a.cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("out") {
		a.cfg.RawDir, _ = flags.GetString("out")
	}
	if flags.Changed("start") {
		v, _ := flags.GetString("start")
		start, err := parser.ParseDate(v)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		a.cfg.Start = start
	}
	if flags.Changed("end") {
		v, _ := flags.GetString("end")
		end, err := parser.ParseDateFrom(v, a.cfg.Start)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		a.cfg.End = end
	}
	return a.cfg.Validate()
}

func (a *app) generate(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🎲 Generating data for %s to %s (seed %d)\n",
		a.cfg.Start.Format(parser.ISODateLayout), a.cfg.End.Format(parser.ISODateLayout), a.cfg.Seed)

	ds, err := generator.Generate(generator.Options{
		Seed:  a.cfg.Seed,
		Start: a.cfg.Start,
		End:   a.cfg.End,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("failed to generate data: %w", err)
	}

	written, err := generator.WriteDataset(a.cfg.RawDir, ds)
	if err != nil {
		return err
	}

	for _, w := range written {
		fmt.Fprintf(out, "  -> %-24s %s rows\n", w.Name, humanize.Comma(int64(w.Rows)))
	}
	fmt.Fprintf(out, "✅ Raw data ready in %s\n", a.cfg.RawDir)
	return nil
}
