package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for trackgen",
		Long:  `Display detailed help for all trackgen commands and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), helpText)
		},
	}
}

const helpText = `
trackgen - synthetic time-tracking data for analytics demos

COMMANDS:

  generate                Write the six raw CSV tables
    --seed                Random seed (same seed, same data)
    -o, --out             Output directory (default data/raw)
    --start               First simulated day (yyyy-mm-dd or dd/mm/yyyy)
    --end                 Last simulated day, or +N days|weeks|months from start

  load                    Replace raw_ tables in SQLite from the CSV files
    --raw                 Directory holding the CSV files
    --db                  Database file (default 2_SQL_DATABASE/timedoctor_analytics.db)

  run                     generate, then load
  verify                  Row counts of every table
    --db                  Database file
    --no-ui               Plain text output
    --json                JSON output

  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:

  --config-dir            Directory holding trackgen.yaml and .env (default .)
  --log-level             debug|info|warn|error
  --log-format            text|json

CONFIGURATION:

  trackgen.yaml keys: seed, raw_dir, db_path, start, end, log_level, log_format
  Environment: TRACKGEN_SEED, TRACKGEN_RAW_DIR, TRACKGEN_DB_PATH,
               TRACKGEN_LOG_LEVEL, TRACKGEN_LOG_FORMAT
  Precedence: flags > environment (.env included) > trackgen.yaml > defaults

`
