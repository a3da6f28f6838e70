package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/balkashynov/trackgen/internal/config"
	"github.com/balkashynov/trackgen/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by subcommands once the root has resolved config
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "trackgen",
		Short: "Synthetic time-tracking data generator and loader",
		Long: `trackgen generates synthetic time-tracking analytics data (accounts, users,
apps, projects, tasks and activity sessions) as CSV files and loads them into
a SQLite database for downstream SQL transformation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config-dir", ".", "Directory holding trackgen.yaml and .env")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newLoadCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.SetHelpCommand(newHelpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// init loads config and builds the logger before any subcommand runs
func (a *app) init(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("config-dir")
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.LogFormat = format
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trackgen %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
