package commands

import (
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate artifacts and load them in one go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyGenerateFlags(cmd); err != nil {
				return err
			}
			if err := a.generate(cmd); err != nil {
				return err
			}
			// --out already points load at what generate just wrote
			a.applyLoadFlags(cmd)
			return a.load(cmd)
		},
	}
	addGenerateFlags(cmd)
	cmd.Flags().String("db", "", "SQLite database file")
	return cmd
}
