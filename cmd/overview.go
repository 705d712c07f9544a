package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/uren/internal/overview"
)

func newOverviewCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "overview [note ...]",
		Aliases: []string{"list"},
		Short:   "Show each entry with its hours and earnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}
			return overview.New(run.cfg.EarningRates()).Render(cmd.OutOrStdout(), run.entries)
		},
	}
}
