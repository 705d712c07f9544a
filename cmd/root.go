package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/uren/internal/export"
	"github.com/Tiliavir/uren/internal/overview"
)

// NewRootCommand builds the uren command tree. Running it without a
// subcommand prints the overview followed by the CSV export.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "uren [note ...]",
		Short: "uren – hours and earnings from timesheet notes",
		Long: `uren reads timesheet notes such as

  2023-10-02 Tuesday 10:00 to 18:00

and prints the hours worked, the earnings after tax and a CSV export.
Notes come from the arguments, from --file, or from a built-in example set.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}

			rates := run.cfg.EarningRates()
			if err := overview.New(rates).Render(cmd.OutOrStdout(), run.entries); err != nil {
				return err
			}
			csv, err := export.New(rates).CSV(run.entries)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), csv)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.bind(cmd)

	cmd.AddCommand(
		newOverviewCommand(opts),
		newExportCommand(opts),
		newReportCommand(opts),
		newConfigCommand(),
	)
	return cmd
}

// Execute is the entry point called from main.
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
