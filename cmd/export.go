package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/uren/internal/export"
)

func newExportCommand(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [note ...]",
		Short: "Export parsed notes to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}

			x := export.New(run.cfg.EarningRates())
			var out string
			switch format {
			case "json":
				out, err = x.JSON(run.entries)
				if err == nil {
					out += "\n"
				}
			case "csv":
				out, err = x.CSV(run.entries)
			default:
				return fmt.Errorf("unknown export format %q (expected csv|json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv, json")
	return cmd
}
