package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/uren/internal/overview"
	"github.com/Tiliavir/uren/internal/timecalc"
)

func newReportCommand(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report [note ...]",
		Short: "Show hours and earnings per ISO week",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}

			o := overview.New(run.cfg.EarningRates())
			weeks := o.Weekly(run.entries)
			total := o.Summarize(run.entries)
			out := cmd.OutOrStdout()

			switch format {
			case "csv":
				fmt.Fprintln(out, "week,entries,hours,gross,net")
				for _, w := range weeks {
					fmt.Fprintf(out, "%s,%d,%s,%s,%s\n", w.Week, w.Entries,
						overview.FormatHours(w.Summary.TotalHours),
						overview.FormatMoney(w.Summary.TotalEarnings),
						overview.FormatMoney(w.Summary.EarningsAfterTax))
				}
			case "json":
				data, err := json.MarshalIndent(struct {
					Weeks any `json:"weeks"`
					Total any `json:"total"`
				}{weeks, total}, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "md":
				fmt.Fprintf(out, "%-10s%9s%10s%10s\n", "Week", "Hours", "Gross", "Net")
				fmt.Fprintln(out, "---------------------------------------")
				for _, w := range weeks {
					fmt.Fprintf(out, "%-10s%9s%10s%10s\n", w.Week,
						timecalc.FormatDuration(hoursToDuration(w.Summary.TotalHours)),
						overview.FormatMoney(w.Summary.TotalEarnings),
						overview.FormatMoney(w.Summary.EarningsAfterTax))
				}
				fmt.Fprintln(out, "---------------------------------------")
				fmt.Fprintf(out, "%-10s%9s%10s%10s\n", "Total",
					timecalc.FormatDuration(hoursToDuration(total.TotalHours)),
					overview.FormatMoney(total.TotalEarnings),
					overview.FormatMoney(total.EarningsAfterTax))
			default:
				return fmt.Errorf("unknown report format %q (expected md|csv|json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "md", "Output format: md, csv, json")
	return cmd
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h*60)) * time.Minute
}
