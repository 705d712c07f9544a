// Package overview renders work entries and their earnings for the console.
package overview

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Tiliavir/uren/internal/model"
	"github.com/Tiliavir/uren/internal/timecalc"
)

// Heading is the first line written by Render.
const Heading = "Overview of Work Hours and Earnings:"

// Overview computes and prints earnings at a fixed set of rates.
type Overview struct {
	rates model.Rates
}

// New returns an Overview using rates for every entry.
func New(rates model.Rates) *Overview {
	return &Overview{rates: rates}
}

// EntryEarnings returns the net earnings for a single entry.
func (o *Overview) EntryEarnings(e model.WorkEntry) decimal.Decimal {
	return timecalc.Earnings(e.HoursWorked(), o.rates.Hourly, o.rates.Tax)
}

// TotalEarnings returns the sum of EntryEarnings over entries.
func (o *Overview) TotalEarnings(entries []model.WorkEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(o.EntryEarnings(e))
	}
	return total
}

// Summarize totals hours and pre- and after-tax earnings.
func (o *Overview) Summarize(entries []model.WorkEntry) model.EarningsSummary {
	s := model.EarningsSummary{
		TotalEarnings:    decimal.Zero,
		EarningsAfterTax: decimal.Zero,
	}
	for _, e := range entries {
		s.TotalHours += e.HoursWorked()
		s.TotalEarnings = s.TotalEarnings.Add(timecalc.GrossEarnings(e.HoursWorked(), o.rates.Hourly))
		s.EarningsAfterTax = s.EarningsAfterTax.Add(o.EntryEarnings(e))
	}
	return s
}

// Render writes the heading, one line per entry and the total line to w.
// Styling only applies when w is a terminal.
func (o *Overview) Render(w io.Writer, entries []model.WorkEntry) error {
	r := lipgloss.NewRenderer(w)
	bold := r.NewStyle().Bold(true)

	if _, err := fmt.Fprintln(w, bold.Render(Heading)); err != nil {
		return err
	}
	for _, e := range entries {
		_, err := fmt.Fprintf(w, "Date: %s, Start: %s, End: %s, Hours: %s, Earnings: %s\n",
			e.DateString(), e.Start, e.End, FormatHours(e.HoursWorked()), FormatMoney(o.EntryEarnings(e)))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, bold.Render("Total Earnings: "+FormatMoney(o.TotalEarnings(entries))))
	return err
}

// FormatHours prints hours rounded to two decimals without trailing zeros,
// e.g. "8", "7.5" or "7.33".
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}

// FormatMoney prints an amount with two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
