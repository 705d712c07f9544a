// Package export serializes work entries for spreadsheets and scripts.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/Tiliavir/uren/internal/model"
	"github.com/Tiliavir/uren/internal/timecalc"
)

// Header is the fixed CSV header line. The column names are part of the
// output contract and are not translated.
const Header = "Datum,Dag,Begin Tijd,Eind Tijd,Totaal Uren,Totaal Minuten,Verdiend Bedrag"

// Row is one exported entry. Field order matches Header.
type Row struct {
	Date         string `csv:"Datum" json:"date"`
	Day          string `csv:"Dag" json:"day"`
	StartTime    string `csv:"Begin Tijd" json:"start_time"`
	EndTime      string `csv:"Eind Tijd" json:"end_time"`
	TotalHours   int    `csv:"Totaal Uren" json:"total_hours"`
	TotalMinutes int    `csv:"Totaal Minuten" json:"total_minutes"`
	EarnedAmount string `csv:"Verdiend Bedrag" json:"earned_amount"`
}

// Exporter turns entries into rows, attaching net earnings at fixed rates.
type Exporter struct {
	rates model.Rates
}

// New returns an Exporter using rates for the earned amount column.
func New(rates model.Rates) *Exporter {
	return &Exporter{rates: rates}
}

// Rows converts entries to rows in input order.
func (x *Exporter) Rows(entries []model.WorkEntry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		earned := timecalc.Earnings(e.HoursWorked(), x.rates.Hourly, x.rates.Tax)
		rows = append(rows, Row{
			Date:         e.DateString(),
			Day:          e.Day,
			StartTime:    e.Start,
			EndTime:      e.End,
			TotalHours:   e.TotalHours(),
			TotalMinutes: e.TotalMinutes(),
			EarnedAmount: earned.StringFixed(2),
		})
	}
	return rows
}

// CSV returns the header followed by one line per entry. Every line,
// the last included, ends in a newline. Fields holding a comma, quote or
// newline are quoted.
func (x *Exporter) CSV(entries []model.WorkEntry) (string, error) {
	out, err := gocsv.MarshalString(x.Rows(entries))
	if err != nil {
		return "", fmt.Errorf("encoding CSV: %w", err)
	}
	return out, nil
}

// JSON returns the rows as an indented JSON array.
func (x *Exporter) JSON(entries []model.WorkEntry) (string, error) {
	data, err := json.MarshalIndent(x.Rows(entries), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return string(data), nil
}
