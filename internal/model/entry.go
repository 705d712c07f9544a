package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in notes and exports.
const DateLayout = "2006-01-02"

// WorkEntry is a single parsed timesheet line. Entries are produced by the
// notes parser and passed around by value; nothing modifies them afterwards.
type WorkEntry struct {
	Date     time.Time     `json:"date"`
	Day      string        `json:"day"`
	Start    string        `json:"start"`
	End      string        `json:"end"`
	Duration time.Duration `json:"duration"`
}

// DateString returns the entry date as YYYY-MM-DD.
func (e WorkEntry) DateString() string {
	return e.Date.Format(DateLayout)
}

// HoursWorked returns the duration in fractional hours.
func (e WorkEntry) HoursWorked() float64 {
	return e.Duration.Hours()
}

// TotalHours returns the whole hours of the duration.
func (e WorkEntry) TotalHours() int {
	return int(e.Duration / time.Hour)
}

// TotalMinutes returns the minutes left over after TotalHours.
func (e WorkEntry) TotalMinutes() int {
	return int((e.Duration % time.Hour) / time.Minute)
}

// Rates holds the hourly rate and the tax rate applied to earnings.
// Tax is a fraction, e.g. 0.2 for 20%.
type Rates struct {
	Hourly decimal.Decimal
	Tax    decimal.Decimal
}

// DefaultRates returns the reference configuration: 20 per hour, 20% tax.
func DefaultRates() Rates {
	return Rates{
		Hourly: decimal.NewFromInt(20),
		Tax:    decimal.NewFromFloat(0.2),
	}
}

// EarningsSummary aggregates hours and earnings over a set of entries.
type EarningsSummary struct {
	TotalHours       float64         `json:"total_hours"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	EarningsAfterTax decimal.Decimal `json:"earnings_after_tax"`
}

// WeekSummary is an EarningsSummary for the entries of one ISO week.
type WeekSummary struct {
	Week    string          `json:"week"`
	Entries int             `json:"entries"`
	Summary EarningsSummary `json:"summary"`
}
