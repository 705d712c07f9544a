package timecalc

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClockLayout is the HH:MM 24-hour format used for start and end times.
const ClockLayout = "15:04"

// ParseClock parses an HH:MM clock value into the offset since midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Span returns end minus start, both taken as clock values on the same day.
// A negative span (end before start) is clamped to zero.
func Span(start, end string) (time.Duration, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	if e < s {
		return 0, nil
	}
	return e - s, nil
}

// HoursBetween returns Span(start, end) in fractional hours.
func HoursBetween(start, end string) (float64, error) {
	d, err := Span(start, end)
	if err != nil {
		return 0, err
	}
	return d.Hours(), nil
}

// GrossEarnings returns hours × hourlyRate.
func GrossEarnings(hoursWorked float64, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(hoursWorked).Mul(hourlyRate)
}

// Earnings returns hours × hourlyRate × (1 − taxRate). Rates are not checked:
// a tax rate above 1 or a negative hourly rate yields negative earnings.
func Earnings(hoursWorked float64, hourlyRate, taxRate decimal.Decimal) decimal.Decimal {
	return GrossEarnings(hoursWorked, hourlyRate).Mul(decimal.NewFromInt(1).Sub(taxRate))
}

// FormatDuration formats a duration as "1h 40m", "45m" or "0m".
func FormatDuration(d time.Duration) string {
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
