package overview

import (
	"github.com/Tiliavir/uren/internal/model"
	"github.com/Tiliavir/uren/internal/timecalc"
)

// Weekly groups entries by ISO week and summarizes each group. Weeks appear
// in the order their first entry appears.
func (o *Overview) Weekly(entries []model.WorkEntry) []model.WeekSummary {
	var (
		order  []string
		groups = map[string][]model.WorkEntry{}
	)
	for _, e := range entries {
		label := timecalc.ISOWeekLabel(e.Date)
		if _, seen := groups[label]; !seen {
			order = append(order, label)
		}
		groups[label] = append(groups[label], e)
	}

	weeks := make([]model.WeekSummary, 0, len(order))
	for _, label := range order {
		weeks = append(weeks, model.WeekSummary{
			Week:    label,
			Entries: len(groups[label]),
			Summary: o.Summarize(groups[label]),
		})
	}
	return weeks
}
