package export_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Tiliavir/uren/internal/export"
	"github.com/Tiliavir/uren/internal/model"
)

var sample = []model.WorkEntry{
	{Date: time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC), Day: "Monday", Start: "09:00", End: "17:00", Duration: 8 * time.Hour},
	{Date: time.Date(2023, 10, 3, 0, 0, 0, 0, time.UTC), Day: "Tuesday", Start: "10:00", End: "18:30", Duration: 8*time.Hour + 30*time.Minute},
	{Date: time.Date(2023, 10, 4, 0, 0, 0, 0, time.UTC), Day: "Wednesday", Start: "22:00", End: "06:00"},
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestCSV(t *testing.T) {
	x := export.New(model.DefaultRates())
	out, err := x.CSV(sample)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	got := lines(out)
	want := []string{
		export.Header,
		"2023-10-02,Monday,09:00,17:00,8,0,128.00",
		"2023-10-03,Tuesday,10:00,18:30,8,30,136.00",
		"2023-10-04,Wednesday,22:00,06:00,0,0,0.00",
	}
	if len(got) != len(want) {
		t.Fatalf("lines = %d, want %d: %q", len(got), len(want), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCSVEmptyIsHeaderOnly(t *testing.T) {
	x := export.New(model.DefaultRates())
	out, err := x.CSV(nil)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if got := lines(out); len(got) != 1 || got[0] != export.Header {
		t.Fatalf("CSV(nil) = %q, want header only", out)
	}
}

func TestCSVFieldCountAndNaiveSplit(t *testing.T) {
	x := export.New(model.DefaultRates())
	out, err := x.CSV(sample)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	headerFields := strings.Split(export.Header, ",")
	if len(headerFields) != 7 {
		t.Fatalf("header fields = %d, want 7", len(headerFields))
	}

	rows := x.Rows(sample)
	for i, line := range lines(out)[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != len(headerFields) {
			t.Fatalf("row %d fields = %d, want %d", i, len(fields), len(headerFields))
		}
		r := rows[i]
		if fields[0] != r.Date || fields[1] != r.Day || fields[2] != r.StartTime ||
			fields[3] != r.EndTime || fields[6] != r.EarnedAmount {
			t.Errorf("row %d = %q, does not match %+v", i, fields, r)
		}
	}
}

func TestCSVQuotesDelimiterInField(t *testing.T) {
	entries := []model.WorkEntry{
		{Date: time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC), Day: "Mon,day", Start: "09:00", End: "10:00", Duration: time.Hour},
	}
	x := export.New(model.DefaultRates())
	out, err := x.CSV(entries)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if !strings.Contains(out, `"Mon,day"`) {
		t.Fatalf("expected quoted field in %q", out)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll: %v", err)
	}
	if len(records) != 2 || len(records[1]) != 7 || records[1][1] != "Mon,day" {
		t.Fatalf("records = %q", records)
	}
}

func TestJSON(t *testing.T) {
	x := export.New(model.DefaultRates())
	out, err := x.JSON(sample[:1])
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var rows []export.Row
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(rows) != 1 || rows[0].EarnedAmount != "128.00" || rows[0].TotalHours != 8 {
		t.Fatalf("rows = %+v", rows)
	}
}
