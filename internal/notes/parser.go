// Package notes turns free-text timesheet notes into work entries.
//
// A note describes one work session:
//
//	2023-10-02 Tuesday 10:00 to 18:00
//
// The field delimiter and the range separator are set by a Format, so the
// listed form "2023-10-01, Monday, 09:00 - 17:00" can be read as well.
package notes

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/uren/internal/model"
	"github.com/Tiliavir/uren/internal/timecalc"
)

// Format describes how the fields of a note are separated.
type Format struct {
	// Delimiter sits between date, day and start time. Empty means
	// whitespace only.
	Delimiter string
	// Separator sits between start and end time, e.g. "to" or "-".
	Separator string
}

var (
	// FormatSpaced reads "2023-10-02 Tuesday 10:00 to 18:00".
	FormatSpaced = Format{Delimiter: "", Separator: "to"}
	// FormatListed reads "2023-10-01, Monday, 09:00 - 17:00".
	FormatListed = Format{Delimiter: ",", Separator: "-"}
)

// FormatByName resolves a named format preset.
func FormatByName(name string) (Format, error) {
	switch name {
	case "", "spaced":
		return FormatSpaced, nil
	case "listed":
		return FormatListed, nil
	default:
		return Format{}, fmt.Errorf("unknown note layout %q (expected spaced|listed)", name)
	}
}

// Pattern compiles the line pattern for f. The pattern is not anchored, so a
// note may carry extra text before or after the session.
func (f Format) Pattern() (*regexp.Regexp, error) {
	if f.Separator == "" {
		return nil, errors.New("note format needs a range separator")
	}

	field := `\s+`
	if f.Delimiter != "" {
		field = `\s*` + regexp.QuoteMeta(f.Delimiter) + `\s*`
	}

	// A word separator like "to" must stand apart from the times around it.
	rng := `\s*` + regexp.QuoteMeta(f.Separator) + `\s*`
	if isWord(f.Separator) {
		rng = `\s+` + regexp.QuoteMeta(f.Separator) + `\s+`
	}

	expr := `(\d{4}-\d{2}-\d{2})` + field + `(\w+)` + field + `(\d{2}:\d{2})` + rng + `(\d{2}:\d{2})`
	return regexp.Compile(expr)
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Mode decides what happens to notes that cannot be parsed.
type Mode uint8

const (
	// Lenient skips unparseable notes without reporting them.
	Lenient Mode = iota
	// Strict stops at the first unparseable note and returns a *ParseError.
	Strict
)

// Parser reads notes with a fixed Format and Mode.
type Parser struct {
	format  Format
	mode    Mode
	log     zerolog.Logger
	pattern *regexp.Regexp
}

// Option configures a Parser.
type Option func(*Parser)

// WithFormat sets the note format. The default is FormatSpaced.
func WithFormat(f Format) Option {
	return func(p *Parser) { p.format = f }
}

// WithMode sets the parse mode. The default is Lenient.
func WithMode(m Mode) Option {
	return func(p *Parser) { p.mode = m }
}

// WithLogger sets the logger that receives skipped notes at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// NewParser returns a parser configured by opts.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		format: FormatSpaced,
		mode:   Lenient,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	pattern, err := p.format.Pattern()
	if err != nil {
		return nil, err
	}
	p.pattern = pattern
	return p, nil
}

// Parse converts notes into entries, keeping the order of the notes that
// parsed. In Lenient mode the error is always nil.
func (p *Parser) Parse(notes []string) ([]model.WorkEntry, error) {
	entries := make([]model.WorkEntry, 0, len(notes))
	for i, note := range notes {
		entry, ok, err := p.ParseLine(note)
		if ok {
			entries = append(entries, entry)
			continue
		}
		if err == nil {
			err = ErrNoMatch
		}
		if p.mode == Strict {
			return nil, &ParseError{Line: i + 1, Note: note, Err: err}
		}
		p.log.Debug().Int("line", i+1).Str("note", note).Err(err).Msg("skipping note")
	}
	return entries, nil
}

// ParseLine matches a single note. It returns ok=false when the note does not
// fit the format; err is set when the note fits but carries an impossible
// date or clock time.
func (p *Parser) ParseLine(note string) (model.WorkEntry, bool, error) {
	m := p.pattern.FindStringSubmatch(note)
	if m == nil {
		return model.WorkEntry{}, false, nil
	}

	date, err := time.Parse(model.DateLayout, m[1])
	if err != nil {
		return model.WorkEntry{}, false, fmt.Errorf("%w %q", ErrInvalidDate, m[1])
	}

	span, err := timecalc.Span(m[3], m[4])
	if err != nil {
		return model.WorkEntry{}, false, fmt.Errorf("%w: %v", ErrInvalidClock, err)
	}

	return model.WorkEntry{
		Date:     date,
		Day:      m[2],
		Start:    m[3],
		End:      m[4],
		Duration: span,
	}, true, nil
}
