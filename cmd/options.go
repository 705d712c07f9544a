package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/uren/internal/config"
	"github.com/Tiliavir/uren/internal/model"
	"github.com/Tiliavir/uren/internal/notes"
)

// exampleNotes is the dataset used when no notes are given. It is written in
// the listed layout, so the default spaced layout reads none of it.
var exampleNotes = []string{
	"2023-10-01, Monday, 09:00 - 17:00",
	"2023-10-02, Tuesday, 10:00 - 18:00",
}

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	file       string
	layout     string
	separator  string
	delimiter  string
	rate       float64
	tax        float64
	strict     bool
	verbose    bool
}

func (o *options) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML config file; uren config prints a template")
	f.StringVarP(&o.file, "file", "f", "", "Read notes from a file, one per line; - reads stdin")
	f.StringVar(&o.layout, "layout", "", "Note layout: spaced, listed")
	f.StringVar(&o.separator, "separator", "", "Range separator between start and end time, e.g. to or -")
	f.StringVar(&o.delimiter, "delimiter", "", "Field delimiter between date, day and start time, e.g. ,")
	f.Float64Var(&o.rate, "rate", config.DefaultHourlyRate, "Hourly rate")
	f.Float64Var(&o.tax, "tax", config.DefaultTaxRate, "Tax rate as a fraction between 0 and 1")
	f.BoolVar(&o.strict, "strict", false, "Fail on notes that cannot be read instead of skipping them")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log skipped notes and other details to stderr")
}

// loadConfig loads the config file and applies flags the user set explicitly.
func (o *options) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	log.Debug().Str("path", o.configPath).Msg("loaded config")

	flags := cmd.Flags()
	if flags.Changed("rate") {
		cfg.Rates.HourlyRate = o.rate
	}
	if flags.Changed("tax") {
		cfg.Rates.TaxRate = o.tax
	}
	if flags.Changed("layout") {
		cfg.Notes.Layout = o.layout
	}
	if flags.Changed("separator") {
		cfg.Notes.Separator = o.separator
	}
	if flags.Changed("delimiter") {
		cfg.Notes.Delimiter = o.delimiter
	}
	if flags.Changed("strict") {
		cfg.Notes.Strict = o.strict
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parsed is the outcome of reading notes for one command run.
type parsed struct {
	cfg     config.Config
	entries []model.WorkEntry
}

func (o *options) parse(cmd *cobra.Command, args []string) (parsed, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return parsed{}, err
	}
	format, err := cfg.Format()
	if err != nil {
		return parsed{}, err
	}

	parser, err := notes.NewParser(
		notes.WithFormat(format),
		notes.WithMode(cfg.Mode()),
		notes.WithLogger(log.Logger),
	)
	if err != nil {
		return parsed{}, err
	}

	lines, err := o.readNotes(cmd, args)
	if err != nil {
		return parsed{}, err
	}

	entries, err := parser.Parse(lines)
	if err != nil {
		return parsed{}, err
	}
	log.Debug().Int("notes", len(lines)).Int("entries", len(entries)).Msg("parsed notes")
	if len(entries) == 0 && len(lines) > 0 {
		log.Warn().Int("notes", len(lines)).Msgf("no notes matched layout %q", cfg.Notes.Layout)
	}
	return parsed{cfg: cfg, entries: entries}, nil
}

// readNotes returns the raw note lines from --file, the arguments, or the
// example dataset, in that order of preference.
func (o *options) readNotes(cmd *cobra.Command, args []string) ([]string, error) {
	switch {
	case o.file == "-":
		return readLines(cmd.InOrStdin())
	case o.file != "":
		f, err := os.Open(o.file)
		if err != nil {
			return nil, fmt.Errorf("opening notes file: %w", err)
		}
		defer f.Close()
		return readLines(f)
	case len(args) > 0:
		return args, nil
	default:
		return exampleNotes, nil
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading notes: %w", err)
	}
	return lines, nil
}
