// Package logging builds the slog logger shared by every component.
// Records are formatted by charmbracelet/log.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// Options configures New.
type Options struct {
	// Verbose enables debug records, timestamps and caller reporting.
	Verbose bool
	// JSON switches to one JSON object per record.
	JSON bool
	// Prefix is printed before every text record.
	Prefix string
}

// New returns a logger writing to w, or stderr when w is nil.
func New(w io.Writer, opts Options) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	lo := log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Verbose,
		ReportCaller:    opts.Verbose,
		TimeFormat:      "15:04:05",
	}
	if opts.JSON {
		lo.Formatter = log.JSONFormatter
	}
	return slog.New(log.NewWithOptions(w, lo))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
