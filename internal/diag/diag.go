// SPDX-License-Identifier: MPL-2.0

// Package diag constructs the leveled loggers used across the preprocessor.
// Components receive a *log.Logger explicitly instead of reaching for a
// process-wide singleton, so tests can capture diagnostic output
// deterministically.
package diag

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// TraceLevel is a custom level below debug for per-line rewrite output
// (matched declarations, resolved include directives, emitted files).
const TraceLevel = log.DebugLevel - 4

// New returns a logger writing human-readable, level-prefixed lines to w.
// Records below minLevel are dropped.
func New(w io.Writer, minLevel log.Level) *log.Logger {
	styles := log.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRACE").
		Foreground(lipgloss.Color("#9CA3AF"))

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           minLevel,
	})
	logger.SetStyles(styles)
	return logger
}

// Trace logs msg at TraceLevel.
func Trace(logger *log.Logger, msg any, keyvals ...any) {
	logger.Log(TraceLevel, msg, keyvals...)
}
