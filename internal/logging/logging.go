package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns the stderr logger shared by commands. Verbose enables debug output.
func New(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "routejump",
		Level:  level,
	})
}

// Discard returns a logger that drops everything; used by tests and the MCP
// server, whose stdout carries the protocol.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
