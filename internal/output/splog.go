// Package output provides progress logging and summary formatting for
// reconciliation runs.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured logging and output
type Splog struct {
	writer io.Writer
}

// NewSplog creates a new splog instance writing to stdout
func NewSplog() *Splog {
	return &Splog{
		writer: os.Stdout,
	}
}

// NewSplogTo creates a splog instance writing to w. Used by tests.
func NewSplogTo(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}

// Success writes a success message
func (s *Splog) Success(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "✅ "+format+"\n", args...)
}

// Fail writes a failure message
func (s *Splog) Fail(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "❌ "+format+"\n", args...)
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "💡 "+format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
