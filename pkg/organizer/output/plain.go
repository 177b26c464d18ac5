package output

import (
	"bytes"
	"fmt"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

// PlainFormatter formats the report as unstyled text, suitable for
// piping and for terminals without color support.
type PlainFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *types.Report) error {
	fmt.Fprintf(w, "Target: %s\n", r.Target)
	fmt.Fprintf(w, "Mode: %s\n\n", r.Mode)

	for _, m := range r.Moves {
		fmt.Fprintf(w, "%s -> %s\n", m.Source, m.Dest)
	}

	fmt.Fprintf(w, "\n%d files planned, %s", len(r.Moves), types.FormatSize(r.TotalBytes))
	if r.Skipped > 0 {
		fmt.Fprintf(w, " (%d entries skipped)", r.Skipped)
	}
	w.WriteString("\n")

	if len(r.Failures) > 0 {
		fmt.Fprintf(w, "\n%d move(s) failed:\n", len(r.Failures))
		for _, fail := range r.Failures {
			fmt.Fprintf(w, "  %s: %s\n", fail.Source, fail.Error)
		}
	}
	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
