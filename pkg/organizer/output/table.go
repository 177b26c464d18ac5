package output

import (
	"bytes"
	"fmt"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

// TSVFormatter formats the move plan as tab-separated values.
// It produces a header row followed by one row per planned move.
type TSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TSVFormatter) Format(w *bytes.Buffer, r *types.Report) error {
	w.WriteString("CATEGORY\tSOURCE\tDEST\n")
	for _, m := range r.Moves {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Category, m.Source, m.Dest)
	}
	return nil
}

func init() {
	Register("tsv", func() Formatter {
		return &TSVFormatter{}
	})
}

// Ensure TSVFormatter implements Formatter.
var _ Formatter = (*TSVFormatter)(nil)
