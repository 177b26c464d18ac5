package output

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

// PrettyFormatter formats the report with colors and styling using
// lipgloss. It is the default format for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *types.Report) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	if len(r.Moves) == 0 {
		w.WriteString(MutedStyle.Render("Nothing to organize."))
		w.WriteString("\n")
	} else {
		w.WriteString(f.formatMoves(r))
	}

	w.WriteString(f.formatFooter(r))

	if len(r.Failures) > 0 {
		w.WriteString("\n")
		w.WriteString(f.formatFailures(r.Failures))
	}
	return nil
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *types.Report) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("%s %s",
		LabelStyle.Render("Target:"), ValueStyle.Render(r.Target)))

	mode := ValueStyle.Render("apply")
	if r.DryRun {
		mode = DryRunStyle.Render("dry-run (no files will be moved)")
	}
	lines = append(lines, fmt.Sprintf("%s %s", LabelStyle.Render("Mode:"), mode))

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatMoves renders one line per planned move, grouped as scanned.
func (f *PrettyFormatter) formatMoves(r *types.Report) string {
	var b strings.Builder
	for _, m := range r.Moves {
		arrow := MutedStyle.Render("->")
		dest := filepath.Join(m.Category, filepath.Base(m.Dest))
		line := fmt.Sprintf("  %s %s %s",
			filepath.Base(m.Source), arrow, CategoryStyle.Render(dest))
		if m.Renamed {
			line += " " + MutedStyle.Render("(renamed)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// formatFooter summarizes category counts and totals.
func (f *PrettyFormatter) formatFooter(r *types.Report) string {
	counts := r.Categories()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d", CategoryStyle.Render(name), counts[name]))
	}

	var lines []string
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, "  "))
	}
	lines = append(lines, fmt.Sprintf("%s %d files, %s%s",
		LabelStyle.Render("Planned:"), len(r.Moves),
		types.FormatSize(r.TotalBytes),
		f.skippedNote(r)))

	return FooterBox.Render(strings.Join(lines, "\n"))
}

func (f *PrettyFormatter) skippedNote(r *types.Report) string {
	if r.Skipped == 0 {
		return ""
	}
	return MutedStyle.Render(fmt.Sprintf("  (%d entries skipped)", r.Skipped))
}

// formatFailures renders the failed moves in an error box.
func (f *PrettyFormatter) formatFailures(failures []types.MoveError) string {
	var lines []string
	lines = append(lines, ErrorStyle.Render(fmt.Sprintf("%d move(s) failed:", len(failures))))
	for _, fail := range failures {
		lines = append(lines, fmt.Sprintf("  %s: %s", filepath.Base(fail.Source), fail.Error))
	}
	return ErrorBox.Render(strings.Join(lines, "\n"))
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
