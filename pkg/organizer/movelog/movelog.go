// Package movelog reads and writes the plain-text move log that apply
// runs leave in the target directory. The format is a single header
// line with the generation timestamp and run ID, followed by one
// "source -> dest" line per planned move in plan order.
package movelog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

// separator joins the two paths of a record line.
const separator = " -> "

// timeLayout is the human-readable header timestamp format.
const timeLayout = "2006-01-02 15:04:05 MST"

// ErrNoLog indicates the target directory has no move log to read.
var ErrNoLog = errors.New("no organizer.log in target directory")

// Path returns the move log location for a target directory.
func Path(target string) string {
	return filepath.Join(target, types.LogFilename)
}

// Write truncates or creates the move log for the report's target and
// writes the header plus every planned move. Records reflect intent:
// moves that failed during apply are written all the same.
func Write(report *types.Report) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# organizer log - %s (run %s)\n",
		report.Started.Format(timeLayout), report.RunID)
	for _, move := range report.Moves {
		buf.WriteString(move.Source)
		buf.WriteString(separator)
		buf.WriteString(move.Dest)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(Path(report.Target), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing move log: %w", err)
	}
	return nil
}

// Record is one parsed line of a move log.
type Record struct {
	Source string
	Dest   string
}

// Log is a parsed move log.
type Log struct {
	// Header is the first line of the file, verbatim.
	Header string

	// Records are the move lines in file order.
	Records []Record
}

// Read parses the move log of a previous run from the target directory.
// Returns ErrNoLog when no log file exists. Lines that do not contain
// the record separator are skipped rather than failing the whole read.
func Read(target string) (*Log, error) {
	f, err := os.Open(Path(target))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoLog, target)
		}
		return nil, fmt.Errorf("opening move log: %w", err)
	}
	defer f.Close()

	out := &Log{}
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if strings.HasPrefix(line, "#") {
				out.Header = line
				continue
			}
		}
		src, dest, ok := strings.Cut(line, separator)
		if !ok || src == "" {
			continue
		}
		out.Records = append(out.Records, Record{Source: src, Dest: dest})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading move log: %w", err)
	}
	return out, nil
}

// GeneratedAt extracts the generation time from a parsed header. The
// zero time is returned when the header does not parse.
func (l *Log) GeneratedAt() time.Time {
	rest, ok := strings.CutPrefix(l.Header, "# organizer log - ")
	if !ok {
		return time.Time{}
	}
	if idx := strings.Index(rest, " (run "); idx >= 0 {
		rest = rest[:idx]
	}
	t, err := time.Parse(timeLayout, rest)
	if err != nil {
		return time.Time{}
	}
	return t
}
