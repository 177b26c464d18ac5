// Package types provides core data types for the organizer CLI.
// It includes the move plan structures shared between the planner,
// mover, log writer, and output formatters.
package types

import (
	"errors"
	"time"

	"github.com/dustin/go-humanize"
)

// Mode selects whether a run previews or performs moves.
type Mode int

const (
	// ModeApply mutates the filesystem and writes the move log.
	ModeApply Mode = iota

	// ModeDryRun computes and reports the plan without touching anything.
	ModeDryRun
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	if m == ModeDryRun {
		return "dry-run"
	}
	return "apply"
}

// LogFilename is the reserved name of the move log written into the
// target directory. Entries with this name are never organized.
const LogFilename = "organizer.log"

// Startup validation errors. The CLI maps these to a distinct exit code.
var (
	// ErrTargetMissing indicates the target path does not exist.
	ErrTargetMissing = errors.New("target path does not exist")

	// ErrNotDirectory indicates the target path exists but is not a directory.
	ErrNotDirectory = errors.New("target path is not a directory")
)

// Move is a single planned relocation of one file.
type Move struct {
	// Source is the absolute path of the file before the move.
	Source string `json:"source"`

	// Dest is the absolute, collision-free destination path.
	Dest string `json:"dest"`

	// Category is the name of the category folder the file lands in.
	Category string `json:"category"`

	// Size is the file size in bytes at plan time.
	Size int64 `json:"size"`

	// Renamed is true when Dest carries a numeric suffix because the
	// plain destination was already taken.
	Renamed bool `json:"renamed,omitempty"`
}

// MoveError pairs a failed move with the error that stopped it.
// Failures are per-file and never abort the rest of the run.
type MoveError struct {
	// Source is the file the mover could not relocate.
	Source string `json:"source"`

	// Error is the failure message.
	Error string `json:"error"`
}

// Report aggregates the outcome of one organize run.
type Report struct {
	// Target is the absolute path of the organized directory.
	Target string `json:"target"`

	// Mode records whether the run was a dry-run or an apply.
	Mode Mode `json:"-"`

	// DryRun mirrors Mode for serialized output.
	DryRun bool `json:"dry_run"`

	// RunID uniquely identifies the run in logs and the move log header.
	RunID string `json:"run_id"`

	// Started is when the run began.
	Started time.Time `json:"started"`

	// Moves lists every planned move in directory-iteration order.
	Moves []Move `json:"moves"`

	// Skipped counts entries passed over (subdirectories, the move log).
	Skipped int `json:"skipped"`

	// TotalBytes is the sum of the sizes of all planned moves.
	TotalBytes int64 `json:"total_bytes"`

	// Failures lists moves that could not be performed in apply mode.
	Failures []MoveError `json:"failures,omitempty"`
}

// Categories returns per-category move counts.
func (r *Report) Categories() map[string]int {
	counts := make(map[string]int, 8)
	for _, m := range r.Moves {
		counts[m.Category]++
	}
	return counts
}

// HumanTotal returns the total planned bytes as a human-readable string
// in binary (IEC) units.
func (r *Report) HumanTotal() string {
	return FormatSize(r.TotalBytes)
}

// FormatSize converts a size in bytes to a human-readable string using
// binary (IEC) units for consistency with common filesystem tools.
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}
