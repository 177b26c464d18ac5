// Package mover executes a move plan against the filesystem. Moves run
// sequentially in plan order; a single failed move is recorded and the
// rest of the plan continues.
package mover

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/organizer/pkg/organizer/logging"
	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

// logger is the package-level logger for move execution.
var logger = logging.Get("mover")

// Apply performs every move in the report, creating category directories
// on demand. Failures are appended to report.Failures and reported
// through onError (if non-nil); they never abort the run. The move list
// itself is left untouched so the log still records intent.
func Apply(report *types.Report, onError func(move types.Move, err error)) {
	for _, move := range report.Moves {
		if err := applyOne(move); err != nil {
			report.Failures = append(report.Failures, types.MoveError{
				Source: move.Source,
				Error:  err.Error(),
			})
			logger.Error("move failed", "source", move.Source, "error", err)
			if onError != nil {
				onError(move, err)
			}
			continue
		}
		logger.Debug("moved", "source", move.Source, "dest", move.Dest)
	}
}

// applyOne creates the destination's parent directory and renames the
// file into place. MkdirAll is a no-op when the directory exists. The
// destination was resolved collision-free at plan time, so no overwrite
// semantics are needed here.
func applyOne(move types.Move) error {
	dir := filepath.Dir(move.Dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating category directory %s: %w", dir, err)
	}
	if err := os.Rename(move.Source, move.Dest); err != nil {
		return fmt.Errorf("moving %s: %w", filepath.Base(move.Source), err)
	}
	return nil
}
