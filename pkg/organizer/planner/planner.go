// Package planner builds the move plan for an organize run. It
// enumerates the immediate children of the target directory, classifies
// each file, and resolves a collision-free destination for every move
// before anything touches the filesystem.
package planner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jamesainslie/organizer/pkg/organizer/category"
	"github.com/jamesainslie/organizer/pkg/organizer/logging"
	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

// logger is the package-level logger for planning operations.
var logger = logging.Get("planner")

// Planner produces a move plan for one target directory.
type Planner struct {
	target string

	// reserved mirrors pending destination paths so uniqueness probing
	// sees moves planned earlier in the same run before they happen.
	reserved map[string]struct{}
}

// New creates a Planner for the given target directory. The path is
// resolved to an absolute path and must name an existing directory;
// otherwise a types sentinel error is returned.
func New(target string) (*Planner, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolving target path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrTargetMissing, abs)
		}
		return nil, fmt.Errorf("checking target path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", types.ErrNotDirectory, abs)
	}

	return &Planner{
		target:   abs,
		reserved: make(map[string]struct{}),
	}, nil
}

// Target returns the resolved absolute target directory.
func (p *Planner) Target() string {
	return p.target
}

// Plan enumerates the target's immediate children and returns the move
// plan. Subdirectories and the reserved move log name are skipped; no
// recursion happens. Plan never mutates the filesystem.
func (p *Planner) Plan(mode types.Mode) (*types.Report, error) {
	entries, err := os.ReadDir(p.target)
	if err != nil {
		return nil, fmt.Errorf("reading target directory: %w", err)
	}

	report := &types.Report{
		Target:  p.target,
		Mode:    mode,
		DryRun:  mode == types.ModeDryRun,
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Moves:   make([]types.Move, 0, len(entries)),
	}

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			report.Skipped++
			continue
		}
		if strings.EqualFold(name, types.LogFilename) {
			report.Skipped++
			continue
		}

		cat := category.Categorize(name)
		dest := p.ResolveUniqueDestination(filepath.Join(p.target, cat), name)

		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}

		move := types.Move{
			Source:   filepath.Join(p.target, name),
			Dest:     dest,
			Category: cat,
			Size:     size,
			Renamed:  filepath.Base(dest) != name,
		}
		report.Moves = append(report.Moves, move)
		report.TotalBytes += size

		logger.Debug("planned move",
			"source", move.Source, "dest", move.Dest, "category", cat)
	}

	logger.Info("plan complete",
		"target", p.target, "moves", len(report.Moves),
		"skipped", report.Skipped, "run_id", report.RunID)

	return report, nil
}

// ResolveUniqueDestination returns a destination path under dir for
// filename that neither exists on disk nor collides with a move planned
// earlier in this run. When the plain path is taken it probes
// "base (1)ext", "base (2)ext", ... until a free slot is found, then
// reserves the result.
func (p *Planner) ResolveUniqueDestination(dir, filename string) string {
	dest := filepath.Join(dir, filename)
	if !p.taken(dest) {
		p.reserved[dest] = struct{}{}
		return dest
	}

	base, ext := splitName(filename)
	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, counter, ext))
		if !p.taken(candidate) {
			p.reserved[candidate] = struct{}{}
			return candidate
		}
	}
}

// taken reports whether path exists on disk or is reserved by this run.
func (p *Planner) taken(path string) bool {
	if _, reserved := p.reserved[path]; reserved {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}

// splitName splits filename at the last dot. A name without a dot is
// all base; the extension keeps its leading dot.
func splitName(filename string) (base, ext string) {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return filename, ""
	}
	return filename[:idx], filename[idx:]
}
