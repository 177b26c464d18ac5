package movelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(target string) *types.Report {
	return &types.Report{
		Target:  target,
		RunID:   "11111111-2222-3333-4444-555555555555",
		Started: time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC),
		Moves: []types.Move{
			{Source: filepath.Join(target, "a.jpg"), Dest: filepath.Join(target, "Images", "a.jpg"), Category: "Images"},
			{Source: filepath.Join(target, "notes.txt"), Dest: filepath.Join(target, "Documents", "notes.txt"), Category: "Documents"},
		},
	}
}

func TestWrite_HeaderAndRecords(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport(dir)

	require.NoError(t, Write(report))

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "# organizer log - "))
	assert.Contains(t, lines[0], report.RunID)
	assert.Equal(t, report.Moves[0].Source+" -> "+report.Moves[0].Dest, lines[1])
	assert.Equal(t, report.Moves[1].Source+" -> "+report.Moves[1].Dest, lines[2])
}

func TestWrite_TruncatesPreviousLog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("stale contents\nmore\n"), 0o644))

	report := sampleReport(dir)
	report.Moves = report.Moves[:1]
	require.NoError(t, Write(report))

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale contents")
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestWrite_EmptyRunProducesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport(dir)
	report.Moves = nil

	require.NoError(t, Write(report))

	lg, err := Read(dir)
	require.NoError(t, err)
	assert.Empty(t, lg.Records)
	assert.NotEmpty(t, lg.Header)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport(dir)
	require.NoError(t, Write(report))

	lg, err := Read(dir)
	require.NoError(t, err)

	require.Len(t, lg.Records, 2)
	assert.Equal(t, report.Moves[0].Source, lg.Records[0].Source)
	assert.Equal(t, report.Moves[0].Dest, lg.Records[0].Dest)
	assert.Equal(t, report.Moves[1].Source, lg.Records[1].Source)

	got := lg.GeneratedAt()
	assert.Equal(t, report.Started.Format("2006-01-02 15:04"), got.UTC().Format("2006-01-02 15:04"))
}

func TestRead_MissingLog(t *testing.T) {
	_, err := Read(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoLog)
}

func TestRead_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := "# organizer log - 2026-08-26 10:30:00 UTC (run x)\n" +
		"/a/b.txt -> /a/Documents/b.txt\n" +
		"not a record line\n" +
		"/a/c.png -> /a/Images/c.png\n"
	require.NoError(t, os.WriteFile(Path(dir), []byte(content), 0o644))

	lg, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, lg.Records, 2)
	assert.Equal(t, "/a/c.png", lg.Records[1].Source)
}
