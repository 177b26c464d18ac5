package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *types.Report {
	return &types.Report{
		Target:  "/home/user/Downloads",
		Mode:    types.ModeDryRun,
		DryRun:  true,
		RunID:   "run-1",
		Started: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
		Moves: []types.Move{
			{
				Source:   "/home/user/Downloads/a.jpg",
				Dest:     "/home/user/Downloads/Images/a.jpg",
				Category: "Images",
				Size:     1024,
			},
			{
				Source:   "/home/user/Downloads/dup.txt",
				Dest:     "/home/user/Downloads/Documents/dup (1).txt",
				Category: "Documents",
				Size:     512,
				Renamed:  true,
			},
		},
		Skipped:    1,
		TotalBytes: 1536,
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleReport())
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	assert.Equal(t, "/home/user/Downloads", parsed["target"])
	assert.Equal(t, true, parsed["dry_run"])
	assert.Equal(t, float64(1536), parsed["total_bytes"])

	moves, ok := parsed["moves"].([]interface{})
	require.True(t, ok)
	require.Len(t, moves, 2)

	second, ok := moves[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, second["renamed"])
	assert.Equal(t, "Documents", second["category"])
}

func TestJSONFormatter_Format_EmptyPlan(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	r := sampleReport()
	r.Moves = []types.Move{}
	r.TotalBytes = 0

	err := formatter.Format(&buf, r)
	require.NoError(t, err)

	var parsed types.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Empty(t, parsed.Moves)
	assert.Empty(t, parsed.Failures)
}
