package types

import "testing"

func TestMode_String(t *testing.T) {
	if got := ModeApply.String(); got != "apply" {
		t.Errorf("ModeApply.String() = %q, want %q", got, "apply")
	}
	if got := ModeDryRun.String(); got != "dry-run" {
		t.Errorf("ModeDryRun.String() = %q, want %q", got, "dry-run")
	}
}

func TestReport_Categories(t *testing.T) {
	r := &Report{
		Moves: []Move{
			{Category: "Images"},
			{Category: "Images"},
			{Category: "Documents"},
		},
	}

	counts := r.Categories()
	if counts["Images"] != 2 {
		t.Errorf("Images count = %d, want 2", counts["Images"])
	}
	if counts["Documents"] != 1 {
		t.Errorf("Documents count = %d, want 1", counts["Documents"])
	}
	if len(counts) != 2 {
		t.Errorf("category count = %d, want 2", len(counts))
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{bytes: 0, want: "0 B"},
		{bytes: 1024, want: "1.0 KiB"},
		{bytes: 1536 * 1024, want: "1.5 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
