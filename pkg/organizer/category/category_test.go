package category

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "lowercase image", filename: "a.jpg", want: "Images"},
		{name: "uppercase extension", filename: "PHOTO.JPG", want: "Images"},
		{name: "mixed case extension", filename: "b.Jpg", want: "Images"},
		{name: "document", filename: "notes.txt", want: "Documents"},
		{name: "video", filename: "clip.webm", want: "Videos"},
		{name: "audio", filename: "song.flac", want: "Audio"},
		{name: "archive", filename: "bundle.zip", want: "Archives"},
		{name: "compound extension uses last segment", filename: "archive.tar.gz", want: "Archives"},
		{name: "no extension", filename: "README", want: Fallback},
		{name: "unknown extension", filename: "binary.xyz", want: Fallback},
		{name: "trailing dot", filename: "weird.", want: Fallback},
		{name: "dotfile", filename: ".gitignore", want: Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.filename); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{filename: "a.jpg", want: "jpg"},
		{filename: "A.JPG", want: "jpg"},
		{filename: "archive.tar.gz", want: "gz"},
		{filename: "README", want: ""},
		{filename: "weird.", want: ""},
		{filename: ".bashrc", want: "bashrc"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := ExtensionOf(tt.filename); got != tt.want {
				t.Errorf("ExtensionOf(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{"Images", "Videos", "Audio", "Documents", "Archives"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() returned %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEveryTableExtensionResolves(t *testing.T) {
	for _, e := range table {
		for _, ext := range e.exts {
			if got := Categorize("file." + ext); got != e.name {
				t.Errorf("Categorize(file.%s) = %q, want %q", ext, got, e.name)
			}
		}
	}
}
