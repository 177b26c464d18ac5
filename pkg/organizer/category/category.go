// Package category maps file extensions to organization categories.
// The table is fixed at process start; nothing mutates it at runtime.
package category

import (
	"path/filepath"
	"strings"
)

// Fallback is the category for files with no extension or an extension
// the table does not know.
const Fallback = "Others"

// entry pairs a category name with its owned extensions. Declaration
// order is the tie-break order if an extension ever appeared twice.
type entry struct {
	name string
	exts []string
}

// table is the static category table. Extensions are lowercase, no dot.
var table = []entry{
	{"Images", []string{"jpg", "jpeg", "png", "gif", "bmp", "webp", "svg", "heic"}},
	{"Videos", []string{"mp4", "mkv", "mov", "avi", "flv", "wmv", "webm"}},
	{"Audio", []string{"mp3", "wav", "aac", "flac", "ogg", "m4a"}},
	{"Documents", []string{"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "md", "odt"}},
	{"Archives", []string{"zip", "rar", "7z", "tar", "gz", "bz2", "xz"}},
}

// byExt is the lookup index built once from table. First declaration wins.
var byExt = func() map[string]string {
	idx := make(map[string]string, 64)
	for _, e := range table {
		for _, ext := range e.exts {
			if _, taken := idx[ext]; !taken {
				idx[ext] = e.name
			}
		}
	}
	return idx
}()

// Names returns the category names in declaration order, without Fallback.
func Names() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}

// ExtensionOf returns the lowercase extension of filename without the
// leading dot, or "" when the name has no extension. Only the portion
// after the last dot counts, so "archive.tar.gz" yields "gz".
func ExtensionOf(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Categorize returns the category owning filename's extension, matching
// case-insensitively. Unknown and missing extensions map to Fallback.
func Categorize(filename string) string {
	ext := ExtensionOf(filename)
	if ext == "" {
		return Fallback
	}
	if name, ok := byExt[ext]; ok {
		return name
	}
	return Fallback
}
