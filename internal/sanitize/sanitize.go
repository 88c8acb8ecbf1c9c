// Package sanitize turns client-supplied file names into safe, collision-free
// storage names and classifies them into their light/max variant group.
package sanitize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Variant tags which upload group a file belongs to, derived from the
// folder structure the client uploaded it with.
type Variant int

const (
	VariantNone Variant = iota
	VariantLight
	VariantMax
)

func (v Variant) String() string {
	switch v {
	case VariantLight:
		return "light"
	case VariantMax:
		return "max"
	default:
		return "none"
	}
}

// FieldPrefixSep joins a variant tag to a file name when the client cannot
// send real paths, e.g. "light___beach.jpg".
const FieldPrefixSep = "___"

const fallbackName = "photo"

var illegalChars = `<>:"/\|?*`

// Classify splits a relative upload path into its variant group and bare
// file name. The variant comes from the deepest ancestor directory named
// "light" or "max" (case-insensitive), or from a "light___"/"max___" prefix
// on the name itself.
func Classify(relPath string) (Variant, string) {
	relPath = strings.ReplaceAll(relPath, "\\", "/")

	if i := strings.Index(relPath, FieldPrefixSep); i >= 0 && !strings.Contains(relPath, "/") {
		switch strings.ToLower(relPath[:i]) {
		case "light":
			return VariantLight, relPath[i+len(FieldPrefixSep):]
		case "max":
			return VariantMax, relPath[i+len(FieldPrefixSep):]
		}
	}

	segments := strings.Split(relPath, "/")
	base := segments[len(segments)-1]

	// Deepest ancestor wins: scan the directory segments from the end.
	for i := len(segments) - 2; i >= 0; i-- {
		switch strings.ToLower(segments[i]) {
		case "light":
			return VariantLight, base
		case "max":
			return VariantMax, base
		}
	}

	return VariantNone, base
}

// Filename makes a name safe for common filesystems: directory separators
// are stripped, illegal characters become underscores, whitespace runs
// collapse to a single space.
func Filename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			// Tabs and newlines fold into the whitespace collapse below.
			b.WriteRune(r)
		case r < 0x20 || strings.ContainsRune(illegalChars, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
	if cleaned == "" || strings.Trim(cleaned, "._ ") == "" {
		return fallbackName
	}

	return cleaned
}

// UniqueName returns name, or name with a " (N)" suffix before the
// extension, such that no file of that name exists in dir yet.
func UniqueName(dir, name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for n := 1; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
	}
}

// Title derives a photo display title from a file name by stripping the
// extension.
func Title(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
