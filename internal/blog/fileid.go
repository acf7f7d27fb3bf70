package blog

import "strings"

// FileID derives a post's file id from its title: spaces become dashes and
// everything outside [A-Za-z0-9_-] is dropped.
func FileID(title string) string {
	return SanitizeFileID(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
}

// SanitizeFileID strips every character outside [A-Za-z0-9_-]. The result
// is safe to use as a file basename: it never contains a separator or a dot.
func SanitizeFileID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		if isSafe(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_':
		return true
	default:
		return false
	}
}
