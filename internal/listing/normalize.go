package listing

import (
	"strings"
	"unicode"
)

// NormalizeKey converts a free-form category label or URL path segment into a
// canonical comparison key: surrounding whitespace and path separators are
// stripped, letters are lower-cased, underscores and whitespace runs become
// single hyphens, and repeated hyphens collapse to one.
//
// NormalizeKey is idempotent: NormalizeKey(NormalizeKey(s)) == NormalizeKey(s).
func NormalizeKey(input string) string {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.Trim(trimmed, "/")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		default:
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		}
	}

	return b.String()
}
