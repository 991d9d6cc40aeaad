package content

import (
	"strings"
	"unicode"
)

// Slugify converts a title into a URL-safe slug: lowercased, non-alphanumeric
// characters stripped, whitespace turned into single hyphens, leading and
// trailing hyphens trimmed. Slugify is idempotent: applying it to its own
// output returns the same string.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// Punctuation and other symbols are dropped entirely.
		}
	}

	return strings.TrimRight(b.String(), "-")
}
