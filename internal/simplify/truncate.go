package simplify

import "strings"

// TruncateToBudget accumulates whole words while the result stays within
// maxChars, then appends an ellipsis when anything was cut. Words are never
// split mid-token.
func TruncateToBudget(text string, maxChars int, appendEllipsis bool) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxChars {
		return text
	}

	words := strings.Fields(text)
	var b strings.Builder
	for _, w := range words {
		added := len(w)
		if b.Len() > 0 {
			added++ // separating space
		}
		if b.Len()+added > maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}

	result := b.String()
	if appendEllipsis && result != "" && len(result)+3 <= maxChars {
		result += "..."
	}
	return result
}

// AppendIfFits appends suffix to text only when the combined string stays
// within maxChars. The suffix is all-or-nothing: a partial suffix is never
// emitted.
func AppendIfFits(text, suffix string, maxChars int) string {
	if len(text)+len(suffix) <= maxChars {
		return text + suffix
	}
	return text
}
