// Package seo builds search-engine metadata from content: bounded titles and
// descriptions, semantic keyword sets, topic clusters, and canned FAQ stubs.
package seo

import (
	"strings"

	"planwell/internal/simplify"
	"planwell/internal/textmetrics"
)

const (
	// BrandSuffix is appended to generated titles when it fits the budget.
	BrandSuffix = " | PlanWell"

	// MaxTitleLength bounds generated page titles.
	MaxTitleLength = 60
	// MaxDescriptionLength bounds generated meta descriptions.
	MaxDescriptionLength = 155

	// maxFrequencyKeywords caps how many term-frequency words join the
	// semantic keyword set.
	maxFrequencyKeywords = 15
	// MaxSemanticKeywords caps the full semantic keyword set.
	MaxSemanticKeywords = 20

	// minDescriptionSentence is the shortest sentence worth using as a
	// description.
	minDescriptionSentence = 20
)

// GenerateTitle simplifies the raw title, trims it to the title budget on
// word boundaries, and appends the brand suffix only when the whole suffix
// fits.
func GenerateTitle(rawTitle string) string {
	title := strings.TrimSpace(simplify.Simplify(rawTitle))
	title = simplify.TruncateToBudget(title, MaxTitleLength, false)
	return simplify.AppendIfFits(title, BrandSuffix, MaxTitleLength)
}

// GenerateDescription builds a meta description from content: the first
// sentence of at least minDescriptionSentence characters (or the leading
// text when no sentence qualifies), simplified, period-terminated, and
// truncated with an ellipsis if still over budget.
func GenerateDescription(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	var candidate string
	for _, s := range textmetrics.Sentences(content) {
		s = strings.TrimSpace(s)
		if len(s) >= minDescriptionSentence {
			candidate = s
			break
		}
	}
	if candidate == "" {
		candidate = content
		if len(candidate) > MaxDescriptionLength {
			candidate = candidate[:MaxDescriptionLength]
		}
	}

	desc := strings.TrimSpace(simplify.Simplify(candidate))
	desc = strings.TrimRight(desc, ".!? ")
	desc += "."
	if len(desc) > MaxDescriptionLength {
		desc = simplify.TruncateToBudget(desc, MaxDescriptionLength, true)
	}
	return desc
}

// GenerateSemanticKeywords unions caller-supplied seed keywords with up to
// maxFrequencyKeywords top-frequency terms from the content. Seeds keep
// their given order and are never dropped; duplicates are removed
// case-insensitively. The result is capped at MaxSemanticKeywords.
func GenerateSemanticKeywords(content string, seeds []string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, MaxSemanticKeywords)

	for _, seed := range seeds {
		seed = strings.TrimSpace(seed)
		if seed == "" {
			continue
		}
		key := strings.ToLower(seed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keywords = append(keywords, seed)
	}

	for _, term := range textmetrics.TopTerms(content, maxFrequencyKeywords) {
		if len(keywords) >= MaxSemanticKeywords {
			break
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		keywords = append(keywords, term)
	}

	return keywords
}
