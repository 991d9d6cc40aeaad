// Package textmetrics provides pure text-quality measurements: syllable
// estimation, a Flesch-like readability score, reading time, and stopword
// filtered term-frequency extraction. All functions are total over string
// input; empty input yields defined degenerate values rather than errors.
package textmetrics

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// WordsPerMinute is the assumed reading speed for reading-time estimates.
const WordsPerMinute = 200

// stopwords are common English function words excluded from term-frequency
// extraction.
var stopwords = map[string]struct{}{
	"about": {}, "after": {}, "also": {}, "and": {}, "are": {}, "been": {},
	"before": {}, "being": {}, "between": {}, "both": {}, "but": {}, "can": {},
	"could": {}, "does": {}, "each": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "his": {}, "her": {}, "how": {}, "into": {}, "its": {},
	"just": {}, "more": {}, "most": {}, "not": {}, "only": {}, "other": {},
	"our": {}, "over": {}, "should": {}, "some": {}, "such": {}, "than": {},
	"that": {}, "the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"under": {}, "very": {}, "was": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "will": {}, "with": {},
	"would": {}, "you": {}, "your": {},
}

// minTermLength filters out short tokens during term-frequency extraction.
const minTermLength = 4

// EstimateSyllables estimates the syllable count of a single word by counting
// transitions into vowel groups. A trailing silent "e" removes one syllable.
// Any non-empty word counts as at least one syllable.
func EstimateSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// ReadabilityScore computes a Flesch-like reading-ease score clamped to
// [0, 100]. Higher scores read easier. Text with no words or no sentences
// scores 0.
func ReadabilityScore(text string) int {
	words := Words(text)
	sentences := Sentences(text)
	// FieldsFunc yields the whole text as one segment when no terminator is
	// present; unterminated text has no measurable sentences.
	if len(words) == 0 || len(sentences) == 0 || !strings.ContainsAny(text, ".!?") {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += EstimateSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(len(sentences))) -
		84.6*(float64(syllables)/float64(len(words)))

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// ReadingTime estimates reading time in whole minutes, assuming
// WordsPerMinute. Any non-empty text takes at least one minute; empty text
// takes zero.
func ReadingTime(text string) int {
	n := WordCount(text)
	if n == 0 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(WordsPerMinute)))
}

// WordCount returns the number of words in text.
func WordCount(text string) int {
	return len(Words(text))
}

// Words splits text into word tokens, dropping punctuation.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// Sentences splits text into non-empty sentence segments delimited by
// '.', '!' or '?'.
func Sentences(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := segments[:0]
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// TermCount is a word paired with its occurrence count.
type TermCount struct {
	Term  string
	Count int
}

// TermFrequency lowercases and tokenizes text, keeps tokens of at least four
// characters that are not stopwords, and returns terms ordered by descending
// count. Ties keep first-occurrence order, so the ranking is stable across
// calls.
func TermFrequency(text string) []TermCount {
	counts := make(map[string]int)
	var order []string

	for _, token := range Words(strings.ToLower(text)) {
		token = strings.Trim(token, "'")
		if len(token) < minTermLength {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	firstSeen := make(map[string]int, len(order))
	for i, term := range order {
		firstSeen[term] = i
	}

	result := make([]TermCount, 0, len(order))
	for _, term := range order {
		result = append(result, TermCount{Term: term, Count: counts[term]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return firstSeen[result[i].Term] < firstSeen[result[j].Term]
	})
	return result
}

// TopTerms returns up to n highest-frequency terms from text.
func TopTerms(text string, n int) []string {
	freq := TermFrequency(text)
	if len(freq) > n {
		freq = freq[:n]
	}
	terms := make([]string, len(freq))
	for i, tc := range freq {
		terms[i] = tc.Term
	}
	return terms
}
