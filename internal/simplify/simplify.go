// Package simplify rewrites content into plainer language: dictionary-driven
// word substitution across three vocabulary tiers and splitting of overlong
// sentences. All transforms are static lookups, so output is deterministic.
package simplify

import (
	"strings"
	"unicode"
)

// MaxSentenceWords is the word count above which a sentence is split.
const MaxSentenceWords = 20

// substitutions maps complex or jargon words to plain-language replacements,
// keyed lowercase. Three tiers: general vocabulary, financial jargon, and
// legal/medical jargon.
var substitutions = map[string]string{
	// General vocabulary.
	"utilize":       "use",
	"utilization":   "use",
	"comprehensive": "complete",
	"facilitate":    "help",
	"demonstrate":   "show",
	"approximately": "about",
	"additionally":  "also",
	"subsequently":  "later",
	"commence":      "start",
	"terminate":     "end",
	"endeavor":      "try",
	"sufficient":    "enough",
	"numerous":      "many",
	"purchase":      "buy",
	"obtain":        "get",
	"require":       "need",
	"assistance":    "help",
	"regarding":     "about",
	"prior":         "earlier",
	"modification":  "change",

	// Financial jargon.
	"annuity":         "retirement income plan",
	"annuitization":   "turning savings into income",
	"disbursement":    "payout",
	"diversification": "spreading your money",
	"liquidity":       "access to cash",
	"portfolio":       "investments",
	"amortization":    "gradual payoff",
	"appreciation":    "growth in value",
	"depreciation":    "loss in value",
	"fiduciary":       "advisor required to act in your interest",

	// Legal and medical jargon.
	"beneficiary":  "person who receives the money",
	"testator":     "person making the will",
	"probate":      "court review of a will",
	"codicil":      "update to a will",
	"formulary":    "covered drug list",
	"premium":      "monthly cost",
	"deductible":   "amount you pay first",
	"coinsurance":  "your share of the cost",
	"subrogation":  "insurer claiming repayment",
	"conservator":  "court-appointed caretaker",
}

// conjunctions are the coordinating conjunctions usable as sentence split
// points.
var conjunctions = map[string]struct{}{
	"and": {}, "but": {}, "or": {}, "nor": {}, "for": {}, "so": {}, "yet": {},
}

// Simplify applies word substitutions and splits sentences longer than
// MaxSentenceWords. Substitution is a case-insensitive whole-word match; a
// replaced word keeps the leading capitalization of the original.
func Simplify(text string) string {
	if text == "" {
		return ""
	}
	return splitLongSentences(substituteWords(text))
}

// substituteWords replaces each mapped word, preserving surrounding
// punctuation and leading-capital case.
func substituteWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		if !isWordByte(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}

		j := i
		for j < len(text) && isWordByte(text[j]) {
			j++
		}
		word := text[i:j]
		if repl, ok := substitutions[strings.ToLower(word)]; ok {
			b.WriteString(matchCase(word, repl))
		} else {
			b.WriteString(word)
		}
		i = j
	}

	return b.String()
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '\''
}

// matchCase capitalizes the replacement when the original word started with
// an upper-case letter.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	first := rune(original[0])
	if unicode.IsUpper(first) {
		runes := []rune(replacement)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return replacement
}

// splitLongSentences breaks any sentence above MaxSentenceWords at the
// nearest comma, semicolon, or coordinating conjunction past the sentence's
// midpoint. A sentence with no such break point is left as-is.
func splitLongSentences(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '.' || c == '!' || c == '?' {
			out.WriteString(splitSentence(text[start : i+1]))
			start = i + 1
		}
	}
	if start < len(text) {
		out.WriteString(splitSentence(text[start:]))
	}

	return out.String()
}

// splitSentence splits one sentence in two when it exceeds the word budget.
func splitSentence(sentence string) string {
	words := strings.Fields(sentence)
	if len(words) <= MaxSentenceWords {
		return sentence
	}

	mid := len(words) / 2
	split := -1
	for i := mid; i < len(words)-1; i++ {
		w := words[i]
		if strings.HasSuffix(w, ",") || strings.HasSuffix(w, ";") {
			split = i + 1
			break
		}
		if _, ok := conjunctions[strings.ToLower(w)]; ok {
			split = i
			break
		}
	}
	if split <= 0 || split >= len(words) {
		return sentence
	}

	leading := leadingWhitespace(sentence)
	first := strings.Join(words[:split], " ")
	first = strings.TrimRight(first, ",;")
	if !strings.HasSuffix(first, ".") {
		first += "."
	}

	second := strings.Join(words[split:], " ")
	second = capitalizeFirst(second)

	return leading + first + " " + second
}

func leadingWhitespace(s string) string {
	for i, r := range s {
		if !unicode.IsSpace(r) {
			return s[:i]
		}
	}
	return s
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			return string(runes)
		}
		if !unicode.IsSpace(r) {
			break
		}
	}
	return s
}
