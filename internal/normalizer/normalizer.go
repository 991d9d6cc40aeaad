// Package normalizer transforms raw content files (HTML, markdown, plain
// text) into canonical content records: it extracts the readable body,
// classifies type and category from filename hints, and attaches SEO
// metadata and quality metrics. The transform is pure; persistence belongs
// to the caller.
package normalizer

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"planwell/internal/content"
	"planwell/internal/seo"
	"planwell/internal/simplify"
	"planwell/internal/textmetrics"
)

const (
	// excerptLength bounds the record excerpt.
	excerptLength = 200

	// DefaultTitle replaces an empty extracted title.
	DefaultTitle = "Untitled"
	// DefaultCategory is used when no category keyword matches.
	DefaultCategory = "general"
)

// RawInput is one raw content file handed to the normalizer.
type RawInput struct {
	// Filename drives format detection and type/category classification.
	Filename string
	// Data is the raw file content.
	Data []byte
	// SeedKeywords are optional author-supplied keywords, kept verbatim at
	// the front of the semantic keyword set.
	SeedKeywords []string
	// Category overrides filename-based category classification when set.
	Category string
}

// Tables are the classification lookup tables. They are injected at
// construction so tests can supply their own mappings.
type Tables struct {
	// TypeByKeyword maps a filename keyword to a content type.
	TypeByKeyword map[string]content.ContentType
	// CategoryByKeyword maps a filename keyword to a category.
	CategoryByKeyword map[string]string
}

// DefaultTables returns the production classification tables.
func DefaultTables() Tables {
	return Tables{
		TypeByKeyword: map[string]content.ContentType{
			"calculator": content.TypeCalculator,
			"estimator":  content.TypeCalculator,
			"tool":       content.TypeTool,
			"planner":    content.TypeTool,
			"worksheet":  content.TypeTool,
			"checklist":  content.TypeChecklist,
			"comparison": content.TypeComparison,
			"versus":     content.TypeComparison,
			"vs":         content.TypeComparison,
			"guide":      content.TypeGuide,
		},
		CategoryByKeyword: map[string]string{
			"retirement": "retirement-planning",
			"401k":       "retirement-planning",
			"pension":    "retirement-planning",
			"social":     "retirement-planning",
			"medicare":   "medicare",
			"medigap":    "medicare",
			"estate":     "estate-planning",
			"will":       "estate-planning",
			"trust":      "estate-planning",
			"insurance":  "insurance",
			"annuity":    "insurance",
			"housing":    "housing",
			"downsizing": "housing",
			"tax":        "taxes",
			"taxes":      "taxes",
			"rmd":        "taxes",
			"invest":     "investments",
			"portfolio":  "investments",
			"ira":        "investments",
		},
	}
}

// Normalizer converts raw inputs to canonical records.
type Normalizer struct {
	tables   Tables
	markdown goldmark.Markdown
	now      func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithTables overrides the classification tables.
func WithTables(t Tables) Option {
	return func(n *Normalizer) { n.tables = t }
}

// WithClock overrides the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// New creates a Normalizer with the default tables.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		tables: DefaultTables(),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize maps a raw input to a complete ContentRecord. It never fails:
// malformed input degrades to documented defaults (title "Untitled", empty
// excerpt, readability 0) rather than erroring, since these are advisory
// content-quality fields.
func (n *Normalizer) Normalize(raw RawInput) *content.Record {
	extracted := n.extract(raw)

	title := strings.TrimSpace(extracted.title)
	if title == "" {
		title = titleFromFilename(raw.Filename)
	}
	if title == "" {
		title = DefaultTitle
	}

	body := strings.TrimSpace(extracted.text)

	contentType, typeDefaulted := n.classifyType(raw.Filename)
	category, categoryDefaulted := n.classifyCategory(raw)

	slug := content.Slugify(title)
	now := n.now().UTC()

	record := &content.Record{
		ID:                 slug,
		Slug:               slug,
		Title:              seo.GenerateTitle(title),
		RawContent:         body,
		Excerpt:            makeExcerpt(body),
		MetaDescription:    seo.GenerateDescription(body),
		ContentType:        contentType,
		Category:           category,
		SemanticKeywords:   seo.GenerateSemanticKeywords(body, raw.SeedKeywords),
		ReadabilityScore:   textmetrics.ReadabilityScore(body),
		ReadingTimeMinutes: textmetrics.ReadingTime(body),
		Status:             content.StatusPublished,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	record.Tags = tagsFromKeywords(record.SemanticKeywords)
	content.EmptyConfigFor(contentType, record)

	// Records that fell through to defaults stay searchable but carry a
	// provenance marker so defaulting can be audited later.
	if typeDefaulted || categoryDefaulted {
		record.Metadata = map[string]string{"classifier": "default"}
	}

	return record
}

// maxTags caps the tag list derived from semantic keywords.
const maxTags = 10

func tagsFromKeywords(keywords []string) []string {
	if len(keywords) <= maxTags {
		out := make([]string, len(keywords))
		copy(out, keywords)
		return out
	}
	out := make([]string, maxTags)
	copy(out, keywords[:maxTags])
	return out
}

// classifyType resolves the content type from filename keywords, defaulting
// to guide. The bool reports whether the default was used.
func (n *Normalizer) classifyType(filename string) (content.ContentType, bool) {
	for _, token := range filenameTokens(filename) {
		if t, ok := n.tables.TypeByKeyword[token]; ok {
			return t, false
		}
	}
	return content.TypeGuide, true
}

// classifyCategory resolves the category from the explicit hint or filename
// keywords, defaulting to DefaultCategory.
func (n *Normalizer) classifyCategory(raw RawInput) (string, bool) {
	if raw.Category != "" {
		return raw.Category, false
	}
	for _, token := range filenameTokens(raw.Filename) {
		if c, ok := n.tables.CategoryByKeyword[token]; ok {
			return c, false
		}
	}
	return DefaultCategory, true
}

func filenameTokens(filename string) []string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)
	return strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
}

func titleFromFilename(filename string) string {
	tokens := filenameTokens(filename)
	for i, t := range tokens {
		if len(t) > 0 {
			tokens[i] = strings.ToUpper(t[:1]) + t[1:]
		}
	}
	return strings.Join(tokens, " ")
}

// makeExcerpt cuts the first excerptLength characters of body at a word
// boundary and appends an ellipsis. Short bodies are returned whole.
func makeExcerpt(body string) string {
	if body == "" {
		return ""
	}
	if len(body) <= excerptLength {
		return body
	}
	return simplify.TruncateToBudget(body, excerptLength, true)
}

// extracted holds the raw title and plain text pulled from one input file.
type extracted struct {
	title string
	text  string
}

// extract picks the extraction path by file extension. Markdown renders to
// HTML first so both paths share the HTML extractor.
func (n *Normalizer) extract(raw RawInput) extracted {
	switch strings.ToLower(filepath.Ext(raw.Filename)) {
	case ".html", ".htm":
		return n.extractHTML(raw.Data)
	case ".md", ".markdown":
		var buf bytes.Buffer
		if err := n.markdown.Convert(raw.Data, &buf); err != nil {
			// Fall back to treating the bytes as plain text.
			return extracted{text: string(raw.Data)}
		}
		return n.extractHTML(buf.Bytes())
	default:
		return extracted{text: string(raw.Data)}
	}
}

// extractHTML pulls the readable article body out of an HTML document.
// go-readability isolates the main content; goquery supplies the title and
// heading fallbacks when readability finds none.
func (n *Normalizer) extractHTML(data []byte) extracted {
	pageURL, _ := url.Parse("https://planwell.local/")

	var out extracted
	article, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err == nil {
		out.title = strings.TrimSpace(article.Title)
		out.text = collapseWhitespace(article.TextContent)
	}

	doc, qerr := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if qerr != nil {
		return out
	}
	if out.title == "" {
		out.title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if out.title == "" {
		out.title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if out.text == "" {
		doc.Find("script, style, noscript").Remove()
		out.text = collapseWhitespace(doc.Find("body").Text())
		if out.text == "" {
			out.text = collapseWhitespace(doc.Text())
		}
	}
	return out
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
