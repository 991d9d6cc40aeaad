package content

import "time"

// ContentType classifies what kind of page a record renders as.
type ContentType string

const (
	TypeGuide      ContentType = "guide"
	TypeCalculator ContentType = "calculator"
	TypeTool       ContentType = "tool"
	TypeChecklist  ContentType = "checklist"
	TypeComparison ContentType = "comparison"
)

// Status represents the publishing state of a record. Only published
// records are eligible for search and listing.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Record is the canonical persisted unit of site content.
type Record struct {
	// ID is the stable identifier, derived from the slug.
	ID string `json:"id"`
	// Slug is the URL-safe unique key derived from the title.
	Slug  string `json:"slug"`
	Title string `json:"title"`
	// RawContent is the normalized plain-text body.
	RawContent string `json:"raw_content"`
	// Excerpt is the first ~200 characters of the body, cut at a word boundary.
	Excerpt         string      `json:"excerpt"`
	MetaDescription string      `json:"meta_description"`
	ContentType     ContentType `json:"content_type"`
	Category        string      `json:"category"`
	DifficultyLevel string      `json:"difficulty_level,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
	SemanticKeywords []string   `json:"semantic_keywords,omitempty"`
	// ReadabilityScore is a 0-100 Flesch-like estimate; higher reads easier.
	ReadabilityScore   int    `json:"readability_score"`
	ReadingTimeMinutes int    `json:"reading_time_minutes"`
	Status             Status `json:"status"`

	// Optional per-type configuration payloads. The core passes these
	// through untouched; only the rendering layer interprets them.
	CalculatorConfig *CalculatorConfig `json:"calculator_config,omitempty"`
	ToolConfig       *ToolConfig       `json:"tool_config,omitempty"`
	ChecklistConfig  *ChecklistConfig  `json:"checklist_config,omitempty"`

	// Metadata carries provenance hints (e.g. whether classification fell
	// back to defaults). Not rendered.
	Metadata map[string]string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPublished reports whether the record is visible to search and listing.
func (r *Record) IsPublished() bool {
	return r.Status == StatusPublished
}

// CalculatorConfig describes an interactive calculator: named inputs and
// arithmetic formulas evaluated over them.
type CalculatorConfig struct {
	Inputs   []CalculatorInput  `json:"inputs"`
	Formulas map[string]string  `json:"formulas"`
	Defaults map[string]float64 `json:"defaults,omitempty"`
}

// CalculatorInput describes a single calculator input field.
type CalculatorInput struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Min   float64 `json:"min,omitempty"`
	Max   float64 `json:"max,omitempty"`
}

// ToolConfig describes a multi-step interactive tool.
type ToolConfig struct {
	Steps []ToolStep `json:"steps"`
}

// ToolStep is a single step in a multi-step tool.
type ToolStep struct {
	Title  string   `json:"title"`
	Fields []string `json:"fields,omitempty"`
}

// ChecklistConfig describes a checklist's items.
type ChecklistConfig struct {
	Items []ChecklistItem `json:"items"`
}

// ChecklistItem is a single checkable entry.
type ChecklistItem struct {
	Text     string `json:"text"`
	Optional bool   `json:"optional,omitempty"`
}

// EmptyConfigFor returns a structurally valid but empty configuration stub
// for the given content type, attached to the matching config field of a
// fresh record. Guides and comparisons carry no configuration.
func EmptyConfigFor(t ContentType, r *Record) {
	switch t {
	case TypeCalculator:
		r.CalculatorConfig = &CalculatorConfig{
			Inputs:   []CalculatorInput{},
			Formulas: map[string]string{},
		}
	case TypeTool:
		r.ToolConfig = &ToolConfig{Steps: []ToolStep{}}
	case TypeChecklist:
		r.ChecklistConfig = &ChecklistConfig{Items: []ChecklistItem{}}
	}
}
