package content

// SearchQuery is a single search invocation. It is never persisted.
type SearchQuery struct {
	Term    string        `json:"term"`
	Filters SearchFilters `json:"filters"`
	Limit   int           `json:"limit,omitempty"`
	Offset  int           `json:"offset,omitempty"`
}

// SearchFilters narrows candidates by record attributes. Dimensions combine
// with AND; values within a dimension combine with OR. An empty list leaves
// that dimension unconstrained.
type SearchFilters struct {
	ContentType     []string `json:"content_type,omitempty"`
	Category        []string `json:"category,omitempty"`
	DifficultyLevel []string `json:"difficulty_level,omitempty"`
}

// MatchedField names a record field that contributed to a result's score.
type MatchedField string

const (
	FieldTitle    MatchedField = "title"
	FieldExcerpt  MatchedField = "excerpt"
	FieldContent  MatchedField = "content"
	FieldKeywords MatchedField = "keywords"
)

// SearchResult wraps a record with its relevance score and the fields the
// term matched in, for UI highlighting.
type SearchResult struct {
	Record         *Record        `json:"record"`
	RelevanceScore int            `json:"relevance_score"`
	MatchedFields  []MatchedField `json:"matched_fields"`
}

// PagedResults is one page of a search response. Total counts all matches
// before pagination was applied.
type PagedResults struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}
