// Package search implements deterministic full-text content search: substring
// retrieval through the content store, filter conjunction, weighted relevance
// scoring, and stable ordering.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"planwell/internal/content"
	"planwell/internal/storage"
)

// ErrRetrievalFailed reports that the content store could not be queried.
// Callers must not present it as "no results": a failed search and an empty
// search are different user-visible states.
var ErrRetrievalFailed = errors.New("search retrieval failed")

// Weights are the per-field relevance weights. A record's score is the sum
// of the weights of every field the term matches. The defaults are the
// product's documented scoring policy; change them deliberately, not by
// inference.
type Weights struct {
	Title    int
	Excerpt  int
	Content  int
	Keywords int
}

// DefaultWeights is the standard scoring policy.
var DefaultWeights = Weights{
	Title:    10,
	Excerpt:  5,
	Content:  3,
	Keywords: 2,
}

// DefaultLimit is the page size used when a query does not set one.
const DefaultLimit = 20

// Engine scores and ranks content records against search queries.
type Engine struct {
	store        storage.ContentStore
	weights      Weights
	defaultLimit int
	logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the relevance weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithDefaultLimit overrides the page size used when a query sets none.
func WithDefaultLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultLimit = n
		}
	}
}

// New creates a search Engine backed by the given store.
func New(store storage.ContentStore, opts ...Option) *Engine {
	e := &Engine{
		store:        store,
		weights:      DefaultWeights,
		defaultLimit: DefaultLimit,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search retrieves published records matching the query term, applies
// filters, scores every surviving candidate, and returns one page of results
// ordered by descending relevance. Ties keep the store's retrieval order.
//
// An empty or whitespace-only term returns an empty page without contacting
// the store. A store failure returns an error wrapping ErrRetrievalFailed.
func (e *Engine) Search(ctx context.Context, query content.SearchQuery) (*content.PagedResults, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = e.defaultLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	term := strings.TrimSpace(query.Term)
	if term == "" {
		return &content.PagedResults{Results: []content.SearchResult{}, Limit: limit, Offset: offset}, nil
	}

	candidates, err := e.store.QueryBySubstring(ctx, term)
	if err != nil {
		e.logger.ErrorContext(ctx, "content store query failed", "term", term, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}

	results := make([]content.SearchResult, 0, len(candidates))
	for _, rec := range candidates {
		if !rec.IsPublished() {
			continue
		}
		if !matchesFilters(rec, query.Filters) {
			continue
		}
		score, fields := e.score(term, rec)
		results = append(results, content.SearchResult{
			Record:         rec,
			RelevanceScore: score,
			MatchedFields:  fields,
		})
	}

	// Stable sort: equal scores keep the retrieval order, so repeated
	// searches against an unchanged store return identical pages.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	total := len(results)
	page := paginate(results, offset, limit)

	e.logger.DebugContext(ctx, "search complete", "term", term, "total", total, "returned", len(page))

	return &content.PagedResults{
		Results: page,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// score computes the relevance score for one record and reports which fields
// matched. It is a pure function of (term, record): identical inputs always
// produce identical scores.
func (e *Engine) score(term string, rec *content.Record) (int, []content.MatchedField) {
	lowered := strings.ToLower(term)

	score := 0
	var fields []content.MatchedField

	if containsFold(rec.Title, lowered) {
		score += e.weights.Title
		fields = append(fields, content.FieldTitle)
	}
	if containsFold(rec.Excerpt, lowered) {
		score += e.weights.Excerpt
		fields = append(fields, content.FieldExcerpt)
	}
	if containsFold(rec.RawContent, lowered) {
		score += e.weights.Content
		fields = append(fields, content.FieldContent)
	}
	if anyContainsFold(rec.SemanticKeywords, lowered) || anyContainsFold(rec.Tags, lowered) {
		score += e.weights.Keywords
		fields = append(fields, content.FieldKeywords)
	}

	return score, fields
}

// containsFold reports whether s contains loweredTerm case-insensitively.
// loweredTerm must already be lowercase.
func containsFold(s, loweredTerm string) bool {
	return strings.Contains(strings.ToLower(s), loweredTerm)
}

func anyContainsFold(values []string, loweredTerm string) bool {
	for _, v := range values {
		if containsFold(v, loweredTerm) {
			return true
		}
	}
	return false
}

// matchesFilters applies the query filters: every non-empty dimension must
// match (AND across dimensions), and within a dimension any listed value
// suffices (OR).
func matchesFilters(rec *content.Record, f content.SearchFilters) bool {
	if len(f.ContentType) > 0 && !containsValue(f.ContentType, string(rec.ContentType)) {
		return false
	}
	if len(f.Category) > 0 && !containsValue(f.Category, rec.Category) {
		return false
	}
	if len(f.DifficultyLevel) > 0 && !containsValue(f.DifficultyLevel, rec.DifficultyLevel) {
		return false
	}
	return true
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

// paginate slices one page out of the fully sorted result list. Sorting the
// whole list first keeps page boundaries consistent across requests.
func paginate(results []content.SearchResult, offset, limit int) []content.SearchResult {
	if offset >= len(results) {
		return []content.SearchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
