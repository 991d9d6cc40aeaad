package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_content_store.go -package=mocks planwell/internal/storage ContentStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"planwell/internal/content"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// ContentStore defines the interface for content storage operations.
type ContentStore interface {
	// Upsert inserts a new content record or updates an existing one by slug.
	Upsert(ctx context.Context, record *content.Record) error
	// GetBySlug gets a record by its slug.
	// Returns nil and ErrNotFound if not found.
	GetBySlug(ctx context.Context, slug string) (*content.Record, error)
	// QueryBySubstring returns published records whose title, excerpt,
	// content, or keyword set contains term case-insensitively, in a stable
	// order (creation time, then slug).
	QueryBySubstring(ctx context.Context, term string) ([]*content.Record, error)
	// ListPublished returns all published records in stable order.
	ListPublished(ctx context.Context) ([]*content.Record, error)
}

// ContentRepo provides methods for content operations backed by SQLite.
// It implements the ContentStore interface.
type ContentRepo struct {
	db *sql.DB
}

// NewContentRepo creates a new ContentRepo.
func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

const contentColumns = `id, slug, title, raw_content, excerpt, meta_description,
	content_type, category, difficulty_level, tags, semantic_keywords,
	readability_score, reading_time_minutes, status,
	calculator_config, tool_config, checklist_config, metadata,
	created_at, updated_at`

// Upsert inserts a record or updates the existing row with the same slug.
// updated_at is refreshed on every write; created_at is preserved.
func (r *ContentRepo) Upsert(ctx context.Context, rec *content.Record) error {
	tags, err := marshalJSON(rec.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	keywords, err := marshalJSON(rec.SemanticKeywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}
	calcCfg, err := marshalNullable(rec.CalculatorConfig)
	if err != nil {
		return fmt.Errorf("failed to encode calculator config: %w", err)
	}
	toolCfg, err := marshalNullable(rec.ToolConfig)
	if err != nil {
		return fmt.Errorf("failed to encode tool config: %w", err)
	}
	checkCfg, err := marshalNullable(rec.ChecklistConfig)
	if err != nil {
		return fmt.Errorf("failed to encode checklist config: %w", err)
	}
	meta, err := marshalNullable(rec.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO content (`+contentColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (slug) DO UPDATE SET
		 title = excluded.title,
		 raw_content = excluded.raw_content,
		 excerpt = excluded.excerpt,
		 meta_description = excluded.meta_description,
		 content_type = excluded.content_type,
		 category = excluded.category,
		 difficulty_level = excluded.difficulty_level,
		 tags = excluded.tags,
		 semantic_keywords = excluded.semantic_keywords,
		 readability_score = excluded.readability_score,
		 reading_time_minutes = excluded.reading_time_minutes,
		 status = excluded.status,
		 calculator_config = excluded.calculator_config,
		 tool_config = excluded.tool_config,
		 checklist_config = excluded.checklist_config,
		 metadata = excluded.metadata,
		 updated_at = CURRENT_TIMESTAMP`,
		rec.ID, rec.Slug, rec.Title, rec.RawContent, rec.Excerpt, rec.MetaDescription,
		string(rec.ContentType), rec.Category, rec.DifficultyLevel, tags, keywords,
		rec.ReadabilityScore, rec.ReadingTimeMinutes, string(rec.Status),
		calcCfg, toolCfg, checkCfg, meta,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert content record: %w", err)
	}

	return nil
}

// GetBySlug gets a record by slug. Returns nil and ErrNotFound if not found.
func (r *ContentRepo) GetBySlug(ctx context.Context, slug string) (*content.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+contentColumns+` FROM content WHERE slug = ?`, slug)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query content record: %w", err)
	}
	return rec, nil
}

// QueryBySubstring returns published records matching term case-insensitively
// in title, excerpt, content, or the keyword/tag sets. ORDER BY keeps the
// retrieval order stable so ranking ties stay deterministic.
func (r *ContentRepo) QueryBySubstring(ctx context.Context, term string) ([]*content.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contentColumns+` FROM content
		 WHERE status = 'published'
		   AND (instr(lower(title), lower(?)) > 0
		     OR instr(lower(excerpt), lower(?)) > 0
		     OR instr(lower(raw_content), lower(?)) > 0
		     OR instr(lower(semantic_keywords), lower(?)) > 0
		     OR instr(lower(tags), lower(?)) > 0)
		 ORDER BY datetime(created_at), slug`,
		term, term, term, term, term,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query content by substring: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectRecords(rows)
}

// ListPublished returns all published records in stable order.
func (r *ContentRepo) ListPublished(ctx context.Context) ([]*content.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contentColumns+` FROM content
		 WHERE status = 'published'
		 ORDER BY datetime(created_at), slug`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list published content: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectRecords(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*content.Record, error) {
	var rec content.Record
	var contentType, status string
	var tags, keywords string
	var calcCfg, toolCfg, checkCfg, meta sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&rec.ID, &rec.Slug, &rec.Title, &rec.RawContent, &rec.Excerpt, &rec.MetaDescription,
		&contentType, &rec.Category, &rec.DifficultyLevel, &tags, &keywords,
		&rec.ReadabilityScore, &rec.ReadingTimeMinutes, &status,
		&calcCfg, &toolCfg, &checkCfg, &meta,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	rec.ContentType = content.ContentType(contentType)
	rec.Status = content.Status(status)

	if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if err := json.Unmarshal([]byte(keywords), &rec.SemanticKeywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	if calcCfg.Valid {
		if err := json.Unmarshal([]byte(calcCfg.String), &rec.CalculatorConfig); err != nil {
			return nil, fmt.Errorf("failed to decode calculator config: %w", err)
		}
	}
	if toolCfg.Valid {
		if err := json.Unmarshal([]byte(toolCfg.String), &rec.ToolConfig); err != nil {
			return nil, fmt.Errorf("failed to decode tool config: %w", err)
		}
	}
	if checkCfg.Valid {
		if err := json.Unmarshal([]byte(checkCfg.String), &rec.ChecklistConfig); err != nil {
			return nil, fmt.Errorf("failed to decode checklist config: %w", err)
		}
	}
	if meta.Valid {
		if err := json.Unmarshal([]byte(meta.String), &rec.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}

	rec.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	rec.UpdatedAt, err = parseTimestamp(updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &rec, nil
}

func collectRecords(rows *sql.Rows) ([]*content.Record, error) {
	var records []*content.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate content rows: %w", err)
	}
	return records, nil
}

// parseTimestamp parses SQLite DATETIME values, trying the default format
// first and RFC3339 as a fallback.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func marshalJSON(v []string) (string, error) {
	if v == nil {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// marshalNullable encodes v as JSON, returning SQL NULL for nil values.
func marshalNullable(v any) (sql.NullString, error) {
	if isNil(v) {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func isNil(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case *content.CalculatorConfig:
		return val == nil
	case *content.ToolConfig:
		return val == nil
	case *content.ChecklistConfig:
		return val == nil
	case map[string]string:
		return val == nil
	}
	return false
}
