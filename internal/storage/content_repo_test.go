package storage

import (
	"context"
	"errors"
	"testing"

	"planwell/internal/content"
)

func newTestDB(t *testing.T) *ContentRepo {
	t.Helper()

	tmpDir := t.TempDir()
	db, err := New(tmpDir + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewContentRepo(db)
}

func testRecord(slug string) *content.Record {
	return &content.Record{
		ID:                 slug,
		Slug:               slug,
		Title:              "Medicare Enrollment Guide | PlanWell",
		RawContent:         "Medicare is federal health insurance. Enroll around your 65th birthday.",
		Excerpt:            "Learn Medicare basics",
		MetaDescription:    "Medicare is federal health insurance.",
		ContentType:        content.TypeGuide,
		Category:           "medicare",
		Tags:               []string{"medicare", "enrollment"},
		SemanticKeywords:   []string{"medicare", "enrollment", "coverage"},
		ReadabilityScore:   70,
		ReadingTimeMinutes: 1,
		Status:             content.StatusPublished,
	}
}

func TestContentRepo_UpsertAndGet(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	rec := testRecord("medicare-enrollment-guide")
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.GetBySlug(ctx, "medicare-enrollment-guide")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}

	if got.Title != rec.Title {
		t.Errorf("Title = %q, want %q", got.Title, rec.Title)
	}
	if got.ContentType != content.TypeGuide {
		t.Errorf("ContentType = %q, want guide", got.ContentType)
	}
	if len(got.SemanticKeywords) != 3 {
		t.Errorf("SemanticKeywords = %v, want 3 entries", got.SemanticKeywords)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestContentRepo_GetBySlug_NotFound(t *testing.T) {
	repo := newTestDB(t)

	_, err := repo.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBySlug() error = %v, want ErrNotFound", err)
	}
}

func TestContentRepo_UpsertUpdatesExisting(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	rec := testRecord("medicare-enrollment-guide")
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	rec.Title = "Updated Title | PlanWell"
	rec.ReadabilityScore = 85
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	got, err := repo.GetBySlug(ctx, "medicare-enrollment-guide")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != "Updated Title | PlanWell" {
		t.Errorf("Title = %q, not updated", got.Title)
	}
	if got.ReadabilityScore != 85 {
		t.Errorf("ReadabilityScore = %d, want 85", got.ReadabilityScore)
	}
}

func TestContentRepo_QueryBySubstring(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	a := testRecord("medicare-enrollment-guide")
	b := testRecord("retirement-savings-tips")
	b.Title = "Retirement Savings Tips | PlanWell"
	b.RawContent = "Save early. Consider Medicare premiums in your budget."
	b.Excerpt = "Save early"
	b.Tags = []string{"retirement"}
	b.SemanticKeywords = []string{"retirement", "savings"}
	b.Category = "retirement-planning"

	draft := testRecord("draft-medicare-notes")
	draft.Status = content.StatusDraft

	for _, rec := range []*content.Record{a, b, draft} {
		if err := repo.Upsert(ctx, rec); err != nil {
			t.Fatalf("Upsert(%s) error = %v", rec.Slug, err)
		}
	}

	got, err := repo.QueryBySubstring(ctx, "medicare")
	if err != nil {
		t.Fatalf("QueryBySubstring() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2 (draft must be excluded)", len(got))
	}
	for _, rec := range got {
		if rec.Status != content.StatusPublished {
			t.Errorf("unpublished record %q returned", rec.Slug)
		}
	}
}

func TestContentRepo_QueryBySubstring_CaseInsensitive(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if err := repo.Upsert(ctx, testRecord("medicare-enrollment-guide")); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	for _, term := range []string{"MEDICARE", "Medicare", "mEdIcArE"} {
		got, err := repo.QueryBySubstring(ctx, term)
		if err != nil {
			t.Fatalf("QueryBySubstring(%q) error = %v", term, err)
		}
		if len(got) != 1 {
			t.Errorf("QueryBySubstring(%q) returned %d records, want 1", term, len(got))
		}
	}
}

func TestContentRepo_QueryBySubstring_StableOrder(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	for _, slug := range []string{"zebra-medicare", "alpha-medicare", "mid-medicare"} {
		rec := testRecord(slug)
		if err := repo.Upsert(ctx, rec); err != nil {
			t.Fatalf("Upsert(%s) error = %v", slug, err)
		}
	}

	first, err := repo.QueryBySubstring(ctx, "medicare")
	if err != nil {
		t.Fatalf("QueryBySubstring() error = %v", err)
	}
	second, err := repo.QueryBySubstring(ctx, "medicare")
	if err != nil {
		t.Fatalf("QueryBySubstring() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Slug != second[i].Slug {
			t.Errorf("order differs at %d: %q vs %q", i, first[i].Slug, second[i].Slug)
		}
	}
}

func TestContentRepo_ListPublished(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	pub := testRecord("published-guide")
	draft := testRecord("draft-guide")
	draft.Status = content.StatusDraft

	if err := repo.Upsert(ctx, pub); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := repo.Upsert(ctx, draft); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(got) != 1 || got[0].Slug != "published-guide" {
		t.Errorf("ListPublished() = %v, want only published-guide", got)
	}
}

func TestContentRepo_ConfigRoundTrip(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	rec := testRecord("retirement-calculator")
	rec.ContentType = content.TypeCalculator
	rec.CalculatorConfig = &content.CalculatorConfig{
		Inputs: []content.CalculatorInput{
			{Name: "savings", Label: "Current savings", Min: 0, Max: 10000000},
		},
		Formulas: map[string]string{
			"future_value": "savings * (1 + rate) ^ years",
		},
	}

	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.GetBySlug(ctx, "retirement-calculator")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.CalculatorConfig == nil {
		t.Fatal("CalculatorConfig not persisted")
	}
	if len(got.CalculatorConfig.Inputs) != 1 || got.CalculatorConfig.Inputs[0].Name != "savings" {
		t.Errorf("CalculatorConfig inputs = %+v", got.CalculatorConfig.Inputs)
	}
	if got.CalculatorConfig.Formulas["future_value"] == "" {
		t.Error("CalculatorConfig formula not persisted")
	}
	if got.ToolConfig != nil || got.ChecklistConfig != nil {
		t.Error("unset configs should stay nil")
	}
}
