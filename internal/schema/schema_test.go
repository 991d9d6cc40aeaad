package schema

import (
	"encoding/json"
	"testing"
	"time"

	"planwell/internal/content"
	"planwell/internal/seo"
)

func guide() *content.Record {
	return &content.Record{
		ID:              "medicare-enrollment-guide",
		Slug:            "medicare-enrollment-guide",
		Title:           "Medicare Enrollment Guide | PlanWell",
		MetaDescription: "Medicare enrollment windows explained.",
		ContentType:     content.TypeGuide,
		Category:        "medicare",
		Status:          content.StatusPublished,
	}
}

func TestEmit_AlwaysIncludesSiteDescriptors(t *testing.T) {
	descriptors := Emit(guide(), nil, nil)

	if len(descriptors) != 3 {
		t.Fatalf("got %d descriptors, want 3 (org, website, article)", len(descriptors))
	}
	if descriptors[0]["@type"] != "Organization" {
		t.Errorf("first descriptor = %v, want Organization", descriptors[0]["@type"])
	}
	if descriptors[1]["@type"] != "WebSite" {
		t.Errorf("second descriptor = %v, want WebSite", descriptors[1]["@type"])
	}
	if descriptors[2]["@type"] != "Article" {
		t.Errorf("third descriptor = %v, want Article", descriptors[2]["@type"])
	}
}

func TestEmit_BreadcrumbOnlyWhenSupplied(t *testing.T) {
	trail := []Breadcrumb{
		{Name: "Home", URL: SiteURL},
		{Name: "Medicare", URL: SiteURL + "/medicare"},
	}

	with := Emit(guide(), nil, trail)
	without := Emit(guide(), nil, nil)

	if len(with) != len(without)+1 {
		t.Fatalf("breadcrumb descriptor not appended: %d vs %d", len(with), len(without))
	}
	last := with[len(with)-1]
	if last["@type"] != "BreadcrumbList" {
		t.Errorf("last descriptor = %v, want BreadcrumbList", last["@type"])
	}
}

func TestEmit_KindSelection(t *testing.T) {
	tests := []struct {
		contentType content.ContentType
		wantType    string
	}{
		{content.TypeGuide, "Article"},
		{content.TypeComparison, "Article"},
		{content.TypeChecklist, "HowTo"},
		{content.TypeCalculator, "WebApplication"},
		{content.TypeTool, "WebApplication"},
	}

	for _, tt := range tests {
		t.Run(string(tt.contentType), func(t *testing.T) {
			rec := guide()
			rec.ContentType = tt.contentType
			descriptors := Emit(rec, nil, nil)
			got := descriptors[len(descriptors)-1]["@type"]
			if got != tt.wantType {
				t.Errorf("page descriptor @type = %v, want %v", got, tt.wantType)
			}
		})
	}
}

func TestArticle_Meta(t *testing.T) {
	published := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	modified := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	d := Article(guide(), &ArticleMeta{
		Author:      "PlanWell Editorial",
		PublishedAt: published,
		ModifiedAt:  modified,
	})

	author, ok := d["author"].(Descriptor)
	if !ok || author["name"] != "PlanWell Editorial" {
		t.Errorf("author = %v", d["author"])
	}
	if d["datePublished"] != "2026-01-15T00:00:00Z" {
		t.Errorf("datePublished = %v", d["datePublished"])
	}
	if d["dateModified"] != "2026-02-01T00:00:00Z" {
		t.Errorf("dateModified = %v", d["dateModified"])
	}
}

func TestHowTo_Steps(t *testing.T) {
	rec := guide()
	rec.ContentType = content.TypeChecklist
	rec.ChecklistConfig = &content.ChecklistConfig{
		Items: []content.ChecklistItem{
			{Text: "Review your coverage"},
			{Text: "Compare plan costs"},
		},
	}

	d := HowTo(rec)
	steps, ok := d["step"].([]Descriptor)
	if !ok || len(steps) != 2 {
		t.Fatalf("step = %v, want 2 steps", d["step"])
	}
	if steps[0]["text"] != "Review your coverage" {
		t.Errorf("first step = %v", steps[0])
	}
}

func TestFAQPage(t *testing.T) {
	faqs := seo.GenerateFAQ("medicare")
	d := FAQPage(faqs)

	if d["@type"] != "FAQPage" {
		t.Errorf("@type = %v", d["@type"])
	}
	entities, ok := d["mainEntity"].([]Descriptor)
	if !ok || len(entities) != len(faqs) {
		t.Fatalf("mainEntity = %v", d["mainEntity"])
	}
}

func TestDescriptors_SerializeToJSONLD(t *testing.T) {
	descriptors := Emit(guide(), nil, []Breadcrumb{{Name: "Home", URL: SiteURL}})
	for _, d := range descriptors {
		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var back map[string]any
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if back["@context"] != "https://schema.org" {
			t.Errorf("@context = %v", back["@context"])
		}
	}
}
