// Package schema maps canonical content records to schema.org JSON-LD
// descriptors for search-engine consumption. Every builder is a pure
// transform; there is no ranking or scoring logic here.
package schema

import (
	"time"

	"planwell/internal/content"
	"planwell/internal/seo"
)

const (
	schemaContext = "https://schema.org"

	// SiteName and SiteURL identify the publishing organization in every
	// emitted descriptor set.
	SiteName = "PlanWell"
	SiteURL  = "https://planwell.example.com"
)

// Descriptor is one schema.org-shaped object, serialized as JSON-LD.
type Descriptor map[string]any

// ArticleMeta carries the article-only fields not present on a record.
type ArticleMeta struct {
	Author      string
	PublishedAt time.Time
	ModifiedAt  time.Time
}

// Breadcrumb is a single trail entry for a breadcrumb descriptor.
type Breadcrumb struct {
	Name string
	URL  string
}

// Emit produces the full descriptor set for a record: the organization and
// website descriptors, the page descriptor matching the record's content
// type, and, when trail entries are supplied, a breadcrumb descriptor.
func Emit(rec *content.Record, article *ArticleMeta, trail []Breadcrumb) []Descriptor {
	descriptors := []Descriptor{Organization(), WebSite()}

	switch rec.ContentType {
	case content.TypeChecklist:
		descriptors = append(descriptors, HowTo(rec))
	case content.TypeCalculator, content.TypeTool:
		descriptors = append(descriptors, WebApplication(rec))
	default:
		descriptors = append(descriptors, Article(rec, article))
	}

	if len(trail) > 0 {
		descriptors = append(descriptors, BreadcrumbList(trail))
	}

	return descriptors
}

// Organization describes the publishing brand.
func Organization() Descriptor {
	return Descriptor{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     SiteName,
		"url":      SiteURL,
	}
}

// WebSite describes the site and its search action.
func WebSite() Descriptor {
	return Descriptor{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     SiteName,
		"url":      SiteURL,
		"potentialAction": Descriptor{
			"@type":       "SearchAction",
			"target":      SiteURL + "/search?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
}

// Article describes a guide or comparison page.
func Article(rec *content.Record, meta *ArticleMeta) Descriptor {
	d := Descriptor{
		"@context":    schemaContext,
		"@type":       "Article",
		"headline":    rec.Title,
		"description": rec.MetaDescription,
		"url":         pageURL(rec),
		"keywords":    rec.SemanticKeywords,
	}
	if meta != nil {
		if meta.Author != "" {
			d["author"] = Descriptor{"@type": "Person", "name": meta.Author}
		}
		if !meta.PublishedAt.IsZero() {
			d["datePublished"] = meta.PublishedAt.Format(time.RFC3339)
		}
		if !meta.ModifiedAt.IsZero() {
			d["dateModified"] = meta.ModifiedAt.Format(time.RFC3339)
		}
	}
	return d
}

// HowTo describes a checklist as an ordered sequence of steps.
func HowTo(rec *content.Record) Descriptor {
	steps := []Descriptor{}
	if rec.ChecklistConfig != nil {
		for _, item := range rec.ChecklistConfig.Items {
			steps = append(steps, Descriptor{
				"@type": "HowToStep",
				"text":  item.Text,
			})
		}
	}
	return Descriptor{
		"@context":    schemaContext,
		"@type":       "HowTo",
		"name":        rec.Title,
		"description": rec.MetaDescription,
		"url":         pageURL(rec),
		"step":        steps,
	}
}

// WebApplication describes an interactive calculator or tool.
func WebApplication(rec *content.Record) Descriptor {
	return Descriptor{
		"@context":            schemaContext,
		"@type":               "WebApplication",
		"name":                rec.Title,
		"description":         rec.MetaDescription,
		"url":                 pageURL(rec),
		"applicationCategory": "FinanceApplication",
		"operatingSystem":     "Web",
	}
}

// FAQPage describes a set of question/answer pairs.
func FAQPage(faqs []seo.FAQ) Descriptor {
	entities := make([]Descriptor, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, Descriptor{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": Descriptor{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return Descriptor{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// BreadcrumbList describes a navigation trail.
func BreadcrumbList(trail []Breadcrumb) Descriptor {
	items := make([]Descriptor, 0, len(trail))
	for i, crumb := range trail {
		items = append(items, Descriptor{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     crumb.URL,
		})
	}
	return Descriptor{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

func pageURL(rec *content.Record) string {
	return SiteURL + "/" + rec.Slug
}
