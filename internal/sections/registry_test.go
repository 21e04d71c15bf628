package sections_test

import (
	"errors"
	"testing"

	"github.com/buro710/studio-cms/internal/sections"
)

func TestDefaultContentTotalOverClosedSet(t *testing.T) {
	for _, kind := range sections.Types() {
		content, err := sections.DefaultContent(kind)
		if err != nil {
			t.Fatalf("default content for %s: %v", kind, err)
		}
		if content == nil {
			t.Fatalf("expected non-nil content for %s", kind)
		}
		if content.SectionType() != kind {
			t.Fatalf("content for %s reports type %s", kind, content.SectionType())
		}

		title, err := sections.DefaultTitle(kind)
		if err != nil {
			t.Fatalf("default title for %s: %v", kind, err)
		}
		if title == "" {
			t.Fatalf("expected non-empty title for %s", kind)
		}
	}
}

func TestDefaultContentUnknownType(t *testing.T) {
	if _, err := sections.DefaultContent("video"); !errors.Is(err, sections.ErrUnknownSectionType) {
		t.Fatalf("expected ErrUnknownSectionType, got %v", err)
	}
	if _, err := sections.DefaultTitle("video"); !errors.Is(err, sections.ErrUnknownSectionType) {
		t.Fatalf("expected ErrUnknownSectionType, got %v", err)
	}
}

func TestDefaultTitles(t *testing.T) {
	cases := map[sections.Type]string{
		sections.TypeHero:           "Hero Section",
		sections.TypeMetadata:       "Project Metadata",
		sections.TypeFullWidthImage: "Full Width Image",
		sections.TypeCTA:            "Call to Action",
	}
	for kind, want := range cases {
		got, err := sections.DefaultTitle(kind)
		if err != nil {
			t.Fatalf("default title for %s: %v", kind, err)
		}
		if got != want {
			t.Fatalf("expected title %q for %s, got %q", want, kind, got)
		}
	}
}

func TestDefaultContentProductDefaults(t *testing.T) {
	metadata, err := sections.DefaultContent(sections.TypeMetadata)
	if err != nil {
		t.Fatalf("metadata defaults: %v", err)
	}
	if metadata.(sections.MetadataContent).Architects != "Bureau 710" {
		t.Fatalf("expected studio default architects, got %+v", metadata)
	}

	concept, err := sections.DefaultContent(sections.TypeConcept)
	if err != nil {
		t.Fatalf("concept defaults: %v", err)
	}
	conceptContent := concept.(sections.ConceptContent)
	if conceptContent.Heading != "Культурний Код" || conceptContent.Caption != "Concept & Context" {
		t.Fatalf("unexpected concept defaults: %+v", conceptContent)
	}

	cta, err := sections.DefaultContent(sections.TypeCTA)
	if err != nil {
		t.Fatalf("cta defaults: %v", err)
	}
	ctaContent := cta.(sections.CTAContent)
	if ctaContent.ButtonText != "Learn More" || ctaContent.ButtonURL != "" {
		t.Fatalf("unexpected cta defaults: %+v", ctaContent)
	}
}

func TestTypesAreOrderedAndClosed(t *testing.T) {
	want := []sections.Type{
		sections.TypeHero,
		sections.TypeMetadata,
		sections.TypeAbout,
		sections.TypeFullWidthImage,
		sections.TypeConcept,
		sections.TypeDesignZones,
		sections.TypeTextBlock,
		sections.TypeImageBlock,
		sections.TypeGallery,
		sections.TypeCTA,
		sections.TypeTags,
	}
	got := sections.Types()
	if len(got) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(got))
	}
	for i, kind := range want {
		if got[i] != kind {
			t.Fatalf("expected type %s at position %d, got %s", kind, i, got[i])
		}
	}
	if sections.IsKnownType("video") {
		t.Fatal("video must not be a known type")
	}
}
