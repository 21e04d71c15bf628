package sections_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/buro710/studio-cms/internal/sections"
)

func fullLegacySource() sections.LegacySource {
	return sections.LegacySource{
		Title:            "Квартира на Подолі",
		ShortDescription: "Затишна квартира для молодої родини",
		Description:      []string{"Перший абзац.", "Другий абзац.", "Третій абзац."},
		ImageURL:         "/images/podil/hero.jpg",
		Tags:             []string{"residential", "modern"},
		Architects:       "Bureau 710",
		Area:             "86 м²",
		Location:         "Київ, Поділ",
		Year:             "2024",
	}
}

func TestSynthesizeLegacyFullSource(t *testing.T) {
	list := sections.SynthesizeLegacy(fullLegacySource())
	if len(list) != 6 {
		t.Fatalf("expected 6 synthesized sections, got %d", len(list))
	}

	wantIDs := []string{
		"section_hero",
		"section_metadata",
		"section_about",
		"section_full_width_image",
		"section_concept",
		"section_design_zones",
	}
	for i, want := range wantIDs {
		if list[i].ID != want {
			t.Fatalf("expected id %s at slot %d, got %s", want, i, list[i].ID)
		}
		if list[i].Order != i {
			t.Fatalf("expected order %d for %s, got %d", i, list[i].ID, list[i].Order)
		}
		if !list[i].IsEnabled() {
			t.Fatalf("synthesized section %s must be enabled", list[i].ID)
		}
	}

	hero := list[0].Content.(sections.HeroContent)
	if hero.Subtitle != "Residential / Modern" {
		t.Fatalf("expected inferred category subtitle, got %q", hero.Subtitle)
	}
	if hero.ShortDescription != "Затишна квартира для молодої родини" {
		t.Fatalf("unexpected short description: %q", hero.ShortDescription)
	}
	if !hero.ParallaxEnabled || hero.Layout != sections.HeroLayoutCentered {
		t.Fatalf("unexpected hero presentation defaults: %+v", hero)
	}

	concept := list[4].Content.(sections.ConceptContent)
	if len(concept.Description) != 2 {
		t.Fatalf("concept description must be capped at 2 paragraphs, got %d", len(concept.Description))
	}
	if len(concept.Images) != 1 || concept.Images[0].URL != "/images/podil/hero.jpg" {
		t.Fatalf("expected concept image fallback to legacy image, got %+v", concept.Images)
	}

	zones := list[5].Content.(sections.DesignZonesContent).Zones
	if len(zones) != 3 {
		t.Fatalf("expected 3 generated zones, got %d", len(zones))
	}
	if !reflect.DeepEqual(concept.Features, zones[0].Features) {
		t.Fatalf("concept features must mirror first zone features")
	}
}

func TestSynthesizeLegacyDeterministic(t *testing.T) {
	src := fullLegacySource()
	first := sections.SynthesizeLegacy(src)
	second := sections.SynthesizeLegacy(src)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("synthesis must be deterministic for identical input")
	}
}

func TestSynthesizeLegacySuppressesEmptySlots(t *testing.T) {
	list := sections.SynthesizeLegacy(sections.LegacySource{Title: "Безіменний"})
	if len(list) != 1 {
		t.Fatalf("expected only the hero slot, got %d sections", len(list))
	}
	if list[0].Type != sections.TypeHero {
		t.Fatalf("expected hero slot, got %s", list[0].Type)
	}

	hero := list[0].Content.(sections.HeroContent)
	if hero.Subtitle != "Project" {
		t.Fatalf("expected fallback category label, got %q", hero.Subtitle)
	}
	if hero.ShortDescription != "" {
		t.Fatalf("expected empty short description, got %q", hero.ShortDescription)
	}
}

func TestSynthesizeLegacyScandinavianResidential(t *testing.T) {
	list := sections.SynthesizeLegacy(sections.LegacySource{
		Title:       "Golden Ray",
		Tags:        []string{"residential", "scandinavian"},
		Description: []string{"p1", "p2", "p3"},
		ImageURL:    "img.jpg",
	})

	wantTypes := []sections.Type{
		sections.TypeHero,
		sections.TypeAbout,
		sections.TypeFullWidthImage,
		sections.TypeConcept,
		sections.TypeDesignZones,
	}
	if len(list) != len(wantTypes) {
		t.Fatalf("expected %d sections, got %d", len(wantTypes), len(list))
	}
	for i, want := range wantTypes {
		if list[i].Type != want {
			t.Fatalf("slot %d: expected %s, got %s", i, want, list[i].Type)
		}
		if list[i].Type == sections.TypeMetadata {
			t.Fatal("metadata slot must be suppressed without any spec fields")
		}
	}

	hero := list[0].Content.(sections.HeroContent)
	if hero.Subtitle != "Residential / Scandinavian" {
		t.Fatalf("expected inferred subtitle, got %q", hero.Subtitle)
	}

	about := list[1].Content.(sections.AboutContent)
	if !reflect.DeepEqual(about.Description, []string{"p1", "p2", "p3"}) {
		t.Fatalf("about must carry the full description, got %v", about.Description)
	}

	if img := list[2].Content.(sections.FullWidthImageContent); img.ImageURL != "img.jpg" {
		t.Fatalf("unexpected full width image: %q", img.ImageURL)
	}

	concept := list[3].Content.(sections.ConceptContent)
	if !reflect.DeepEqual(concept.Description, []string{"p1", "p2"}) {
		t.Fatalf("concept description must cap at two paragraphs, got %v", concept.Description)
	}

	zones := list[4].Content.(sections.DesignZonesContent).Zones
	if len(zones) != 3 {
		t.Fatalf("expected 3 generated zones, got %d", len(zones))
	}
	if zones[0].Name != "living" || zones[1].Name != "kitchen" || zones[2].Name != "bedroom" {
		t.Fatalf("unexpected zone roles: %s/%s/%s", zones[0].Name, zones[1].Name, zones[2].Name)
	}
	if !strings.Contains(zones[0].Description, "Світла вітальня") {
		t.Fatalf("expected scandinavian living description, got %q", zones[0].Description)
	}
}

func TestSynthesizeLegacyExplicitCategoryWins(t *testing.T) {
	src := fullLegacySource()
	src.Category = "Residential / Scandinavian"

	list := sections.SynthesizeLegacy(src)
	hero := list[0].Content.(sections.HeroContent)
	if hero.Subtitle != "Residential / Scandinavian" {
		t.Fatalf("explicit category must win over inference, got %q", hero.Subtitle)
	}
}

func TestSynthesizeLegacyDeclaredZonesWin(t *testing.T) {
	declared := []sections.DesignZone{{
		ID:          "zone_living",
		Name:        "living",
		Title:       "Вітальня",
		Description: "Авторська зона.",
		Features:    []string{"камін"},
		Layout:      sections.ZoneLayoutSplit,
	}}
	src := fullLegacySource()
	src.DesignZones = declared

	list := sections.SynthesizeLegacy(src)
	zones := list[5].Content.(sections.DesignZonesContent).Zones
	if !reflect.DeepEqual(zones, declared) {
		t.Fatalf("declared zones must pass through untouched, got %+v", zones)
	}

	concept := list[4].Content.(sections.ConceptContent)
	if !reflect.DeepEqual(concept.Features, []string{"камін"}) {
		t.Fatalf("concept features must come from the first declared zone, got %v", concept.Features)
	}
}

func TestSynthesizeLegacyShortDescriptionFallsBackToFirstParagraph(t *testing.T) {
	src := fullLegacySource()
	src.ShortDescription = ""

	list := sections.SynthesizeLegacy(src)
	hero := list[0].Content.(sections.HeroContent)
	if hero.ShortDescription != "Перший абзац." {
		t.Fatalf("expected first paragraph fallback, got %q", hero.ShortDescription)
	}
}

func TestSynthesizeLegacyConceptWithoutImage(t *testing.T) {
	src := sections.LegacySource{
		Title:       "Проєкт без фото",
		Description: []string{"Один абзац."},
	}

	list := sections.SynthesizeLegacy(src)
	var concept *sections.ConceptContent
	for _, section := range list {
		if section.Type == sections.TypeConcept {
			c := section.Content.(sections.ConceptContent)
			concept = &c
		}
		if section.Type == sections.TypeFullWidthImage {
			t.Fatal("full width image slot must be suppressed without an image")
		}
	}
	if concept == nil {
		t.Fatal("expected concept slot for source with description")
	}
	if len(concept.Images) != 0 {
		t.Fatalf("expected no concept images, got %+v", concept.Images)
	}
	if concept.Heading != "Культурний Код" || concept.Caption != "Concept & Context" {
		t.Fatalf("unexpected concept defaults: %+v", concept)
	}
}
