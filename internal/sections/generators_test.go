package sections_test

import (
	"reflect"
	"testing"

	"github.com/buro710/studio-cms/internal/sections"
)

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want string
	}{
		{"residential modern", []string{"residential", "modern"}, "Residential / Modern"},
		{"residential default secondary", []string{"residential"}, "Residential / Contemporary"},
		{"nordic maps to scandinavian", []string{"residential", "nordic"}, "Residential / Scandinavian"},
		{"secondary table order wins", []string{"residential", "luxury", "modern"}, "Residential / Modern"},
		{"restaurant biophilic", []string{"restaurant", "green"}, "Hospitality / Biophilic"},
		{"primary rule order wins", []string{"cafe", "restaurant"}, "Hospitality / Contemporary"},
		{"cafe coffee", []string{"cafe", "coffee"}, "Hospitality / Coffee"},
		{"bistro urban", []string{"bistro", "urban"}, "Hospitality / Urban"},
		{"shop boutique", []string{"shop", "boutique"}, "Commercial / Boutique"},
		{"case and whitespace normalized", []string{" Residential ", "MODERN"}, "Residential / Modern"},
		{"no primary tag", []string{"garden", "plants"}, "Project"},
		{"empty tags", nil, "Project"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sections.InferCategory(tc.tags).Full; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInferMaterialsOrderedUnion(t *testing.T) {
	materials := sections.InferMaterials([]string{"stone", "wood"})
	names := materialNames(materials)
	if !reflect.DeepEqual(names, []string{"Stone", "Oak", "Pine"}) {
		t.Fatalf("unexpected material order: %v", names)
	}
}

func TestInferMaterialsLaterMatchKeepsPosition(t *testing.T) {
	// "wood" contributes Pine bg-amber-600 first; "store" re-contributes Pine
	// with bg-amber-500. The value updates but the position does not.
	materials := sections.InferMaterials([]string{"wood", "store"})
	names := materialNames(materials)
	if !reflect.DeepEqual(names, []string{"Oak", "Pine", "Natural Stone"}) {
		t.Fatalf("unexpected material order: %v", names)
	}
	if materials[1].Color != "bg-amber-500" {
		t.Fatalf("expected later match to replace value, got %q", materials[1].Color)
	}
}

func TestInferMaterialsDefaultPalette(t *testing.T) {
	materials := sections.InferMaterials([]string{"minimalist"})
	names := materialNames(materials)
	if !reflect.DeepEqual(names, []string{"Wood", "Stone", "Concrete", "Steel"}) {
		t.Fatalf("expected default palette, got %v", names)
	}
}

func TestGenerateDesignZonesFamilies(t *testing.T) {
	cases := []struct {
		name       string
		tags       []string
		firstTitle string
	}{
		{"residential", []string{"residential"}, "Living Space"},
		{"restaurant", []string{"restaurant", "dark"}, "Main Hall / Dining"},
		{"cafe", []string{"coffee", "industrial"}, "Coffee Bar"},
		{"retail", []string{"boutique"}, "Main Showroom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			zones := sections.GenerateDesignZones(tc.tags)
			if len(zones) != 3 {
				t.Fatalf("expected 3 zones, got %d", len(zones))
			}
			if zones[0].Title != tc.firstTitle {
				t.Fatalf("expected first zone %q, got %q", tc.firstTitle, zones[0].Title)
			}
			for i, zone := range zones {
				if zone.Order != i+1 {
					t.Fatalf("expected order %d for zone %s, got %d", i+1, zone.Name, zone.Order)
				}
			}
		})
	}
}

func TestGenerateDesignZonesStyleVariants(t *testing.T) {
	scandinavian := sections.GenerateDesignZones([]string{"residential", "scandinavian"})
	if !reflect.DeepEqual(scandinavian[0].Features, []string{"Natural Light", "White Walls", "Panoramic Views"}) {
		t.Fatalf("unexpected scandinavian features: %v", scandinavian[0].Features)
	}

	contemporary := sections.GenerateDesignZones([]string{"residential"})
	if !reflect.DeepEqual(contemporary[0].Features, []string{"Natural Light", "Open Plan", "Comfort"}) {
		t.Fatalf("unexpected default features: %v", contemporary[0].Features)
	}

	urban := sections.GenerateDesignZones([]string{"restaurant", "urban"})
	if !reflect.DeepEqual(urban[0].Features, []string{"Exposed Brick", "Concrete Floors", "High Ceilings"}) {
		t.Fatalf("unexpected urban features: %v", urban[0].Features)
	}
}

func TestGenerateDesignZonesNoFamily(t *testing.T) {
	if zones := sections.GenerateDesignZones([]string{"office", "loft"}); len(zones) != 0 {
		t.Fatalf("expected no zones for unmatched tags, got %d", len(zones))
	}
	if zones := sections.GenerateDesignZones(nil); len(zones) != 0 {
		t.Fatalf("expected no zones for empty tags, got %d", len(zones))
	}
}

func TestGenerateDesignZonesDeterministic(t *testing.T) {
	tags := []string{"cafe", "cozy"}
	if !reflect.DeepEqual(sections.GenerateDesignZones(tags), sections.GenerateDesignZones(tags)) {
		t.Fatal("zone generation must be deterministic for identical tags")
	}
}

func materialNames(materials []sections.Material) []string {
	names := make([]string, len(materials))
	for i, material := range materials {
		names[i] = material.Name
	}
	return names
}
