package sections_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/buro710/studio-cms/internal/sections"
)

func TestValidateRawContentAcceptsValidPayload(t *testing.T) {
	raw := []byte(`{
		"zones": [
			{
				"id": "zone-1",
				"name": "living",
				"order": 1,
				"title": "Living Space",
				"description": "Центральна зона квартири.",
				"layout": "split",
				"features": ["Natural Light", "Open Plan"]
			}
		]
	}`)

	content, err := sections.ValidateRawContent(sections.TypeDesignZones, raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	zones := content.(sections.DesignZonesContent).Zones
	if len(zones) != 1 || zones[0].Title != "Living Space" {
		t.Fatalf("unexpected decoded content: %+v", zones)
	}
}

func TestValidateRawContentRejectsSchemaViolation(t *testing.T) {
	// Zone items require id, title and description.
	raw := []byte(`{"zones": [{"name": "living"}]}`)

	_, err := sections.ValidateRawContent(sections.TypeDesignZones, raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var validationErr *sections.ContentValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ContentValidationError, got %T", err)
	}
	if !errors.Is(err, sections.ErrContentShapeInvalid) {
		t.Fatalf("expected ErrContentShapeInvalid sentinel, got %v", err)
	}
	if len(validationErr.Issues) == 0 {
		t.Fatal("expected at least one reported issue")
	}
}

func TestValidateRawContentRejectsWrongFieldType(t *testing.T) {
	raw := []byte(`{"images": "not-an-array"}`)

	_, err := sections.ValidateRawContent(sections.TypeGallery, raw)
	var validationErr *sections.ContentValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ContentValidationError, got %v", err)
	}
	if validationErr.Type != sections.TypeGallery {
		t.Fatalf("error must carry the section type, got %s", validationErr.Type)
	}
}

func TestValidateRawContentRejectsBadLayoutEnum(t *testing.T) {
	raw := []byte(`{"images": [], "layout": "mosaic"}`)

	if _, err := sections.ValidateRawContent(sections.TypeGallery, raw); !errors.Is(err, sections.ErrContentShapeInvalid) {
		t.Fatalf("expected ErrContentShapeInvalid, got %v", err)
	}
}

func TestValidateRawContentRejectsMalformedJSON(t *testing.T) {
	_, err := sections.ValidateRawContent(sections.TypeGallery, []byte(`{"images": [`))
	if !errors.Is(err, sections.ErrContentShapeInvalid) {
		t.Fatalf("expected ErrContentShapeInvalid for malformed JSON, got %v", err)
	}
}

func TestValidateRawContentUnknownType(t *testing.T) {
	_, err := sections.ValidateRawContent("video", []byte(`{}`))
	if !errors.Is(err, sections.ErrUnknownSectionType) {
		t.Fatalf("expected ErrUnknownSectionType, got %v", err)
	}
}

func TestValidateRawContentEveryTypeAcceptsDefaults(t *testing.T) {
	for _, kind := range sections.Types() {
		content, err := sections.DefaultContent(kind)
		if err != nil {
			t.Fatalf("defaults for %s: %v", kind, err)
		}
		fields, err := sections.ContentMap(content)
		if err != nil {
			t.Fatalf("content map for %s: %v", kind, err)
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			t.Fatalf("marshal defaults for %s: %v", kind, err)
		}
		if _, err := sections.ValidateRawContent(kind, raw); err != nil {
			t.Fatalf("defaults for %s must satisfy their own schema: %v", kind, err)
		}
	}
}
