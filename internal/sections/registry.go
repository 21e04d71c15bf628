package sections

import "encoding/json"

// registryEntry binds a section type to its admin label, default payload,
// decoder, and content schema.
type registryEntry struct {
	kind     Type
	title    string
	defaults func() Content
	decode   func([]byte) (Content, error)
	schema   map[string]any
}

func decodeInto[T Content](raw []byte) (Content, error) {
	var payload T
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// The registry is an explicitly ordered sequence, never a bare map: iteration
// order is part of the contract for deterministic first-match behaviour.
var registry = []registryEntry{
	{
		kind:  TypeHero,
		title: "Hero Section",
		defaults: func() Content {
			return HeroContent{
				OverlayColor:    "from-black/30 via-transparent to-black/60",
				ParallaxEnabled: true,
				Layout:          HeroLayoutCentered,
				AnimationType:   HeroAnimationZoom,
			}
		},
		decode: decodeInto[HeroContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"image_url", "title"},
			"properties": map[string]any{
				"image_url":         map[string]any{"type": "string"},
				"overlay_color":     map[string]any{"type": "string"},
				"parallax_enabled":  map[string]any{"type": "boolean"},
				"title":             map[string]any{"type": "string"},
				"subtitle":          map[string]any{"type": "string"},
				"short_description": map[string]any{"type": "string"},
				"layout":            map[string]any{"enum": []any{HeroLayoutCentered, HeroLayoutLeft, HeroLayoutRight, HeroLayoutSplit}},
				"animation_type":    map[string]any{"enum": []any{HeroAnimationZoom, HeroAnimationFade, HeroAnimationSlide, HeroAnimationNone}},
				"cta_button": map[string]any{
					"type":     "object",
					"required": []any{"text", "url"},
					"properties": map[string]any{
						"text":  map[string]any{"type": "string"},
						"url":   map[string]any{"type": "string"},
						"style": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
	{
		kind:  TypeMetadata,
		title: "Project Metadata",
		defaults: func() Content {
			return MetadataContent{Architects: "Bureau 710"}
		},
		decode: decodeInto[MetadataContent],
		schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"architects":    map[string]any{"type": "string"},
				"area":          map[string]any{"type": "string"},
				"location":      map[string]any{"type": "string"},
				"year":          map[string]any{"type": "string"},
				"photo_credits": map[string]any{"type": "string"},
			},
		},
	},
	{
		kind:  TypeAbout,
		title: "About Section",
		defaults: func() Content {
			return AboutContent{
				Icon:        "solar:sun-fog-linear",
				Description: []string{""},
			}
		},
		decode: decodeInto[AboutContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"title", "description"},
			"properties": map[string]any{
				"icon":        map[string]any{"type": "string"},
				"subtitle":    map[string]any{"type": "string"},
				"title":       map[string]any{"type": "string"},
				"description": stringArraySchema,
			},
		},
	},
	{
		kind:  TypeFullWidthImage,
		title: "Full Width Image",
		defaults: func() Content {
			return FullWidthImageContent{Height: "80vh"}
		},
		decode: decodeInto[FullWidthImageContent],
		schema: imageBlockSchema,
	},
	{
		kind:  TypeConcept,
		title: "Concept Section",
		defaults: func() Content {
			return ConceptContent{
				Heading:     "Культурний Код",
				Caption:     "Concept & Context",
				Description: []string{""},
				Images:      []Image{},
				Features:    []string{},
			}
		},
		decode: decodeInto[ConceptContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"heading", "caption"},
			"properties": map[string]any{
				"heading":     map[string]any{"type": "string"},
				"caption":     map[string]any{"type": "string"},
				"description": stringArraySchema,
				"quote":       map[string]any{"type": "string"},
				"images":      map[string]any{"type": "array", "items": imageSchema},
				"features":    stringArraySchema,
			},
		},
	},
	{
		kind:  TypeDesignZones,
		title: "Design Zones",
		defaults: func() Content {
			return DesignZonesContent{Zones: []DesignZone{}}
		},
		decode: decodeInto[DesignZonesContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"zones"},
			"properties": map[string]any{
				"zones": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"id", "title", "description"},
						"properties": map[string]any{
							"id":          map[string]any{"type": "string"},
							"name":        map[string]any{"type": "string"},
							"order":       map[string]any{"type": "integer"},
							"title":       map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
							"image_url":   map[string]any{"type": "string"},
							"layout":      map[string]any{"enum": []any{ZoneLayoutFullWidth, ZoneLayoutSplit, ZoneLayoutSplitReverse, ZoneLayoutCentered}},
							"features":    stringArraySchema,
							"alt":         map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
	{
		kind:  TypeTextBlock,
		title: "Text Block",
		defaults: func() Content {
			return TextBlockContent{Content: []string{""}}
		},
		decode: decodeInto[TextBlockContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"content"},
			"properties": map[string]any{
				"title":   map[string]any{"type": "string"},
				"content": stringArraySchema,
			},
		},
	},
	{
		kind:  TypeImageBlock,
		title: "Image Block",
		defaults: func() Content {
			return ImageBlockContent{Height: "80vh"}
		},
		decode: decodeInto[ImageBlockContent],
		schema: imageBlockSchema,
	},
	{
		kind:  TypeGallery,
		title: "Gallery",
		defaults: func() Content {
			return GalleryContent{Images: []Image{}, Layout: GalleryLayoutGrid}
		},
		decode: decodeInto[GalleryContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"images"},
			"properties": map[string]any{
				"images":   map[string]any{"type": "array", "items": imageSchema},
				"layout":   map[string]any{"enum": []any{GalleryLayoutGrid, GalleryLayoutSlider}},
				"autoplay": map[string]any{"type": "boolean"},
			},
		},
	},
	{
		kind:  TypeCTA,
		title: "Call to Action",
		defaults: func() Content {
			return CTAContent{ButtonText: "Learn More"}
		},
		decode: decodeInto[CTAContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"title", "button_text", "button_url"},
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"button_text": map[string]any{"type": "string"},
				"button_url":  map[string]any{"type": "string"},
			},
		},
	},
	{
		kind:  TypeTags,
		title: "Tags",
		defaults: func() Content {
			return TagsContent{Title: "Tags", Tags: []string{}}
		},
		decode: decodeInto[TagsContent],
		schema: map[string]any{
			"type":     "object",
			"required": []any{"tags"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"tags":  stringArraySchema,
			},
		},
	},
}

var stringArraySchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var imageSchema = map[string]any{
	"type":     "object",
	"required": []any{"url"},
	"properties": map[string]any{
		"url":     map[string]any{"type": "string"},
		"caption": map[string]any{"type": "string"},
		"alt":     map[string]any{"type": "string"},
	},
}

var imageBlockSchema = map[string]any{
	"type":     "object",
	"required": []any{"image_url"},
	"properties": map[string]any{
		"image_url": map[string]any{"type": "string"},
		"caption":   map[string]any{"type": "string"},
		"alt":       map[string]any{"type": "string"},
		"height":    map[string]any{"type": "string"},
		"grayscale": map[string]any{"type": "boolean"},
	},
}

func lookup(kind Type) (registryEntry, bool) {
	for _, entry := range registry {
		if entry.kind == kind {
			return entry, true
		}
	}
	return registryEntry{}, false
}

// Types returns the closed set of section types in registry order.
func Types() []Type {
	out := make([]Type, 0, len(registry))
	for _, entry := range registry {
		out = append(out, entry.kind)
	}
	return out
}

// IsKnownType reports whether kind is part of the closed enumeration.
func IsKnownType(kind Type) bool {
	_, ok := lookup(kind)
	return ok
}

// DefaultContent returns a complete, valid payload for the given type with
// conservative defaults. Unrecognized types are a programmer error surfaced as
// ErrUnknownSectionType.
func DefaultContent(kind Type) (Content, error) {
	entry, ok := lookup(kind)
	if !ok {
		return nil, &UnknownTypeError{Type: kind}
	}
	return entry.defaults(), nil
}

// DefaultTitle returns the fixed admin-facing label for the given type.
func DefaultTitle(kind Type) (string, error) {
	entry, ok := lookup(kind)
	if !ok {
		return "", &UnknownTypeError{Type: kind}
	}
	return entry.title, nil
}

// DecodeContent parses a raw JSON payload into the typed content for kind.
func DecodeContent(kind Type, raw []byte) (Content, error) {
	entry, ok := lookup(kind)
	if !ok {
		return nil, &UnknownTypeError{Type: kind}
	}
	content, err := entry.decode(raw)
	if err != nil {
		return nil, &ContentShapeError{Type: kind, Cause: err}
	}
	return content, nil
}

// ContentSchema returns the JSON schema describing valid content for kind.
func ContentSchema(kind Type) (map[string]any, error) {
	entry, ok := lookup(kind)
	if !ok {
		return nil, &UnknownTypeError{Type: kind}
	}
	return entry.schema, nil
}
