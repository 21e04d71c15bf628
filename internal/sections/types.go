package sections

// Type is the closed set of section kinds a project page can be composed of.
// Adding a kind means touching the registry, the renderer table, and the admin
// editor forms; this is deliberately a closed world, not a plugin system.
type Type string

const (
	TypeHero           Type = "hero"
	TypeMetadata       Type = "metadata"
	TypeAbout          Type = "about"
	TypeFullWidthImage Type = "full-width-image"
	TypeConcept        Type = "concept"
	TypeDesignZones    Type = "design-zones"
	TypeTextBlock      Type = "text-block"
	TypeImageBlock     Type = "image-block"
	TypeGallery        Type = "gallery"
	TypeCTA            Type = "cta"
	TypeTags           Type = "tags"
)

// Hero layout variants.
const (
	HeroLayoutCentered = "centered"
	HeroLayoutLeft     = "left"
	HeroLayoutRight    = "right"
	HeroLayoutSplit    = "split"
)

// Hero animation variants.
const (
	HeroAnimationZoom  = "zoom"
	HeroAnimationFade  = "fade"
	HeroAnimationSlide = "slide"
	HeroAnimationNone  = "none"
)

// Design zone layout variants.
const (
	ZoneLayoutFullWidth    = "full-width"
	ZoneLayoutSplit        = "split"
	ZoneLayoutSplitReverse = "split-reverse"
	ZoneLayoutCentered     = "centered"
)

// Gallery layout variants.
const (
	GalleryLayoutGrid   = "grid"
	GalleryLayoutSlider = "slider"
)

// Content is the payload carried by a section. Exactly one implementation
// exists per Type; the discriminant travels on the owning Section.
//
// Every payload is independently serializable and holds no references to other
// sections.
type Content interface {
	SectionType() Type
	sealed()
}

// Image is a single portfolio image reference.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Alt     string `json:"alt,omitempty"`
}

// DesignZone is one functional area of an interior, owned exclusively by its
// parent project or by the design-zones section content that embeds it.
type DesignZone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Order       int      `json:"order"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url,omitempty"`
	Layout      string   `json:"layout,omitempty"`
	Features    []string `json:"features,omitempty"`
	Alt         string   `json:"alt,omitempty"`
}

// Material is a palette swatch shown on project pages.
type Material struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Kind  string `json:"type,omitempty"`
}

// CTAButton is the optional call-to-action attached to a hero.
type CTAButton struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style,omitempty"`
}

// HeroContent drives the full-screen opening section.
type HeroContent struct {
	ImageURL         string     `json:"image_url"`
	OverlayColor     string     `json:"overlay_color,omitempty"`
	ParallaxEnabled  bool       `json:"parallax_enabled,omitempty"`
	Title            string     `json:"title"`
	Subtitle         string     `json:"subtitle,omitempty"`
	ShortDescription string     `json:"short_description,omitempty"`
	Layout           string     `json:"layout,omitempty"`
	AnimationType    string     `json:"animation_type,omitempty"`
	CTAButton        *CTAButton `json:"cta_button,omitempty"`
}

// MetadataContent holds the architectural spec strip. Absent values render as
// empty strings rather than omitted keys.
type MetadataContent struct {
	Architects   string `json:"architects"`
	Area         string `json:"area"`
	Location     string `json:"location"`
	Year         string `json:"year"`
	PhotoCredits string `json:"photo_credits"`
}

// AboutContent is the introductory text block.
type AboutContent struct {
	Icon        string   `json:"icon,omitempty"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Title       string   `json:"title"`
	Description []string `json:"description"`
}

// FullWidthImageContent is a single edge-to-edge image.
type FullWidthImageContent struct {
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption,omitempty"`
	Alt       string `json:"alt,omitempty"`
	Height    string `json:"height,omitempty"`
	Grayscale bool   `json:"grayscale,omitempty"`
}

// ConceptContent is the two-column concept narrative.
type ConceptContent struct {
	Heading     string   `json:"heading"`
	Caption     string   `json:"caption"`
	Description []string `json:"description"`
	Quote       string   `json:"quote,omitempty"`
	Images      []Image  `json:"images"`
	Features    []string `json:"features,omitempty"`
}

// DesignZonesContent lists the zones of the interior.
type DesignZonesContent struct {
	Zones []DesignZone `json:"zones"`
}

// TextBlockContent is a generic titled paragraph block.
type TextBlockContent struct {
	Title   string   `json:"title,omitempty"`
	Content []string `json:"content"`
}

// ImageBlockContent is a single inline image with presentation options.
type ImageBlockContent struct {
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption,omitempty"`
	Alt       string `json:"alt,omitempty"`
	Height    string `json:"height,omitempty"`
	Grayscale bool   `json:"grayscale,omitempty"`
}

// GalleryContent is an image grid or carousel.
type GalleryContent struct {
	Images   []Image `json:"images"`
	Layout   string  `json:"layout,omitempty"`
	Autoplay bool    `json:"autoplay,omitempty"`
}

// CTAContent is a closing call-to-action.
type CTAContent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ButtonText  string `json:"button_text"`
	ButtonURL   string `json:"button_url"`
}

// TagsContent displays the project tags as pills.
type TagsContent struct {
	Title string   `json:"title,omitempty"`
	Tags  []string `json:"tags"`
}

// RawContent carries the payload of a section whose type is not registered in
// this build (foreign or corrupted data). It survives load/save untouched so
// the renderer can skip it without losing it.
type RawContent struct {
	Type   Type
	Fields map[string]any
}

func (c HeroContent) SectionType() Type           { return TypeHero }
func (c MetadataContent) SectionType() Type       { return TypeMetadata }
func (c AboutContent) SectionType() Type          { return TypeAbout }
func (c FullWidthImageContent) SectionType() Type { return TypeFullWidthImage }
func (c ConceptContent) SectionType() Type        { return TypeConcept }
func (c DesignZonesContent) SectionType() Type    { return TypeDesignZones }
func (c TextBlockContent) SectionType() Type      { return TypeTextBlock }
func (c ImageBlockContent) SectionType() Type     { return TypeImageBlock }
func (c GalleryContent) SectionType() Type        { return TypeGallery }
func (c CTAContent) SectionType() Type            { return TypeCTA }
func (c TagsContent) SectionType() Type           { return TypeTags }
func (c RawContent) SectionType() Type            { return c.Type }

func (HeroContent) sealed()           {}
func (MetadataContent) sealed()       {}
func (AboutContent) sealed()          {}
func (FullWidthImageContent) sealed() {}
func (ConceptContent) sealed()        {}
func (DesignZonesContent) sealed()    {}
func (TextBlockContent) sealed()      {}
func (ImageBlockContent) sealed()     {}
func (GalleryContent) sealed()        {}
func (CTAContent) sealed()            {}
func (TagsContent) sealed()           {}
func (RawContent) sealed()            {}

// Translation is a partial per-locale override of a section's title and
// content. Content keys replace base fields wholesale, arrays included; the
// overlay never descends into sub-fields.
type Translation struct {
	Title   string         `json:"title,omitempty"`
	Content map[string]any `json:"content,omitempty"`
}

// Section is the unit of page composition.
type Section struct {
	ID           string                 `json:"id"`
	Type         Type                   `json:"type"`
	Order        int                    `json:"order"`
	Enabled      *bool                  `json:"enabled,omitempty"`
	Title        string                 `json:"title,omitempty"`
	Content      Content                `json:"content"`
	Translations map[string]Translation `json:"translations,omitempty"`
}

// IsEnabled reports whether the section participates in resolution. A missing
// flag counts as enabled (default-on).
func (s Section) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// EnabledFlag returns a pointer suitable for the Enabled field.
func EnabledFlag(enabled bool) *bool {
	return &enabled
}

// Clone returns a copy safe to mutate structurally. Typed payloads are value
// types and travel as-is; callers replace payloads whole rather than editing
// them in place.
func (s Section) Clone() Section {
	out := s
	if s.Enabled != nil {
		out.Enabled = EnabledFlag(*s.Enabled)
	}
	if raw, ok := s.Content.(RawContent); ok {
		fields := make(map[string]any, len(raw.Fields))
		for key, value := range raw.Fields {
			fields[key] = value
		}
		out.Content = RawContent{Type: raw.Type, Fields: fields}
	}
	if s.Translations != nil {
		translations := make(map[string]Translation, len(s.Translations))
		for locale, tr := range s.Translations {
			clone := tr
			if tr.Content != nil {
				content := make(map[string]any, len(tr.Content))
				for key, value := range tr.Content {
					content[key] = value
				}
				clone.Content = content
			}
			translations[locale] = clone
		}
		out.Translations = translations
	}
	return out
}

// Resolved is the read-only view of a section after locale resolution.
type Resolved struct {
	ID      string  `json:"id"`
	Type    Type    `json:"type"`
	Title   string  `json:"title,omitempty"`
	Content Content `json:"content"`
}
