package sections

import "github.com/buro710/studio-cms/internal/util"

// LegacySource is the flat shape of a project record that predates the
// section model. It remains the source of truth for rendering until an admin
// explicitly saves a section list.
type LegacySource struct {
	Title            string
	Subtitle         string
	ShortDescription string
	Description      []string
	ImageURL         string
	Tags             []string
	Category         string
	CategoryPrimary  string
	Architects       string
	Area             string
	Location         string
	Year             string
	PhotoCredits     string
	ConceptHeading   string
	ConceptCaption   string
	ConceptQuote     string
	Images           []Image
	DesignZones      []DesignZone
}

// Stable slot identifiers for synthesized sections. Synthesis must be
// byte-for-byte deterministic, so ids are fixed per slot rather than generated.
const (
	legacyHeroID           = "section_hero"
	legacyMetadataID       = "section_metadata"
	legacyAboutID          = "section_about"
	legacyFullWidthImageID = "section_full_width_image"
	legacyConceptID        = "section_concept"
	legacyDesignZonesID    = "section_design_zones"
)

// SynthesizeLegacy constructs the section list an older flat project renders
// as, without persisting anything. Slots are emitted in fixed order 0..5;
// slots whose source fields are empty are suppressed entirely rather than
// rendered as empty chrome.
func SynthesizeLegacy(src LegacySource) []Section {
	category := src.CategoryLabel()
	zones := src.zones()

	out := make([]Section, 0, 6)
	out = append(out, legacySection(legacyHeroID, TypeHero, 0, HeroContent{
		ImageURL:         src.ImageURL,
		OverlayColor:     "from-black/30 via-transparent to-black/60",
		ParallaxEnabled:  true,
		Title:            src.Title,
		Subtitle:         category,
		ShortDescription: util.FirstNonEmpty(src.ShortDescription, first(src.Description)),
		Layout:           HeroLayoutCentered,
		AnimationType:    HeroAnimationZoom,
	}))

	if src.hasMetadata() {
		out = append(out, legacySection(legacyMetadataID, TypeMetadata, 1, MetadataContent{
			Architects:   util.FirstNonEmpty(src.Architects, "Bureau 710"),
			Area:         src.Area,
			Location:     src.Location,
			Year:         src.Year,
			PhotoCredits: src.PhotoCredits,
		}))
	}

	if src.Subtitle != "" || len(src.Description) > 0 {
		out = append(out, legacySection(legacyAboutID, TypeAbout, 2, AboutContent{
			Icon:        "solar:sun-fog-linear",
			Subtitle:    category,
			Title:       src.Title,
			Description: util.CloneStrings(src.Description),
		}))
	}

	if src.ImageURL != "" {
		out = append(out, legacySection(legacyFullWidthImageID, TypeFullWidthImage, 3, FullWidthImageContent{
			ImageURL:  src.ImageURL,
			Alt:       src.Title,
			Height:    "80vh",
			Grayscale: false,
		}))
	}

	if src.hasConcept() {
		out = append(out, legacySection(legacyConceptID, TypeConcept, 4, ConceptContent{
			Heading:     util.FirstNonEmpty(src.ConceptHeading, "Культурний Код"),
			Caption:     util.FirstNonEmpty(src.ConceptCaption, "Concept & Context"),
			Description: firstN(src.Description, 2),
			Quote:       src.ConceptQuote,
			Images:      src.conceptImages(),
			Features:    zoneFeatures(zones),
		}))
	}

	if len(zones) > 0 {
		out = append(out, legacySection(legacyDesignZonesID, TypeDesignZones, 5, DesignZonesContent{
			Zones: zones,
		}))
	}

	return out
}

func legacySection(id string, kind Type, order int, content Content) Section {
	title, _ := DefaultTitle(kind)
	return Section{
		ID:      id,
		Type:    kind,
		Order:   order,
		Enabled: EnabledFlag(true),
		Title:   title,
		Content: content,
	}
}

// CategoryLabel prefers the explicit category fields and infers one from the
// tags when none is set.
func (src LegacySource) CategoryLabel() string {
	if explicit := util.FirstNonEmpty(src.Category, src.CategoryPrimary, src.Subtitle); explicit != "" {
		return explicit
	}
	return InferCategory(src.Tags).Full
}

// zones returns the declared design zones, generating a style-matched set when
// none are declared. An empty result is a valid no-zones outcome.
func (src LegacySource) zones() []DesignZone {
	if len(src.DesignZones) > 0 {
		out := make([]DesignZone, len(src.DesignZones))
		copy(out, src.DesignZones)
		return out
	}
	return GenerateDesignZones(src.Tags)
}

func (src LegacySource) hasMetadata() bool {
	return src.Architects != "" || src.Area != "" || src.Location != "" || src.Year != "" || src.PhotoCredits != ""
}

func (src LegacySource) hasConcept() bool {
	return src.ConceptHeading != "" || src.ConceptCaption != "" || src.ConceptQuote != "" || len(src.Description) > 0
}

// conceptImages reuses the project image list, falling back to the single
// legacy image when the list is empty.
func (src LegacySource) conceptImages() []Image {
	if len(src.Images) > 0 {
		out := make([]Image, len(src.Images))
		copy(out, src.Images)
		return out
	}
	if src.ImageURL != "" {
		return []Image{{URL: src.ImageURL, Alt: src.Title}}
	}
	return []Image{}
}

func zoneFeatures(zones []DesignZone) []string {
	if len(zones) == 0 || len(zones[0].Features) == 0 {
		return []string{}
	}
	return util.CloneStrings(zones[0].Features)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstN(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	out := make([]string, n)
	copy(out, values[:n])
	return out
}
