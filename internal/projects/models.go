package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/buro710/studio-cms/internal/sections"
)

// Project is a portfolio case study. Older records carry only the flat
// columns; records saved through the section editor additionally carry an
// explicit section list which then becomes the source of truth for rendering.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID               uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug             string    `bun:"slug,notnull,unique" json:"slug"`
	Title            string    `bun:"title,notnull" json:"title"`
	Subtitle         *string   `bun:"subtitle" json:"subtitle,omitempty"`
	ShortDescription *string   `bun:"short_description" json:"short_description,omitempty"`
	Description      []string  `bun:"description,type:jsonb" json:"description,omitempty"`
	ImageURL         *string   `bun:"image_url" json:"image_url,omitempty"`
	Tags             []string  `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Category         *string   `bun:"category" json:"category,omitempty"`
	CategoryPrimary  *string   `bun:"category_primary" json:"category_primary,omitempty"`

	Architects   *string `bun:"architects" json:"architects,omitempty"`
	Area         *string `bun:"area" json:"area,omitempty"`
	Location     *string `bun:"location" json:"location,omitempty"`
	Year         *string `bun:"year" json:"year,omitempty"`
	PhotoCredits *string `bun:"photo_credits" json:"photo_credits,omitempty"`

	ConceptHeading *string `bun:"concept_heading" json:"concept_heading,omitempty"`
	ConceptCaption *string `bun:"concept_caption" json:"concept_caption,omitempty"`
	ConceptQuote   *string `bun:"concept_quote" json:"concept_quote,omitempty"`

	Images      []sections.Image      `bun:"images,type:jsonb" json:"images,omitempty"`
	DesignZones []sections.DesignZone `bun:"design_zones,type:jsonb" json:"design_zones,omitempty"`
	Materials   []sections.Material   `bun:"materials,type:jsonb" json:"materials,omitempty"`

	// Sections is empty until an admin saves the section editor for the first
	// time; until then the flat columns above remain the source of truth and
	// rendering synthesizes an equivalent list from them.
	Sections []sections.Section `bun:"sections,type:jsonb" json:"sections,omitempty"`

	Featured  bool `bun:"featured,notnull,default:false" json:"featured"`
	Published bool `bun:"published,notnull,default:true" json:"published"`

	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// HasSections reports whether the record carries a non-empty explicit section
// list. An absent or empty list keeps the flat legacy fields authoritative.
func (p *Project) HasSections() bool {
	return len(p.Sections) > 0
}

// LegacySource flattens the record into the input of section synthesis.
func (p *Project) LegacySource() sections.LegacySource {
	return sections.LegacySource{
		Title:            p.Title,
		Subtitle:         deref(p.Subtitle),
		ShortDescription: deref(p.ShortDescription),
		Description:      p.Description,
		ImageURL:         deref(p.ImageURL),
		Tags:             p.Tags,
		Category:         deref(p.Category),
		CategoryPrimary:  deref(p.CategoryPrimary),
		Architects:       deref(p.Architects),
		Area:             deref(p.Area),
		Location:         deref(p.Location),
		Year:             deref(p.Year),
		PhotoCredits:     deref(p.PhotoCredits),
		ConceptHeading:   deref(p.ConceptHeading),
		ConceptCaption:   deref(p.ConceptCaption),
		ConceptQuote:     deref(p.ConceptQuote),
		Images:           p.Images,
		DesignZones:      p.DesignZones,
	}
}

// CategoryLabel is the display category, inferred from the tags when the flat
// fields are empty.
func (p *Project) CategoryLabel() string {
	return p.LegacySource().CategoryLabel()
}

// MaterialPalette returns the stored materials, inferring a palette from the
// tags when none were stored.
func (p *Project) MaterialPalette() []sections.Material {
	if len(p.Materials) > 0 {
		out := make([]sections.Material, len(p.Materials))
		copy(out, p.Materials)
		return out
	}
	return sections.InferMaterials(p.Tags)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
