package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/buro710/studio-cms/internal/sections"
)

// Repository exposes persistence operations for projects.
type Repository interface {
	Create(ctx context.Context, project *Project) (*Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, project *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceSections swaps the whole section list in one write. Partial
	// updates of individual sections are not part of the contract.
	ReplaceSections(ctx context.Context, id uuid.UUID, list []sections.Section) (*Project, error)
}

// CreateProjectInput captures the payload for a new project. Slug is derived
// from the title when empty.
type CreateProjectInput struct {
	Slug             string
	Title            string
	Subtitle         *string
	ShortDescription *string
	Description      []string
	ImageURL         *string
	Tags             []string
	Category         *string
	CategoryPrimary  *string
	Architects       *string
	Area             *string
	Location         *string
	Year             *string
	PhotoCredits     *string
	ConceptHeading   *string
	ConceptCaption   *string
	ConceptQuote     *string
	Images           []sections.Image
	DesignZones      []sections.DesignZone
	Materials        []sections.Material
	Sections         []sections.Section
	Featured         bool
	Published        *bool
}

// UpdateProjectInput carries partial updates; nil fields keep the stored value.
type UpdateProjectInput struct {
	Title            *string
	Subtitle         *string
	ShortDescription *string
	Description      []string
	ImageURL         *string
	Tags             []string
	Category         *string
	CategoryPrimary  *string
	Architects       *string
	Area             *string
	Location         *string
	Year             *string
	PhotoCredits     *string
	ConceptHeading   *string
	ConceptCaption   *string
	ConceptQuote     *string
	Images           []sections.Image
	DesignZones      []sections.DesignZone
	Materials        []sections.Material
	Featured         *bool
	Published        *bool
}

// TranslationPatch is a per-section translation update for one locale.
type TranslationPatch struct {
	Title   string         `json:"title,omitempty"`
	Content map[string]any `json:"content,omitempty"`
}

// Service exposes project operations backed by a Repository.
type Service interface {
	Create(ctx context.Context, input CreateProjectInput) (*Project, error)
	Get(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	ListPublished(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// EffectiveSections returns the stored section list, or the synthesized
	// legacy list when the project was never saved through the editor.
	EffectiveSections(ctx context.Context, id uuid.UUID) ([]sections.Section, error)

	// ResolvedSections returns the render-ready list for one locale.
	ResolvedSections(ctx context.Context, id uuid.UUID, locale string) ([]sections.Resolved, error)

	ReplaceSections(ctx context.Context, id uuid.UUID, list []sections.Section) (*Project, error)
	MergeTranslations(ctx context.Context, id uuid.UUID, locale string, patches map[string]TranslationPatch) (*Project, error)
}
