package projects

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/buro710/studio-cms/internal/identity"
	"github.com/buro710/studio-cms/internal/sections"
)

type IDGenerator func() uuid.UUID

type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the slug-derived deterministic id assignment.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

type service struct {
	repo Repository
	now  func() time.Time
	// id is nil by default; Create then derives the id from the slug so
	// repeated markdown imports and seeds resolve to the same record.
	id IDGenerator
}

func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, input CreateProjectInput) (*Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	normalized, err := slug.Normalize(firstNonEmpty(input.Slug, title))
	if err != nil || normalized == "" {
		return nil, fmt.Errorf("%w: %v", ErrSlugRequired, err)
	}

	if existing, err := s.repo.GetBySlug(ctx, normalized); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrSlugExists, normalized)
	} else if err != nil {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
	}

	if input.Sections != nil {
		if err := validateSectionList(input.Sections); err != nil {
			return nil, err
		}
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	id := identity.ProjectUUID(normalized)
	if s.id != nil {
		id = s.id()
	}

	now := s.now()
	project := &Project{
		ID:               id,
		Slug:             normalized,
		Title:            title,
		Subtitle:         input.Subtitle,
		ShortDescription: input.ShortDescription,
		Description:      cloneStrings(input.Description),
		ImageURL:         input.ImageURL,
		Tags:             cloneStrings(input.Tags),
		Category:         input.Category,
		CategoryPrimary:  input.CategoryPrimary,
		Architects:       input.Architects,
		Area:             input.Area,
		Location:         input.Location,
		Year:             input.Year,
		PhotoCredits:     input.PhotoCredits,
		ConceptHeading:   input.ConceptHeading,
		ConceptCaption:   input.ConceptCaption,
		ConceptQuote:     input.ConceptQuote,
		Images:           cloneImages(input.Images),
		DesignZones:      cloneZones(input.DesignZones),
		Materials:        cloneMaterials(input.Materials),
		Sections:         cloneSections(input.Sections),
		Featured:         input.Featured,
		Published:        published,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return s.repo.Create(ctx, project)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, value string) (*Project, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, ErrSlugRequired
	}
	return s.repo.GetBySlug(ctx, trimmed)
}

func (s *service) List(ctx context.Context) ([]*Project, error) {
	return s.repo.List(ctx)
}

func (s *service) ListPublished(ctx context.Context) ([]*Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]*Project, 0, len(all))
	for _, project := range all {
		if project.Published {
			published = append(published, project)
		}
	}
	return published, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		project.Title = title
	}
	if input.Subtitle != nil {
		project.Subtitle = input.Subtitle
	}
	if input.ShortDescription != nil {
		project.ShortDescription = input.ShortDescription
	}
	if input.Description != nil {
		project.Description = cloneStrings(input.Description)
	}
	if input.ImageURL != nil {
		project.ImageURL = input.ImageURL
	}
	if input.Tags != nil {
		project.Tags = cloneStrings(input.Tags)
	}
	if input.Category != nil {
		project.Category = input.Category
	}
	if input.CategoryPrimary != nil {
		project.CategoryPrimary = input.CategoryPrimary
	}
	if input.Architects != nil {
		project.Architects = input.Architects
	}
	if input.Area != nil {
		project.Area = input.Area
	}
	if input.Location != nil {
		project.Location = input.Location
	}
	if input.Year != nil {
		project.Year = input.Year
	}
	if input.PhotoCredits != nil {
		project.PhotoCredits = input.PhotoCredits
	}
	if input.ConceptHeading != nil {
		project.ConceptHeading = input.ConceptHeading
	}
	if input.ConceptCaption != nil {
		project.ConceptCaption = input.ConceptCaption
	}
	if input.ConceptQuote != nil {
		project.ConceptQuote = input.ConceptQuote
	}
	if input.Images != nil {
		project.Images = cloneImages(input.Images)
	}
	if input.DesignZones != nil {
		project.DesignZones = cloneZones(input.DesignZones)
	}
	if input.Materials != nil {
		project.Materials = cloneMaterials(input.Materials)
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.Published != nil {
		project.Published = *input.Published
	}
	project.UpdatedAt = s.now()

	return s.repo.Update(ctx, project)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) EffectiveSections(ctx context.Context, id uuid.UUID) ([]sections.Section, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.HasSections() {
		return cloneSections(project.Sections), nil
	}
	return sections.SynthesizeLegacy(project.LegacySource()), nil
}

func (s *service) ResolvedSections(ctx context.Context, id uuid.UUID, locale string) ([]sections.Resolved, error) {
	list, err := s.EffectiveSections(ctx, id)
	if err != nil {
		return nil, err
	}
	return sections.Resolve(list, locale), nil
}

func (s *service) ReplaceSections(ctx context.Context, id uuid.UUID, list []sections.Section) (*Project, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	if err := validateSectionList(list); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ReplaceSections(ctx, id, cloneSections(list))
}

func (s *service) MergeTranslations(ctx context.Context, id uuid.UUID, locale string, patches map[string]TranslationPatch) (*Project, error) {
	normalized := strings.ToLower(strings.TrimSpace(locale))
	if normalized == "" {
		return nil, sections.ErrLocaleRequired
	}

	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	list := project.Sections
	if !project.HasSections() {
		// Translating a legacy project materializes its synthesized list
		// first so the patches have sections to attach to.
		list = sections.SynthesizeLegacy(project.LegacySource())
	}

	merged := cloneSections(list)
	for i := range merged {
		patch, ok := patches[merged[i].ID]
		if !ok {
			continue
		}
		if merged[i].Translations == nil {
			merged[i].Translations = map[string]sections.Translation{}
		}
		current := merged[i].Translations[normalized]
		if patch.Title != "" {
			current.Title = patch.Title
		}
		if len(patch.Content) > 0 {
			if current.Content == nil {
				current.Content = map[string]any{}
			}
			for key, value := range patch.Content {
				current.Content[key] = value
			}
		}
		merged[i].Translations[normalized] = current
	}

	return s.repo.ReplaceSections(ctx, id, merged)
}

func validateSectionList(list []sections.Section) error {
	seen := make(map[string]bool, len(list))
	for _, section := range list {
		id := strings.TrimSpace(section.ID)
		if id == "" {
			return sections.ErrSectionIDRequired
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", sections.ErrDuplicateSectionID, id)
		}
		seen[id] = true

		if section.Content == nil {
			return fmt.Errorf("%w: section %s has no content", sections.ErrContentShapeInvalid, id)
		}
		if _, raw := section.Content.(sections.RawContent); raw {
			// Foreign types pass through untouched.
			continue
		}
		if !sections.IsKnownType(section.Type) {
			return &sections.UnknownTypeError{Type: section.Type}
		}
		if section.Content.SectionType() != section.Type {
			return fmt.Errorf("%w: section %s content does not match type %s", sections.ErrContentShapeInvalid, id, section.Type)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneImages(values []sections.Image) []sections.Image {
	if values == nil {
		return nil
	}
	out := make([]sections.Image, len(values))
	copy(out, values)
	return out
}

func cloneZones(values []sections.DesignZone) []sections.DesignZone {
	if values == nil {
		return nil
	}
	out := make([]sections.DesignZone, len(values))
	for i, zone := range values {
		clone := zone
		clone.Features = cloneStrings(zone.Features)
		out[i] = clone
	}
	return out
}

func cloneMaterials(values []sections.Material) []sections.Material {
	if values == nil {
		return nil
	}
	out := make([]sections.Material, len(values))
	copy(out, values)
	return out
}

func cloneSections(list []sections.Section) []sections.Section {
	if list == nil {
		return nil
	}
	out := make([]sections.Section, len(list))
	for i, section := range list {
		out[i] = section.Clone()
	}
	return out
}
