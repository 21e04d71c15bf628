package markdown

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/buro710/studio-cms/internal/logging"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

var (
	ErrProjectServiceRequired = errors.New("markdown importer: project service is required")
	ErrSlugMissing            = errors.New("markdown importer: slug could not be determined")
)

// ImporterConfig encapsulates the dependencies needed to persist case studies.
type ImporterConfig struct {
	Projects      projects.Service
	Parser        *GoldmarkParser
	DefaultLocale string
	Logger        interfaces.Logger
	// DryRun reports what would change without persisting anything.
	DryRun bool
}

// Importer converts parsed case study documents into portfolio projects.
// Documents in the default locale create or update the project record,
// documents in other locales are folded in as section translations.
type Importer struct {
	projects      projects.Service
	parser        *GoldmarkParser
	defaultLocale string
	logger        interfaces.Logger
	dryRun        bool
}

// ImportReport summarises one importer run.
type ImportReport struct {
	Created    []string
	Updated    []string
	Translated []string
	Skipped    []string
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) (*Importer, error) {
	if cfg.Projects == nil {
		return nil, ErrProjectServiceRequired
	}
	parser := cfg.Parser
	if parser == nil {
		parser = NewGoldmarkParser()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	locale := strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))
	if locale == "" {
		locale = sections.DefaultLocale
	}

	return &Importer{
		projects:      cfg.Projects,
		parser:        parser,
		defaultLocale: locale,
		logger:        logger,
		dryRun:        cfg.DryRun,
	}, nil
}

// ImportDocuments groups documents by slug and applies each group. The
// default-locale document drives the project record, remaining locales are
// merged as translations. Slug groups apply in lexical order so repeated runs
// report identically.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*Document) (*ImportReport, error) {
	grouped := make(map[string][]*Document)
	order := make([]string, 0, len(docs))
	for _, doc := range docs {
		slugKey := documentSlug(doc)
		if slugKey == "" {
			return nil, ErrSlugMissing
		}
		if _, seen := grouped[slugKey]; !seen {
			order = append(order, slugKey)
		}
		grouped[slugKey] = append(grouped[slugKey], doc)
	}
	sort.Strings(order)

	report := &ImportReport{}
	for _, slugKey := range order {
		if err := i.applyGroup(ctx, slugKey, grouped[slugKey], report); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (i *Importer) applyGroup(ctx context.Context, slugKey string, docs []*Document, report *ImportReport) error {
	var base *Document
	var translations []*Document
	for _, doc := range docs {
		if strings.EqualFold(doc.Locale, i.defaultLocale) || doc.Locale == "" {
			if base == nil {
				base = doc
			}
			continue
		}
		translations = append(translations, doc)
	}

	if base != nil {
		if base.Meta.Draft {
			i.logger.Debug("skipping draft case study", "slug", slugKey, "path", base.Path)
			report.Skipped = append(report.Skipped, slugKey)
			return nil
		}
		if err := i.upsertProject(ctx, slugKey, base, report); err != nil {
			return err
		}
	}

	for _, doc := range translations {
		if err := i.mergeTranslation(ctx, slugKey, doc, report); err != nil {
			return err
		}
	}
	return nil
}

func (i *Importer) upsertProject(ctx context.Context, slugKey string, doc *Document, report *ImportReport) error {
	description := i.parser.Paragraphs(doc.Body)

	existing, err := i.projects.GetBySlug(ctx, slugKey)
	if err != nil {
		var notFound *projects.NotFoundError
		if !errors.As(err, &notFound) {
			return err
		}

		if i.dryRun {
			report.Created = append(report.Created, slugKey)
			return nil
		}

		input := projects.CreateProjectInput{
			Slug:             slugKey,
			Title:            doc.Meta.Title,
			Subtitle:         optional(doc.Meta.Subtitle),
			ShortDescription: optional(doc.Meta.ShortDescription),
			Description:      description,
			ImageURL:         optional(doc.Meta.Image),
			Tags:             append([]string(nil), doc.Meta.Tags...),
			Category:         optional(doc.Meta.Category),
			Architects:       optional(doc.Meta.Architects),
			Area:             optional(doc.Meta.Area),
			Location:         optional(doc.Meta.Location),
			Year:             optional(doc.Meta.Year),
			PhotoCredits:     optional(doc.Meta.PhotoCredits),
			ConceptHeading:   optional(doc.Meta.ConceptHeading),
			ConceptCaption:   optional(doc.Meta.ConceptCaption),
			ConceptQuote:     optional(doc.Meta.ConceptQuote),
			Images:           galleryImages(doc.Meta),
			Featured:         doc.Meta.Featured,
		}
		if _, err := i.projects.Create(ctx, input); err != nil {
			return err
		}
		i.logger.Info("imported case study", "slug", slugKey, "path", doc.Path)
		report.Created = append(report.Created, slugKey)
		return nil
	}

	if i.dryRun {
		report.Updated = append(report.Updated, slugKey)
		return nil
	}

	update := projects.UpdateProjectInput{
		Title:            optional(doc.Meta.Title),
		Subtitle:         optional(doc.Meta.Subtitle),
		ShortDescription: optional(doc.Meta.ShortDescription),
		ImageURL:         optional(doc.Meta.Image),
		Category:         optional(doc.Meta.Category),
		Architects:       optional(doc.Meta.Architects),
		Area:             optional(doc.Meta.Area),
		Location:         optional(doc.Meta.Location),
		Year:             optional(doc.Meta.Year),
		PhotoCredits:     optional(doc.Meta.PhotoCredits),
		ConceptHeading:   optional(doc.Meta.ConceptHeading),
		ConceptCaption:   optional(doc.Meta.ConceptCaption),
		ConceptQuote:     optional(doc.Meta.ConceptQuote),
	}
	if len(description) > 0 {
		update.Description = description
	}
	if len(doc.Meta.Tags) > 0 {
		update.Tags = append([]string(nil), doc.Meta.Tags...)
	}
	if images := galleryImages(doc.Meta); len(images) > 0 {
		update.Images = images
	}
	if _, err := i.projects.Update(ctx, existing.ID, update); err != nil {
		return err
	}
	i.logger.Info("refreshed case study", "slug", slugKey, "path", doc.Path)
	report.Updated = append(report.Updated, slugKey)
	return nil
}

// mergeTranslation maps a localized document onto the hero and about sections
// of the already imported project. The project must exist, typically from the
// default-locale document earlier in the same run.
func (i *Importer) mergeTranslation(ctx context.Context, slugKey string, doc *Document, report *ImportReport) error {
	project, err := i.projects.GetBySlug(ctx, slugKey)
	if err != nil {
		var notFound *projects.NotFoundError
		if errors.As(err, &notFound) {
			i.logger.Warn("translation without base project",
				"slug", slugKey, "locale", doc.Locale, "path", doc.Path)
			report.Skipped = append(report.Skipped, slugKey+":"+doc.Locale)
			return nil
		}
		return err
	}

	list, err := i.projects.EffectiveSections(ctx, project.ID)
	if err != nil {
		return err
	}

	patches := make(map[string]projects.TranslationPatch)
	for _, section := range list {
		switch section.Content.(type) {
		case sections.HeroContent:
			patch := projects.TranslationPatch{Title: doc.Meta.Title}
			content := map[string]any{}
			if doc.Meta.Title != "" {
				content["title"] = doc.Meta.Title
			}
			if doc.Meta.Subtitle != "" {
				content["subtitle"] = doc.Meta.Subtitle
			}
			if len(content) > 0 {
				patch.Content = content
			}
			patches[section.ID] = patch
		case sections.AboutContent:
			if description := i.parser.Paragraphs(doc.Body); len(description) > 0 {
				patches[section.ID] = projects.TranslationPatch{
					Content: map[string]any{"description": description},
				}
			}
		}
	}

	if len(patches) == 0 {
		report.Skipped = append(report.Skipped, slugKey+":"+doc.Locale)
		return nil
	}

	if !i.dryRun {
		if _, err := i.projects.MergeTranslations(ctx, project.ID, doc.Locale, patches); err != nil {
			return err
		}
	}
	report.Translated = append(report.Translated, slugKey+":"+doc.Locale)
	return nil
}

// documentSlug prefers the frontmatter slug and falls back to the file name.
func documentSlug(doc *Document) string {
	if doc.Meta.Slug != "" {
		return strings.ToLower(doc.Meta.Slug)
	}
	base := filepath.Base(doc.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(strings.TrimSpace(base))
}

func galleryImages(meta CaseStudyMeta) []sections.Image {
	if len(meta.Images) == 0 {
		return nil
	}
	images := make([]sections.Image, 0, len(meta.Images))
	for _, url := range meta.Images {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		images = append(images, sections.Image{URL: url})
	}
	return images
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
