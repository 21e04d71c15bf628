package projects

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/buro710/studio-cms/internal/sections"
)

func newProjectRepository(db *bun.DB) repository.Repository[*Project] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Project]{
		NewRecord:          func() *Project { return &Project{} },
		GetID:              func(p *Project) uuid.UUID { return p.ID },
		SetID:              func(p *Project, id uuid.UUID) { p.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(p *Project) string { return p.Slug },
	})
}

// BunRepository implements Repository on bun with optional read caching.
type BunRepository struct {
	repo repository.Repository[*Project]
}

// NewBunRepository creates a project repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a project repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := newProjectRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) Create(ctx context.Context, project *Project) (*Project, error) {
	record, err := r.repo.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("project repository error: %w", err)
	}
	return record, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "project", id.String())
	}
	return record, nil
}

func (r *BunRepository) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "project", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "project", Key: slug}
	}
	return records[0], nil
}

func (r *BunRepository) List(ctx context.Context) ([]*Project, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("created_at ASC", "slug ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "project", "")
	}
	return records, nil
}

func (r *BunRepository) Update(ctx context.Context, project *Project) (*Project, error) {
	updated, err := r.repo.Update(ctx, project,
		repository.UpdateByID(project.ID.String()),
		repository.UpdateColumns(
			"slug",
			"title",
			"subtitle",
			"short_description",
			"description",
			"image_url",
			"tags",
			"category",
			"category_primary",
			"architects",
			"area",
			"location",
			"year",
			"photo_credits",
			"concept_heading",
			"concept_caption",
			"concept_quote",
			"images",
			"design_zones",
			"materials",
			"featured",
			"published",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "project", project.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Project{ID: id}); err != nil {
		return mapRepositoryError(err, "project", id.String())
	}
	return nil
}

// ReplaceSections writes the section list column in a single update so a
// failing save never leaves a partially replaced list behind.
func (r *BunRepository) ReplaceSections(ctx context.Context, id uuid.UUID, list []sections.Section) (*Project, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "project", id.String())
	}

	record.Sections = list
	if record.Sections == nil {
		record.Sections = []sections.Section{}
	}
	record.UpdatedAt = time.Now()

	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(id.String()),
		repository.UpdateColumns("sections", "updated_at"),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "project", id.String())
	}
	return updated, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
