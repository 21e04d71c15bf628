package settings

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func newSettingRepository(db *bun.DB) repository.Repository[*Setting] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Setting]{
		NewRecord:          func() *Setting { return &Setting{} },
		GetID:              func(s *Setting) uuid.UUID { return s.ID },
		SetID:              func(s *Setting, id uuid.UUID) { s.ID = id },
		GetIdentifier:      func() string { return "key" },
		GetIdentifierValue: func(s *Setting) string { return s.Key },
	})
}

// BunRepository implements Repository on bun with optional read caching.
type BunRepository struct {
	repo repository.Repository[*Setting]
}

// NewBunRepository creates a settings repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a settings repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := newSettingRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) List(ctx context.Context) ([]*Setting, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("key ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	return records, nil
}

func (r *BunRepository) Get(ctx context.Context, key string) (*Setting, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.key = ?", key)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, key)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: key}
	}
	return records[0], nil
}

// Set upserts through GetOrCreate so seed runs and admin writes share a path.
func (r *BunRepository) Set(ctx context.Context, setting *Setting) (*Setting, error) {
	existing, err := r.Get(ctx, setting.Key)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		created, err := r.repo.Create(ctx, setting)
		if err != nil {
			return nil, mapRepositoryError(err, setting.Key)
		}
		return created, nil
	}

	existing.Value = setting.Value
	existing.UpdatedAt = setting.UpdatedAt
	updated, err := r.repo.Update(ctx, existing,
		repository.UpdateByID(existing.ID.String()),
		repository.UpdateColumns("value", "updated_at"),
	)
	if err != nil {
		return nil, mapRepositoryError(err, setting.Key)
	}
	return updated, nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}

	return fmt.Errorf("settings repository error: %w", err)
}
