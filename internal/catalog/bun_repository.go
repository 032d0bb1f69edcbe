package catalog

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunCategoryRepository implements CategoryRepository over bun with optional caching.
type BunCategoryRepository struct {
	repo repository.Repository[*Category]
}

func NewBunCategoryRepository(db *bun.DB) *BunCategoryRepository {
	return NewBunCategoryRepositoryWithCache(db, nil, nil)
}

func NewBunCategoryRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunCategoryRepository {
	base := NewCategoryRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunCategoryRepository{repo: wrapped}
}

func (r *BunCategoryRepository) List(ctx context.Context, kind Kind) ([]*Category, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.kind = ?", kind).
				Where("?TableAlias.is_active = ?", true).
				Where("?TableAlias.deleted_at IS NULL").
				OrderExpr("?TableAlias.display_order ASC NULLS LAST")
		}),
	)
	if err != nil {
		return nil, &FetchError{Resource: "category", Err: err}
	}
	return records, nil
}

func (r *BunCategoryRepository) GetBySlug(ctx context.Context, kind Kind, slug string) (*Category, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.kind = ?", kind).
				Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.deleted_at IS NULL").
				Limit(1)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "category", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "category", Key: slug}
	}
	return records[0], nil
}

func (r *BunCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "category", id.String())
	}
	return record, nil
}

func (r *BunCategoryRepository) Create(ctx context.Context, record *Category) (*Category, error) {
	return r.repo.Create(ctx, record)
}

// BunItemRepository implements ItemRepository over bun with optional caching.
type BunItemRepository struct {
	repo repository.Repository[*Item]
}

func NewBunItemRepository(db *bun.DB) *BunItemRepository {
	return NewBunItemRepositoryWithCache(db, nil, nil)
}

func NewBunItemRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunItemRepository {
	base := NewItemRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunItemRepository{repo: wrapped}
}

func (r *BunItemRepository) List(ctx context.Context, kind Kind) ([]*Item, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.kind = ?", kind).
				Where("?TableAlias.published = ?", true).
				Where("?TableAlias.deleted_at IS NULL").
				OrderExpr("?TableAlias.display_order ASC NULLS LAST").
				OrderExpr("?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, &FetchError{Resource: "item", Err: err}
	}
	return records, nil
}

func (r *BunItemRepository) GetBySlug(ctx context.Context, kind Kind, slug string) (*Item, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.kind = ?", kind).
				Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.deleted_at IS NULL").
				Limit(1)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "item", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "item", Key: slug}
	}
	return records[0], nil
}

func (r *BunItemRepository) Create(ctx context.Context, record *Item) (*Item, error) {
	return r.repo.Create(ctx, record)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
