package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository abstracts the collection query service for categories.
//
// List returns only active records, ordered by display_order ascending where
// available; records without an explicit order come last in collection order.
// Errors always mean the fetch failed; an empty slice means no records exist.
type CategoryRepository interface {
	List(ctx context.Context, kind Kind) ([]*Category, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
}

// ItemRepository abstracts the collection query service for catalog items.
// List returns only published records.
type ItemRepository interface {
	List(ctx context.Context, kind Kind) ([]*Item, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*Item, error)
}
