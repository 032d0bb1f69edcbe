package listing

import (
	"context"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Service exposes the listing use cases for category pages.
//
// NotFound and Empty outcomes are data on the returned view model; an error
// from Service always means a fetch failed and no partial view model exists.
type Service interface {
	ListByCategory(ctx context.Context, kind catalog.Kind, requestedKey *string) (*ViewModel, error)
	ResolveCategory(ctx context.Context, kind catalog.Kind, key string) (*catalog.Category, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger injects the logger used by the service. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	categories catalog.CategoryRepository
	items      catalog.ItemRepository
	logger     interfaces.Logger
}

// NewService constructs a listing service with the required repositories.
func NewService(categories catalog.CategoryRepository, items catalog.ItemRepository, opts ...ServiceOption) Service {
	s := &service{
		categories: categories,
		items:      items,
		logger:     logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListByCategory fetches both collections and runs the assembly pipeline.
// Both fetches must succeed before assembly runs; a failed fetch propagates as
// an error rather than producing a view model built from partial data.
func (s *service) ListByCategory(ctx context.Context, kind catalog.Kind, requestedKey *string) (*ViewModel, error) {
	categories, err := s.categories.List(ctx, kind)
	if err != nil {
		s.logger.Error("listing: category fetch failed", "kind", kind, "error", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, kind)
	if err != nil {
		s.logger.Error("listing: item fetch failed", "kind", kind, "error", err)
		return nil, err
	}

	vm := Assemble(requestedKey, categories, items)
	if vm.State == StateNotFound && requestedKey != nil {
		s.logger.Debug("listing: category not found", "kind", kind, "key", *requestedKey)
	}
	return vm, nil
}

// ResolveCategory matches a requested key against the category collection.
func (s *service) ResolveCategory(ctx context.Context, kind catalog.Kind, key string) (*catalog.Category, error) {
	categories, err := s.categories.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return Match(key, categories)
}
