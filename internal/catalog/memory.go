package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-catalog/internal/identity"
)

// MemoryCategoryRepository is an in-memory implementation for scaffolding and tests.
// Records keep their insertion order; List applies the same display-order
// sorting contract as the bun implementation.
type MemoryCategoryRepository struct {
	mu      sync.RWMutex
	records []*Category
}

// NewMemoryCategoryRepository creates an empty in-memory category repository.
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{}
}

// Put inserts or replaces a category. Records arriving without an ID get a
// deterministic one derived from kind and slug, so re-seeding the same record
// updates in place instead of duplicating.
func (m *MemoryCategoryRepository) Put(record *Category) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneCategory(record)
	if copied.ID == uuid.Nil {
		copied.ID = identity.CategoryUUID(string(copied.Kind), copied.SlugValue())
	}
	for i, existing := range m.records {
		if existing.ID == copied.ID {
			m.records[i] = copied
			return
		}
	}
	m.records = append(m.records, copied)
}

// List returns active categories of the requested kind, display order ascending,
// absent orders last.
func (m *MemoryCategoryRepository) List(_ context.Context, kind Kind) ([]*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Category, 0, len(m.records))
	for _, rec := range m.records {
		if rec.Kind != kind || !rec.IsActive || rec.DeletedAt != nil {
			continue
		}
		out = append(out, cloneCategory(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return categoryOrder(out[i]) < categoryOrder(out[j])
	})
	return out, nil
}

// GetBySlug retrieves a category by kind and slug.
func (m *MemoryCategoryRepository) GetBySlug(_ context.Context, kind Kind, slug string) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.records {
		if rec.Kind == kind && rec.DeletedAt == nil && rec.SlugValue() == slug {
			return cloneCategory(rec), nil
		}
	}
	return nil, &NotFoundError{Resource: "category", Key: slug}
}

// GetByID retrieves a category by identifier.
func (m *MemoryCategoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.records {
		if rec.ID == id {
			return cloneCategory(rec), nil
		}
	}
	return nil, &NotFoundError{Resource: "category", Key: id.String()}
}

// MemoryItemRepository stores items in-memory, preserving insertion order.
type MemoryItemRepository struct {
	mu      sync.RWMutex
	records []*Item
}

// NewMemoryItemRepository creates an empty in-memory item repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{}
}

// Put inserts or replaces an item. Records arriving without an ID get a
// deterministic one derived from kind and slug.
func (m *MemoryItemRepository) Put(record *Item) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneItem(record)
	if copied.ID == uuid.Nil {
		copied.ID = identity.ItemUUID(string(copied.Kind), copied.Slug)
	}
	for i, existing := range m.records {
		if existing.ID == copied.ID {
			m.records[i] = copied
			return
		}
	}
	m.records = append(m.records, copied)
}

// List returns published items of the requested kind in insertion order.
func (m *MemoryItemRepository) List(_ context.Context, kind Kind) ([]*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Item, 0, len(m.records))
	for _, rec := range m.records {
		if rec.Kind != kind || !rec.Published || rec.DeletedAt != nil {
			continue
		}
		out = append(out, cloneItem(rec))
	}
	return out, nil
}

// GetBySlug retrieves an item by kind and slug.
func (m *MemoryItemRepository) GetBySlug(_ context.Context, kind Kind, slug string) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.records {
		if rec.Kind == kind && rec.DeletedAt == nil && rec.Slug == slug {
			return cloneItem(rec), nil
		}
	}
	return nil, &NotFoundError{Resource: "item", Key: slug}
}

func categoryOrder(c *Category) int {
	if c == nil || c.DisplayOrder == nil {
		return int(^uint(0) >> 1)
	}
	return *c.DisplayOrder
}

func cloneCategory(src *Category) *Category {
	if src == nil {
		return nil
	}
	copied := *src
	return &copied
}

func cloneItem(src *Item) *Item {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.Images) > 0 {
		copied.Images = append([]string(nil), src.Images...)
	}
	if len(src.Features) > 0 {
		copied.Features = append([]string(nil), src.Features...)
	}
	if len(src.Metadata) > 0 {
		copied.Metadata = make(map[string]any, len(src.Metadata))
		for k, v := range src.Metadata {
			copied.Metadata[k] = v
		}
	}
	return &copied
}
