package posts

import (
	"context"
	"sort"
	"sync"

	"github.com/goliatone/go-catalog/internal/catalog"
)

// MemoryPostRepository is an in-memory implementation for scaffolding and tests.
type MemoryPostRepository struct {
	mu      sync.RWMutex
	records []*Post
}

// NewMemoryPostRepository creates an empty in-memory post repository.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{}
}

// List returns published posts, newest first.
func (m *MemoryPostRepository) List(_ context.Context) ([]*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Post, 0, len(m.records))
	for _, rec := range m.records {
		if !rec.Published || rec.DeletedAt != nil {
			continue
		}
		out = append(out, clonePost(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PublishedAt, out[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out, nil
}

// GetBySlug retrieves a post by slug.
func (m *MemoryPostRepository) GetBySlug(_ context.Context, slug string) (*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.records {
		if rec.DeletedAt == nil && rec.Slug == slug {
			return clonePost(rec), nil
		}
	}
	return nil, &catalog.NotFoundError{Resource: "post", Key: slug}
}

// Create inserts the supplied post.
func (m *MemoryPostRepository) Create(_ context.Context, record *Post) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := clonePost(record)
	m.records = append(m.records, copied)
	return clonePost(copied), nil
}

// Update replaces a post matched by ID.
func (m *MemoryPostRepository) Update(_ context.Context, record *Post) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.records {
		if existing.ID == record.ID {
			copied := clonePost(record)
			m.records[i] = copied
			return clonePost(copied), nil
		}
	}
	return nil, &catalog.NotFoundError{Resource: "post", Key: record.ID.String()}
}

func clonePost(src *Post) *Post {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.Tags) > 0 {
		copied.Tags = append([]string(nil), src.Tags...)
	}
	return &copied
}
