package navigation

import (
	"context"
	"sort"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/pkg/interfaces"
	"github.com/google/uuid"
)

// Service assembles navigation menus from the category tree.
type Service interface {
	Build(ctx context.Context, kind catalog.Kind) (*Menu, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithResolver injects the URL resolver used for menu links. Without one,
// entries carry empty URLs.
func WithResolver(resolver URLResolver) ServiceOption {
	return func(s *service) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithLogger injects the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	categories catalog.CategoryRepository
	resolver   URLResolver
	logger     interfaces.Logger
}

// NewService constructs a navigation service with the required repository.
func NewService(categories catalog.CategoryRepository, opts ...ServiceOption) Service {
	s := &service{
		categories: categories,
		logger:     logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Build fetches the active categories for kind and arranges them into a
// two-level menu: top-level categories in display order (absent orders last),
// subcategories nested under their parent in the same order the store
// returned them. A failed URL resolution degrades to an unlinked entry.
func (s *service) Build(ctx context.Context, kind catalog.Kind) (*Menu, error) {
	categories, err := s.categories.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	byParent := map[uuid.UUID][]*catalog.Category{}
	var roots []*catalog.Category
	for _, cat := range categories {
		if cat.ParentID == nil {
			roots = append(roots, cat)
			continue
		}
		byParent[*cat.ParentID] = append(byParent[*cat.ParentID], cat)
	}

	roots = sortByDisplayOrder(roots)

	menu := &Menu{Kind: kind, Entries: make([]Entry, 0, len(roots))}
	for _, root := range roots {
		entry := s.entryFor(kind, root)
		for _, child := range byParent[root.ID] {
			entry.Children = append(entry.Children, s.entryFor(kind, child))
		}
		menu.Entries = append(menu.Entries, entry)
	}

	return menu, nil
}

func (s *service) entryFor(kind catalog.Kind, cat *catalog.Category) Entry {
	entry := Entry{
		Label: cat.Name,
		Slug:  cat.SlugValue(),
	}
	if s.resolver != nil && entry.Slug != "" {
		url, err := s.resolver.Resolve(kind, entry.Slug)
		if err != nil {
			s.logger.Warn("navigation: url resolution failed", "kind", kind, "slug", entry.Slug, "error", err)
		} else {
			entry.URL = url
		}
	}
	return entry
}

// rootOrderLast is the sort key assigned to categories without an explicit
// display order so they come after every ordered sibling.
const rootOrderLast = int(^uint(0) >> 1)

// sortByDisplayOrder orders root categories ascending by display order, the
// same rule listing pages apply. Names are not unique across roots, so the
// sort works on the records themselves rather than on labels. The sort is
// stable so ties keep store order.
func sortByDisplayOrder(roots []*catalog.Category) []*catalog.Category {
	out := make([]*catalog.Category, len(roots))
	copy(out, roots)
	sort.SliceStable(out, func(i, j int) bool {
		return rootOrder(out[i]) < rootOrder(out[j])
	})
	return out
}

func rootOrder(cat *catalog.Category) int {
	if cat.DisplayOrder == nil {
		return rootOrderLast
	}
	return *cat.DisplayOrder
}
