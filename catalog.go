package catalog

import (
	core "github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/di"
	"github.com/goliatone/go-catalog/internal/listing"
	"github.com/goliatone/go-catalog/internal/navigation"
	"github.com/goliatone/go-catalog/internal/posts"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Kind discriminates product and solution catalog trees.
type Kind = core.Kind

const (
	KindProduct  = core.KindProduct
	KindSolution = core.KindSolution
)

// ParseKind normalizes a raw kind string, reporting whether it is supported.
func ParseKind(value string) (Kind, bool) {
	return core.ParseKind(value)
}

// Category exports the category record consumed by listing and navigation.
type Category = core.Category

// Item exports the catalog item record.
type Item = core.Item

// Post exports the blog post record.
type Post = posts.Post

// CategoryRepository exports the category store contract.
type CategoryRepository = core.CategoryRepository

// ItemRepository exports the item store contract.
type ItemRepository = core.ItemRepository

// PostRepository exports the post store contract.
type PostRepository = posts.PostRepository

// ListingService exports the category listing pipeline contract.
type ListingService = listing.Service

// NavigationService exports the menu building contract.
type NavigationService = navigation.Service

// PostsService exports the blog post service contract.
type PostsService = posts.Service

// ViewModel exports the assembled listing page model.
type ViewModel = listing.ViewModel

// Group exports a labelled run of items within a listing.
type Group = listing.Group

// Menu exports the navigation menu model.
type Menu = navigation.Menu

// Entry exports a single navigation menu entry.
type Entry = navigation.Entry

// ImportOptions exports the markdown import options.
type ImportOptions = posts.ImportOptions

// ImportResult exports the markdown import summary.
type ImportResult = posts.ImportResult

// Logger exports the structured logging contract accepted by services.
type Logger = interfaces.Logger

// LoggerProvider exports the named logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// Listing states reported by the pipeline. A category key that matches
// nothing yields StateNotFound; a matched category with no published items
// yields StateEmpty.
const (
	StateFound    = listing.StateFound
	StateNotFound = listing.StateNotFound
	StateEmpty    = listing.StateEmpty
)

// ErrCategoryNotFound is returned by ResolveCategory when no category
// matches the requested key.
var ErrCategoryNotFound = listing.ErrCategoryNotFound

// NormalizeKey canonicalizes a raw category key for matching: trimmed,
// lowercased, with separator runs collapsed to single hyphens.
func NormalizeKey(raw string) string {
	return listing.NormalizeKey(raw)
}

// IsNotFound reports whether err marks a record that does not exist, as
// opposed to a store that could not be reached.
func IsNotFound(err error) bool {
	return core.IsNotFound(err)
}

// IsFetchFailure reports whether err marks a store fetch failure.
func IsFetchFailure(err error) bool {
	return core.IsFetchFailure(err)
}

// Module represents the top level catalog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a catalog module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Listing returns the configured listing service.
func (m *Module) Listing() ListingService {
	return m.container.ListingService()
}

// Navigation returns the configured navigation service, nil when the
// navigation feature is disabled.
func (m *Module) Navigation() NavigationService {
	return m.container.NavigationService()
}

// Posts returns the configured posts service, nil when the posts feature is
// disabled.
func (m *Module) Posts() PostsService {
	return m.container.PostsService()
}

// Categories returns the configured category repository.
func (m *Module) Categories() CategoryRepository {
	return m.container.CategoryRepository()
}

// Items returns the configured item repository.
func (m *Module) Items() ItemRepository {
	return m.container.ItemRepository()
}

// PostStore returns the configured post repository.
func (m *Module) PostStore() PostRepository {
	return m.container.PostRepository()
}

// Close releases container owned resources.
func (m *Module) Close() error {
	return m.container.Close()
}
