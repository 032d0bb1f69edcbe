package navigation

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-catalog/internal/catalog"
)

// URLResolver builds the public URL for a category entry.
type URLResolver interface {
	Resolve(kind catalog.Kind, slug string) (string, error)
}

// URLKitResolverOptions configures the go-urlkit backed resolver.
type URLKitResolverOptions struct {
	Manager *urlkit.RouteManager
	// Group names the urlkit route group holding the catalog routes.
	Group string
	// Routes maps a catalog kind to its route name within the group
	// (e.g. product -> "product-category").
	Routes map[catalog.Kind]string
	// SlugParam names the path parameter carrying the category slug.
	SlugParam string
}

// URLKitResolver resolves navigation URLs using a go-urlkit RouteManager.
type URLKitResolver struct {
	manager   *urlkit.RouteManager
	group     string
	routes    map[catalog.Kind]string
	slugParam string
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	return &URLKitResolver{
		manager:   opts.Manager,
		group:     strings.TrimSpace(opts.Group),
		routes:    opts.Routes,
		slugParam: opts.SlugParam,
	}
}

// Resolve builds a URL for the category slug. A missing manager, group, or
// route mapping yields an empty URL rather than an error so menus degrade to
// unlinked labels.
func (r *URLKitResolver) Resolve(kind catalog.Kind, slug string) (string, error) {
	if r == nil || r.manager == nil || r.group == "" {
		return "", nil
	}

	route, ok := r.routes[kind]
	if !ok || strings.TrimSpace(route) == "" {
		return "", nil
	}

	group, err := lookupGroup(r.manager, r.group)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil || builder == nil {
		return "", err
	}

	return builder.WithParam(r.slugParam, slug).Build()
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("navigation: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("navigation: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}
