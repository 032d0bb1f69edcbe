package di

import (
	"database/sql"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/listing"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/logging/console"
	"github.com/goliatone/go-catalog/internal/logging/gologger"
	"github.com/goliatone/go-catalog/internal/navigation"
	"github.com/goliatone/go-catalog/internal/posts"
	"github.com/goliatone/go-catalog/internal/remote"
	"github.com/goliatone/go-catalog/internal/runtimeconfig"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Container wires module dependencies. Repositories default to in-memory
// implementations and upgrade to bun-backed or remote variants based on the
// configured storage provider.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	ownsDB        bool
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider

	categoryRepo catalog.CategoryRepository
	itemRepo     catalog.ItemRepository
	postRepo     posts.PostRepository

	routeManager *urlkit.RouteManager
	urlResolver  navigation.URLResolver

	listingSvc    listing.Service
	navigationSvc navigation.Service
	postsSvc      posts.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB injects an externally managed database handle.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache service bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider injects the provider used to mint module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCategoryRepository overrides the default category repository binding.
func WithCategoryRepository(repo catalog.CategoryRepository) Option {
	return func(c *Container) {
		c.categoryRepo = repo
	}
}

// WithItemRepository overrides the default item repository binding.
func WithItemRepository(repo catalog.ItemRepository) Option {
	return func(c *Container) {
		c.itemRepo = repo
	}
}

// WithPostRepository overrides the default post repository binding.
func WithPostRepository(repo posts.PostRepository) Option {
	return func(c *Container) {
		c.postRepo = repo
	}
}

// WithURLResolver overrides the navigation URL resolver binding.
func WithURLResolver(resolver navigation.URLResolver) Option {
	return func(c *Container) {
		c.urlResolver = resolver
	}
}

// WithListingService overrides the default listing service binding.
func WithListingService(svc listing.Service) Option {
	return func(c *Container) {
		c.listingSvc = svc
	}
}

// WithNavigationService overrides the default navigation service binding.
func WithNavigationService(svc navigation.Service) Option {
	return func(c *Container) {
		c.navigationSvc = svc
	}
}

// WithPostsService overrides the default posts service binding.
func WithPostsService(svc posts.Service) Option {
	return func(c *Container) {
		c.postsSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:       cfg,
		cacheTTL:     cacheTTL,
		categoryRepo: catalog.NewMemoryCategoryRepository(),
		itemRepo:     catalog.NewMemoryItemRepository(),
		postRepo:     posts.NewMemoryPostRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	c.configureNavigation()

	if c.listingSvc == nil {
		c.listingSvc = listing.NewService(
			c.categoryRepo,
			c.itemRepo,
			listing.WithLogger(logging.ListingLogger(c.loggerProvider)),
		)
	}

	if c.navigationSvc == nil && c.Config.Features.Navigation {
		navOpts := []navigation.ServiceOption{
			navigation.WithLogger(logging.NavigationLogger(c.loggerProvider)),
		}
		if c.urlResolver != nil {
			navOpts = append(navOpts, navigation.WithResolver(c.urlResolver))
		}
		c.navigationSvc = navigation.NewService(c.categoryRepo, navOpts...)
	}

	if c.postsSvc == nil && c.Config.Features.Posts {
		c.postsSvc = posts.NewService(
			c.postRepo,
			posts.WithLogger(logging.PostsLogger(c.loggerProvider)),
		)
	}

	return c, nil
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil {
		return
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err == nil {
			c.loggerProvider = provider
		}
	case "console":
		minLevel, _ := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{
			MinLevel: &minLevel,
		})
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureStorage() error {
	switch strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider)) {
	case "sqlite":
		if c.bunDB == nil {
			sqlDB, err := sql.Open("sqlite3", c.Config.Storage.DSN)
			if err != nil {
				return err
			}
			sqlDB.SetMaxOpenConns(1)
			c.bunDB = bun.NewDB(sqlDB, sqlitedialect.New())
			c.ownsDB = true
		}
	case "remote":
		client := remote.NewClient(remote.Config{
			BaseURL: c.Config.Storage.BaseURL,
			APIKey:  c.Config.Storage.APIKey,
		}, remote.WithLogger(logging.RemoteLogger(c.loggerProvider)))

		c.categoryRepo = client
		c.itemRepo = client.Items()
		c.postRepo = client.Posts()
		return nil
	}

	if c.bunDB != nil {
		c.categoryRepo = catalog.NewBunCategoryRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.itemRepo = catalog.NewBunItemRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.postRepo = posts.NewBunPostRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	}

	return nil
}

func (c *Container) configureNavigation() {
	if c.urlResolver != nil {
		return
	}

	navCfg := c.Config.Navigation
	if navCfg.RouteConfig == nil {
		return
	}

	manager := urlkit.NewRouteManager(navCfg.RouteConfig)
	c.routeManager = manager

	routes := map[catalog.Kind]string{}
	for kind, route := range navCfg.Routes {
		parsed, ok := catalog.ParseKind(kind)
		if !ok {
			continue
		}
		routes[parsed] = route
	}

	c.urlResolver = navigation.NewURLKitResolver(navigation.URLKitResolverOptions{
		Manager:   manager,
		Group:     strings.TrimSpace(navCfg.Group),
		Routes:    routes,
		SlugParam: strings.TrimSpace(navCfg.SlugParam),
	})
}

// Close releases resources owned by the container, currently only database
// handles it opened itself.
func (c *Container) Close() error {
	if c.ownsDB && c.bunDB != nil {
		return c.bunDB.Close()
	}
	return nil
}

// DB exposes the configured database handle, nil for memory and remote storage.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// LoggerProvider exposes the configured logger provider, nil when logging is console based.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// CategoryRepository exposes the configured category repository.
func (c *Container) CategoryRepository() catalog.CategoryRepository {
	return c.categoryRepo
}

// ItemRepository exposes the configured item repository.
func (c *Container) ItemRepository() catalog.ItemRepository {
	return c.itemRepo
}

// PostRepository exposes the configured post repository.
func (c *Container) PostRepository() posts.PostRepository {
	return c.postRepo
}

// RouteManager exposes the navigation route manager when one was configured.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// ListingService returns the configured listing service.
func (c *Container) ListingService() listing.Service {
	return c.listingSvc
}

// NavigationService returns the configured navigation service, nil when the
// navigation feature is disabled.
func (c *Container) NavigationService() navigation.Service {
	return c.navigationSvc
}

// PostsService returns the configured posts service, nil when the posts
// feature is disabled.
func (c *Container) PostsService() posts.Service {
	return c.postsSvc
}
