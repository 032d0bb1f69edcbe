package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrStorageProviderUnknown = errors.New("catalog config: storage provider is invalid")
var ErrStorageDSNRequired = errors.New("catalog config: sqlite storage requires a DSN")
var ErrRemoteBaseURLRequired = errors.New("catalog config: remote storage requires a base URL")
var ErrMarkdownContentDirRequired = errors.New("catalog config: markdown content directory is required when posts are enabled")
var ErrLoggingProviderUnknown = errors.New("catalog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("catalog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("catalog config: logging format is invalid")
var ErrCacheTTLInvalid = errors.New("catalog config: cache TTL must be zero or positive")

// Config aggregates feature flags and adapter bindings for the catalog module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled    bool
	Storage    StorageConfig
	Cache      CacheConfig
	Navigation NavigationConfig
	Markdown   MarkdownConfig
	Logging    LoggingConfig
	Features   Features
}

// StorageConfig selects the backing store for categories, items, and posts.
type StorageConfig struct {
	// Provider is one of memory, sqlite, or remote.
	Provider string
	// DSN is the sqlite connection string when Provider is sqlite.
	DSN string
	// BaseURL points at the hosted backend when Provider is remote.
	BaseURL string
	// APIKey authenticates remote requests when set.
	APIKey string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// NavigationConfig captures routing configuration for menu URL resolution.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
	Group       string
	// Routes maps a catalog kind (product, solution) to a route name in Group.
	Routes    map[string]string
	SlugParam string
}

// MarkdownConfig captures filesystem behaviour for post ingestion.
type MarkdownConfig struct {
	ContentDir    string
	IncludeDrafts bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Navigation bool
	Posts      bool
}

// DefaultConfig returns opinionated defaults for an embedded catalog.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Navigation: NavigationConfig{
			Group:     "frontend",
			SlugParam: "slug",
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Navigation: true,
			Posts:      true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	provider := normalize(cfg.Storage.Provider)
	switch provider {
	case "memory":
	case "sqlite":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	case "remote":
		if strings.TrimSpace(cfg.Storage.BaseURL) == "" {
			return ErrRemoteBaseURLRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}

	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}

	if cfg.Features.Posts {
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}

	if logProvider := normalize(cfg.Logging.Provider); logProvider != "" {
		if !isSupportedProvider(logProvider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logProvider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if logProvider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}

	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
