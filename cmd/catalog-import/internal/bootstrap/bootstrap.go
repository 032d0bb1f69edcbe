package bootstrap

import (
	"fmt"
	"strings"

	gocatalog "github.com/goliatone/go-catalog"
	"github.com/goliatone/go-catalog/internal/di"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Options captures configuration for the import CLI bootstrap.
type Options struct {
	ContentDir     string
	DSN            string
	IncludeDrafts  bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the catalog module and the configured posts service/logger.
type Module struct {
	Module  *gocatalog.Module
	Service gocatalog.PostsService
	Logger  interfaces.Logger
}

// BuildModule constructs a catalog module configured for markdown imports.
// A DSN selects sqlite storage; without one posts land in memory, which only
// makes sense together with dry runs.
func BuildModule(opts Options) (*Module, error) {
	cfg := gocatalog.DefaultConfig()
	cfg.Features.Navigation = false
	cfg.Features.Posts = true

	cfg.Markdown.ContentDir = strings.TrimSpace(opts.ContentDir)
	if cfg.Markdown.ContentDir == "" {
		cfg.Markdown.ContentDir = "content"
	}
	cfg.Markdown.IncludeDrafts = opts.IncludeDrafts

	if dsn := strings.TrimSpace(opts.DSN); dsn != "" {
		cfg.Storage = gocatalog.StorageConfig{
			Provider: "sqlite",
			DSN:      dsn,
		}
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := gocatalog.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise catalog module: %w", err)
	}

	return &Module{
		Module:  module,
		Service: module.Posts(),
		Logger:  logging.PostsLogger(opts.LoggerProvider),
	}, nil
}
