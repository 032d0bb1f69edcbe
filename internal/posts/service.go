package posts

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/identity"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/markdown"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

var (
	ErrTitleRequired    = errors.New("posts: title is required")
	ErrSlugInvalid      = errors.New("posts: slug contains invalid characters")
	ErrDirectoryInvalid = errors.New("posts: import directory is invalid")
)

// Service exposes blog post use cases.
type Service interface {
	List(ctx context.Context) ([]*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error)
}

// ImportOptions configures markdown directory imports.
type ImportOptions struct {
	// DryRun collects the import plan without persisting posts.
	DryRun bool
	// IncludeDrafts imports documents flagged draft in front matter.
	IncludeDrafts bool
}

// ImportResult summarises a completed import.
type ImportResult struct {
	Created []string
	Updated []string
	Skipped []string
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = clock
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

// WithParser overrides the markdown parser used during imports.
func WithParser(parser *markdown.Parser) ServiceOption {
	return func(s *service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

type service struct {
	repo   PostRepository
	parser *markdown.Parser
	now    func() time.Time
	logger interfaces.Logger
}

// NewService constructs a post service with the required repository.
func NewService(repo PostRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		parser: markdown.NewParser(markdown.ParseOptions{}),
		now:    time.Now,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) List(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	return s.repo.GetBySlug(ctx, strings.TrimSpace(slug))
}

// ImportDirectory loads every markdown file under dir (non-recursive), parses
// front matter, renders the body to HTML, and upserts the resulting posts.
// Post identity is deterministic per slug so re-importing a directory updates
// records in place.
func (s *service) ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, ErrDirectoryInvalid
	}

	entries, err := os.ReadDir(trimmed)
	if err != nil {
		return nil, errors.Join(ErrDirectoryInvalid, err)
	}

	result := &ImportResult{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(trimmed, entry.Name())
		if err := s.importFile(ctx, path, entry, opts, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *service) importFile(ctx context.Context, path string, entry fs.DirEntry, opts ImportOptions, result *ImportResult) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	info, err := entry.Info()
	if err != nil {
		return err
	}

	doc, err := markdown.BuildDocument(path, source, info.ModTime())
	if err != nil {
		return err
	}

	if doc.FrontMatter.Draft && !opts.IncludeDrafts {
		result.Skipped = append(result.Skipped, path)
		return nil
	}

	record, err := s.buildPost(doc)
	if err != nil {
		s.logger.Warn("posts: skipping invalid document", "path", path, "error", err)
		result.Skipped = append(result.Skipped, path)
		return nil
	}

	if opts.DryRun {
		result.Created = append(result.Created, record.Slug)
		return nil
	}

	existing, err := s.repo.GetBySlug(ctx, record.Slug)
	switch {
	case err == nil && existing != nil:
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if _, err := s.repo.Update(ctx, record); err != nil {
			return err
		}
		result.Updated = append(result.Updated, record.Slug)
	case catalog.IsNotFound(err):
		if _, err := s.repo.Create(ctx, record); err != nil {
			return err
		}
		result.Created = append(result.Created, record.Slug)
	default:
		return err
	}

	s.logger.Info("posts: imported document", "path", path, "slug", record.Slug)
	return nil
}

func (s *service) buildPost(doc *markdown.Document) (*Post, error) {
	meta := doc.FrontMatter

	slugValue := strings.TrimSpace(meta.Slug)
	if slugValue == "" {
		derived, err := catalog.NormalizeSlug(meta.Title)
		if err != nil {
			return nil, ErrSlugInvalid
		}
		slugValue = derived
	}

	rec := importRecord{Title: strings.TrimSpace(meta.Title), Slug: slugValue}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	html, err := s.parser.Parse(doc.Body)
	if err != nil {
		return nil, err
	}

	now := s.now()
	post := &Post{
		ID:        identity.PostUUID(slugValue),
		Title:     rec.Title,
		Slug:      slugValue,
		BodyHTML:  string(html),
		Published: !meta.Draft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if meta.Author != "" {
		author := meta.Author
		post.Author = &author
	}
	if meta.Excerpt != "" {
		excerpt := meta.Excerpt
		post.Excerpt = &excerpt
	}
	if meta.CoverImage != "" {
		cover := meta.CoverImage
		post.CoverImage = &cover
	}
	if len(meta.Tags) > 0 {
		post.Tags = append([]string(nil), meta.Tags...)
	}
	if !meta.Date.IsZero() {
		published := meta.Date
		post.PublishedAt = &published
	}

	return post, nil
}

type importRecord struct {
	Title string
	Slug  string
}

func (r importRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error(ErrTitleRequired.Error())),
		validation.Field(&r.Slug, validation.Required, validation.By(func(value any) error {
			if !catalog.IsValidSlug(value.(string)) {
				return ErrSlugInvalid
			}
			return nil
		})),
	)
}
