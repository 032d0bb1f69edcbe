package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter carries the metadata extracted from a markdown document header.
type FrontMatter struct {
	Title      string
	Slug       string
	Author     string
	Excerpt    string
	CoverImage string
	Tags       []string
	Date       time.Time
	Draft      bool
	Custom     map[string]any
}

// Document pairs a markdown body with its parsed front matter.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
}

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured frontmatter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles a Document from the supplied file path, raw content,
// and modification time. The body is kept as Markdown; rendering happens
// lazily at import time.
func BuildDocument(path string, source []byte, modified time.Time) (*Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &Document{
		FilePath:     path,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug"`
	Author     string         `yaml:"author"`
	Excerpt    string         `yaml:"excerpt"`
	CoverImage string         `yaml:"cover_image"`
	Tags       []string       `yaml:"tags"`
	Date       time.Time      `yaml:"date"`
	Draft      bool           `yaml:"draft"`
	Custom     map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	return FrontMatter{
		Title:      env.Title,
		Slug:       env.Slug,
		Author:     env.Author,
		Excerpt:    env.Excerpt,
		CoverImage: env.CoverImage,
		Tags:       env.Tags,
		Date:       env.Date,
		Draft:      env.Draft,
		Custom:     env.Custom,
	}
}
