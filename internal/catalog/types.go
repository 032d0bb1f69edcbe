package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Kind distinguishes the two catalog collections. Products and solutions share
// one schema; every query is scoped by kind so slugs only need to be unique
// within their own collection.
type Kind string

const (
	KindProduct  Kind = "product"
	KindSolution Kind = "solution"
)

// ParseKind normalizes free-form input into a Kind.
func ParseKind(value string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "product", "products":
		return KindProduct, true
	case "solution", "solutions":
		return KindSolution, true
	default:
		return "", false
	}
}

// Category represents an admin-defined grouping for catalog items.
//
// Slug is the admin-intended canonical identifier and may be absent on older
// records; Name is always present. DisplayOrder is optional; records without
// one sort last.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID              uuid.UUID  `bun:",pk,type:uuid"           json:"id"`
	Kind            Kind       `bun:"kind,notnull"            json:"kind"`
	Name            string     `bun:"name,notnull"            json:"name"`
	Slug            *string    `bun:"slug"                    json:"slug,omitempty"`
	DisplayOrder    *int       `bun:"display_order"           json:"display_order,omitempty"`
	Description     *string    `bun:"description"             json:"description,omitempty"`
	BreadcrumbImage *string    `bun:"breadcrumb_image"        json:"breadcrumb_image,omitempty"`
	ParentID        *uuid.UUID `bun:"parent_id,type:uuid"     json:"parent_id,omitempty"`
	IsActive        bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	DeletedAt       *time.Time `bun:"deleted_at,nullzero"     json:"deleted_at,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// SlugValue returns the slug or "" when absent.
func (c *Category) SlugValue() string {
	if c == nil || c.Slug == nil {
		return ""
	}
	return *c.Slug
}

// Item is a catalog entry (product or solution).
//
// Category is a denormalized free-text label. It is not guaranteed to equal
// any Category.Name byte-for-byte; reconciliation happens at read time via
// normalized comparison in the listing pipeline.
type Item struct {
	bun.BaseModel `bun:"table:items,alias:it"`

	ID           uuid.UUID      `bun:",pk,type:uuid"        json:"id"`
	Kind         Kind           `bun:"kind,notnull"         json:"kind"`
	Title        string         `bun:"title,notnull"        json:"title"`
	Slug         string         `bun:"slug,notnull"         json:"slug"`
	Category     string         `bun:"category"             json:"category,omitempty"`
	Subcategory  *string        `bun:"subcategory"          json:"subcategory,omitempty"`
	DisplayOrder *int           `bun:"display_order"        json:"display_order,omitempty"`
	Summary      *string        `bun:"summary"              json:"summary,omitempty"`
	Body         *string        `bun:"body"                 json:"body,omitempty"`
	Images       []string       `bun:"images,type:jsonb"    json:"images,omitempty"`
	Features     []string       `bun:"features,type:jsonb"  json:"features,omitempty"`
	Metadata     map[string]any `bun:"metadata,type:jsonb"  json:"metadata,omitempty"`
	Published    bool           `bun:"published,notnull,default:false" json:"published"`
	DeletedAt    *time.Time     `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
