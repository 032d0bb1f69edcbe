package posts

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Post is a published blog entry on the marketing site.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID          uuid.UUID  `bun:",pk,type:uuid"       json:"id"`
	Title       string     `bun:"title,notnull"       json:"title"`
	Slug        string     `bun:"slug,notnull"        json:"slug"`
	Author      *string    `bun:"author"              json:"author,omitempty"`
	Excerpt     *string    `bun:"excerpt"             json:"excerpt,omitempty"`
	BodyHTML    string     `bun:"body_html"           json:"body_html"`
	CoverImage  *string    `bun:"cover_image"         json:"cover_image,omitempty"`
	Tags        []string   `bun:"tags,type:jsonb"     json:"tags,omitempty"`
	Published   bool       `bun:"published,notnull,default:false" json:"published"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
