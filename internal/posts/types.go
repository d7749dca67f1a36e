package posts

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Post is the sole content entity: a slug-addressed markdown document.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID        uuid.UUID `bun:",pk,type:uuid"  json:"id"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	Title     string    `bun:"title,notnull"       json:"title"`
	Markdown  string    `bun:"markdown,notnull"    json:"markdown"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Summary is the slug+title projection used by index pages. Body content is
// intentionally excluded so listings never pay for markdown payloads.
type Summary struct {
	Slug  string `bun:"slug"  json:"slug"`
	Title string `bun:"title" json:"title"`
}
