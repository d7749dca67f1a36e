// Package postscmd defines the command messages behind the admin mutation
// surface: saving (create or update) and deleting posts.
package postscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
)

const savePostMessageType = "blog.post.save"

// NewRouteSlug is the sentinel route parameter selecting the create path.
const NewRouteSlug = "new"

// SavePostCommand persists a post. RouteSlug is the slug the admin form was
// addressed with: the literal "new" creates, anything else updates that
// record — possibly rewriting its slug.
type SavePostCommand struct {
	RouteSlug string `json:"route_slug"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Markdown  string `json:"markdown"`
}

// Type implements command.Message.
func (SavePostCommand) Type() string { return savePostMessageType }

// IsCreate reports whether the message targets the create path.
func (m SavePostCommand) IsCreate() bool { return m.RouteSlug == NewRouteSlug }

// Validate collects every missing-field error before returning, so the form
// can re-render the full error map in one pass.
func (m SavePostCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.RouteSlug) == "" {
		errs["route_slug"] = validation.NewError("blog.post.save.route_slug_required", "route slug is required")
	}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("blog.post.save.title_required", "Title is required")
	}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("blog.post.save.slug_required", "Slug is required")
	}
	if strings.TrimSpace(m.Markdown) == "" {
		errs["markdown"] = validation.NewError("blog.post.save.markdown_required", "Markdown is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SavePostHandler routes save messages to the post service through the shared
// command handler foundation.
type SavePostHandler struct {
	inner *commands.Handler[SavePostCommand]
}

// NewSavePostHandler constructs a handler wired to the provided post service.
func NewSavePostHandler(service posts.Service, logger logging.Logger, opts ...commands.HandlerOption[SavePostCommand]) *SavePostHandler {
	exec := func(ctx context.Context, msg SavePostCommand) error {
		if msg.IsCreate() {
			_, err := service.Create(ctx, posts.CreatePostRequest{
				Slug:     msg.Slug,
				Title:    msg.Title,
				Markdown: msg.Markdown,
			})
			return err
		}
		_, err := service.Update(ctx, msg.RouteSlug, posts.UpdatePostRequest{
			Slug:     msg.Slug,
			Title:    msg.Title,
			Markdown: msg.Markdown,
		})
		return err
	}

	options := append([]commands.HandlerOption[SavePostCommand]{
		commands.WithLogger[SavePostCommand](logger),
		commands.WithOperation[SavePostCommand]("post.save"),
	}, opts...)

	return &SavePostHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute validates and runs the save message.
func (h *SavePostHandler) Execute(ctx context.Context, msg SavePostCommand) error {
	return h.inner.Execute(ctx, msg)
}
