package postscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
)

const deletePostMessageType = "blog.post.delete"

// DeletePostCommand removes a post by slug. Deletion is physical and
// immediate; there is no confirmation step.
type DeletePostCommand struct {
	Slug string `json:"slug"`
}

// Type implements command.Message.
func (DeletePostCommand) Type() string { return deletePostMessageType }

// Validate ensures the message carries the target slug.
func (m DeletePostCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("blog.post.delete.slug_required", "Slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeletePostHandler routes delete messages to the post service.
type DeletePostHandler struct {
	inner *commands.Handler[DeletePostCommand]
}

// NewDeletePostHandler constructs a handler wired to the provided post service.
func NewDeletePostHandler(service posts.Service, logger logging.Logger, opts ...commands.HandlerOption[DeletePostCommand]) *DeletePostHandler {
	exec := func(ctx context.Context, msg DeletePostCommand) error {
		return service.Delete(ctx, msg.Slug)
	}

	options := append([]commands.HandlerOption[DeletePostCommand]{
		commands.WithLogger[DeletePostCommand](logger),
		commands.WithOperation[DeletePostCommand]("post.delete"),
	}, opts...)

	return &DeletePostHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute validates and runs the delete message.
func (h *DeletePostHandler) Execute(ctx context.Context, msg DeletePostCommand) error {
	return h.inner.Execute(ctx, msg)
}
