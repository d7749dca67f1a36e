// Package markdowncmd exposes the markdown directory import as a command
// message for the CLI.
package markdowncmd

import (
	"context"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
)

const importMessageType = "blog.markdown.import"

// ImportCommand imports every markdown document under Dir into the post store.
type ImportCommand struct {
	Dir string `json:"dir"`
}

// Type implements command.Message.
func (ImportCommand) Type() string { return importMessageType }

// Validate ensures the message carries the source directory.
func (m ImportCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Dir) == "" {
		errs["dir"] = validation.NewError("blog.markdown.import.dir_required", "import directory is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportHandler runs markdown imports through the shared command foundation.
type ImportHandler struct {
	inner *commands.Handler[ImportCommand]
}

// NewImportHandler constructs a handler wired to the provided post service.
func NewImportHandler(service posts.Service, logger logging.Logger, opts ...commands.HandlerOption[ImportCommand]) *ImportHandler {
	exec := func(ctx context.Context, msg ImportCommand) error {
		dir := strings.TrimSpace(msg.Dir)
		if _, err := os.Stat(dir); err != nil {
			return err
		}
		importer := markdown.NewImporter(os.DirFS(dir), service, markdown.WithImporterLogger(logger))
		_, err := importer.Import(ctx)
		return err
	}

	options := append([]commands.HandlerOption[ImportCommand]{
		commands.WithLogger[ImportCommand](logger),
		commands.WithOperation[ImportCommand]("markdown.import"),
	}, opts...)

	return &ImportHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute validates and runs the import message.
func (h *ImportHandler) Execute(ctx context.Context, msg ImportCommand) error {
	return h.inner.Execute(ctx, msg)
}
