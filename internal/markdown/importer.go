package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
)

// ImportResult summarises a completed import run.
type ImportResult struct {
	Created int
	Updated int
	Skipped int
}

// Importer walks a filesystem of markdown documents and upserts them into the
// post store. Slugs come from frontmatter when present, otherwise from the
// normalized file name, so re-running an import is idempotent.
type Importer struct {
	fsys    fs.FS
	service posts.Service
	logger  logging.Logger
}

// ImporterOption mutates the importer configuration.
type ImporterOption func(*Importer)

// WithImporterLogger injects the importer logger. Defaults to a no-op logger.
func WithImporterLogger(logger logging.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewImporter constructs an importer over the supplied filesystem.
func NewImporter(fsys fs.FS, service posts.Service, opts ...ImporterOption) *Importer {
	imp := &Importer{
		fsys:    fsys,
		service: service,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Import discovers every *.md file under the filesystem root and creates or
// updates the matching posts. Draft documents are skipped.
func (i *Importer) Import(ctx context.Context) (ImportResult, error) {
	var result ImportResult

	files, err := i.discover()
	if err != nil {
		return result, err
	}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		outcome, err := i.importFile(ctx, file)
		if err != nil {
			return result, fmt.Errorf("import %s: %w", file, err)
		}
		switch outcome {
		case outcomeCreated:
			result.Created++
		case outcomeUpdated:
			result.Updated++
		case outcomeSkipped:
			result.Skipped++
		}
	}

	i.logger.Info("markdown import finished",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)
	return result, nil
}

type importOutcome int

const (
	outcomeCreated importOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

func (i *Importer) discover() ([]string, error) {
	var files []string
	err := fs.WalkDir(i.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(path.Ext(p), ".md") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown importer walk: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func (i *Importer) importFile(ctx context.Context, file string) (importOutcome, error) {
	source, err := fs.ReadFile(i.fsys, file)
	if err != nil {
		return outcomeSkipped, err
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return outcomeSkipped, err
	}

	if meta.Draft {
		i.logger.Debug("skipping draft", "file", file)
		return outcomeSkipped, nil
	}

	slug, err := i.resolveSlug(meta, file)
	if err != nil {
		return outcomeSkipped, err
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = titleFromFile(file)
	}

	markdown := string(body)

	existing, err := i.service.Get(ctx, slug)
	switch {
	case err == nil:
		if existing.Title == title && existing.Markdown == markdown {
			return outcomeSkipped, nil
		}
		_, err = i.service.Update(ctx, slug, posts.UpdatePostRequest{
			Slug:     slug,
			Title:    title,
			Markdown: markdown,
		})
		if err != nil {
			return outcomeSkipped, err
		}
		return outcomeUpdated, nil
	case isNotFound(err):
		_, err = i.service.Create(ctx, posts.CreatePostRequest{
			ID:       identity.PostUUID(slug),
			Slug:     slug,
			Title:    title,
			Markdown: markdown,
		})
		if err != nil {
			return outcomeSkipped, err
		}
		return outcomeCreated, nil
	default:
		return outcomeSkipped, err
	}
}

func (i *Importer) resolveSlug(meta FrontMatter, file string) (string, error) {
	candidate := strings.TrimSpace(meta.Slug)
	if candidate == "" {
		candidate = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	return posts.NormalizeSlug(candidate)
}

func titleFromFile(file string) string {
	base := strings.TrimSuffix(path.Base(file), path.Ext(file))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return strings.TrimSpace(base)
}

func isNotFound(err error) bool {
	var notFound *posts.NotFoundError
	return errors.As(err, &notFound)
}
