package posts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/google/uuid"
)

// Service exposes the post content use-cases.
type Service interface {
	ListSummaries(ctx context.Context) ([]Summary, error)
	List(ctx context.Context) ([]*Post, error)
	Get(ctx context.Context, slug string) (*Post, error)
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)
	Update(ctx context.Context, oldSlug string, req UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, slug string) error
}

// Repository abstracts storage operations for post entities.
type Repository interface {
	Create(ctx context.Context, record *Post) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	ListSummaries(ctx context.Context) ([]Summary, error)
	Update(ctx context.Context, record *Post) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreatePostRequest captures the information required to create a post. ID is
// optional; the markdown importer supplies deterministic IDs so re-imports
// stay idempotent.
type CreatePostRequest struct {
	ID       uuid.UUID
	Slug     string
	Title    string
	Markdown string
}

// UpdatePostRequest overwrites every content field, including the slug itself.
type UpdatePostRequest struct {
	Slug     string
	Title    string
	Markdown string
}

type service struct {
	repo   Repository
	logger logging.Logger
	now    func() time.Time
}

// ServiceOption mutates the service configuration.
type ServiceOption func(*service)

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger logging.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService builds the post service on top of the supplied repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	svc := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) ListSummaries(ctx context.Context) ([]Summary, error) {
	return s.repo.ListSummaries(ctx)
}

func (s *service) List(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, slug string) (*Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	slug := strings.TrimSpace(req.Slug)
	title := strings.TrimSpace(req.Title)

	if err := validateFields(slug, title, req.Markdown); err != nil {
		return nil, err
	}

	// Read-before-write keeps duplicate slugs out of the common path; the
	// unique constraint remains the safety net under concurrent creates.
	if err := s.ensureSlugFree(ctx, slug); err != nil {
		return nil, err
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	now := s.now().UTC()
	record := &Post{
		ID:        id,
		Slug:      slug,
		Title:     title,
		Markdown:  req.Markdown,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created", "slug", created.Slug)
	return created, nil
}

func (s *service) Update(ctx context.Context, oldSlug string, req UpdatePostRequest) (*Post, error) {
	oldSlug = strings.TrimSpace(oldSlug)
	if oldSlug == "" {
		return nil, ErrSlugRequired
	}

	slug := strings.TrimSpace(req.Slug)
	title := strings.TrimSpace(req.Title)

	if err := validateFields(slug, title, req.Markdown); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetBySlug(ctx, oldSlug)
	if err != nil {
		return nil, err
	}

	// The record is keyed by an internal UUID, so a slug rewrite is a plain
	// column update on the same row rather than a key mutation.
	if slug != existing.Slug {
		if err := s.ensureSlugFree(ctx, slug); err != nil {
			return nil, err
		}
	}

	existing.Slug = slug
	existing.Title = title
	existing.Markdown = req.Markdown
	existing.UpdatedAt = s.now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated", "slug", updated.Slug, "previous_slug", oldSlug)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ErrSlugRequired
	}

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}

	s.logger.Info("post deleted", "slug", slug)
	return nil
}

func (s *service) ensureSlugFree(ctx context.Context, slug string) error {
	_, err := s.repo.GetBySlug(ctx, slug)
	if err == nil {
		return &ConflictError{Slug: slug}
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func validateFields(slug, title, markdown string) error {
	if slug == "" {
		return ErrSlugRequired
	}
	if !IsValidSlug(slug) {
		return ErrSlugInvalid
	}
	if title == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(markdown) == "" {
		return ErrMarkdownRequired
	}
	return nil
}
