package posts

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunPostRepository implements Repository against a bun-managed database.
type BunPostRepository struct {
	db   *bun.DB
	repo repository.Repository[*Post]
}

func NewBunPostRepository(db *bun.DB) *BunPostRepository {
	return &BunPostRepository{
		db:   db,
		repo: NewPostRepository(db),
	}
}

func (r *BunPostRepository) Create(ctx context.Context, record *Post) (*Post, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("post repository create: %w", err)
	}
	return created, nil
}

func (r *BunPostRepository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "post", slug)
	}
	return result, nil
}

// List returns full records in insertion order.
func (r *BunPostRepository) List(ctx context.Context) ([]*Post, error) {
	var records []*Post
	err := r.db.NewSelect().
		Model(&records).
		Order("created_at ASC", "slug ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("post repository list: %w", err)
	}
	return records, nil
}

// ListSummaries projects slug+title pairs in insertion order, skipping the
// markdown payload entirely.
func (r *BunPostRepository) ListSummaries(ctx context.Context) ([]Summary, error) {
	var summaries []Summary
	err := r.db.NewSelect().
		Model((*Post)(nil)).
		Column("slug", "title").
		Order("created_at ASC", "slug ASC").
		Scan(ctx, &summaries)
	if err != nil {
		return nil, fmt.Errorf("post repository list summaries: %w", err)
	}
	return summaries, nil
}

func (r *BunPostRepository) Update(ctx context.Context, record *Post) (*Post, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("post repository update: %w", err)
	}
	return updated, nil
}

func (r *BunPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Post{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
