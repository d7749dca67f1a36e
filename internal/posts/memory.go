package posts

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryPostRepository is an in-memory implementation for scaffolding and tests.
type MemoryPostRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*Post
	slugIndex map[string]uuid.UUID
}

// NewMemoryPostRepository creates an empty in-memory post repository.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		records:   make(map[uuid.UUID]*Post),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied post, enforcing slug uniqueness the way the
// database unique constraint does.
func (m *MemoryPostRepository) Create(_ context.Context, record *Post) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slugIndex[record.Slug]; ok {
		return nil, &ConflictError{Slug: record.Slug}
	}

	copied := clonePost(record)
	m.records[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return clonePost(copied), nil
}

// GetBySlug retrieves a post by slug, returning NotFoundError when absent.
func (m *MemoryPostRepository) GetBySlug(_ context.Context, slug string) (*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: slug}
	}
	return clonePost(m.records[id]), nil
}

// List returns all posts in insertion order.
func (m *MemoryPostRepository) List(_ context.Context) ([]*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Post, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, clonePost(rec))
	}
	sortPosts(out)
	return out, nil
}

// ListSummaries projects slug+title pairs in insertion order.
func (m *MemoryPostRepository) ListSummaries(ctx context.Context) ([]Summary, error) {
	records, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, Summary{Slug: rec.Slug, Title: rec.Title})
	}
	return summaries, nil
}

// Update overwrites the stored record, reindexing the slug when it changed.
func (m *MemoryPostRepository) Update(_ context.Context, record *Post) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: record.ID.String()}
	}

	if existing.Slug != record.Slug {
		if other, taken := m.slugIndex[record.Slug]; taken && other != record.ID {
			return nil, &ConflictError{Slug: record.Slug}
		}
		delete(m.slugIndex, existing.Slug)
		m.slugIndex[record.Slug] = record.ID
	}

	copied := clonePost(record)
	m.records[copied.ID] = copied
	return clonePost(copied), nil
}

// Delete removes the record by internal ID.
func (m *MemoryPostRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[id]
	if !ok {
		return &NotFoundError{Resource: "post", Key: id.String()}
	}
	delete(m.slugIndex, existing.Slug)
	delete(m.records, id)
	return nil
}

func clonePost(src *Post) *Post {
	if src == nil {
		return nil
	}
	copied := *src
	return &copied
}

func sortPosts(records []*Post) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].Slug < records[j].Slug
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}
