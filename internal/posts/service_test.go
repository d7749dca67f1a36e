package posts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-blog/internal/posts"
	"github.com/google/uuid"
)

func newTestService(opts ...posts.ServiceOption) posts.Service {
	return posts.NewService(posts.NewMemoryPostRepository(), opts...)
}

func TestServiceCreateAndGet(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug:     "my-first-post",
		Title:    "My First Post",
		Markdown: "# Hello",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected matching timestamps, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := svc.Get(context.Background(), "my-first-post")
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.Title != "My First Post" || got.Markdown != "# Hello" {
		t.Fatalf("unexpected post %+v", got)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name string
		req  posts.CreatePostRequest
		want error
	}{
		{"missing slug", posts.CreatePostRequest{Title: "T", Markdown: "m"}, posts.ErrSlugRequired},
		{"invalid slug", posts.CreatePostRequest{Slug: "Not A Slug!", Title: "T", Markdown: "m"}, posts.ErrSlugInvalid},
		{"missing title", posts.CreatePostRequest{Slug: "t", Markdown: "m"}, posts.ErrTitleRequired},
		{"missing markdown", posts.CreatePostRequest{Slug: "t", Title: "T", Markdown: "   "}, posts.ErrMarkdownRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, err)
			}
		})
	}
}

func TestServiceCreateDuplicateSlug(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "taken", Title: "One", Markdown: "one",
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	_, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "taken", Title: "Two", Markdown: "two",
	})
	var conflict *posts.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError got %v", err)
	}
	if conflict.Slug != "taken" {
		t.Fatalf("expected slug taken got %s", conflict.Slug)
	}
	if !errors.Is(err, posts.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists got %v", err)
	}
}

func TestServiceGetMissing(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "nope")
	var notFound *posts.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError got %v", err)
	}
	if notFound.Key != "nope" {
		t.Fatalf("expected key nope got %s", notFound.Key)
	}
}

func TestServiceUpdateRewritesSlug(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := start
	svc := newTestService(posts.WithClock(func() time.Time { return now }))

	if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "old-slug", Title: "Old", Markdown: "body",
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	now = start.Add(time.Hour)
	updated, err := svc.Update(context.Background(), "old-slug", posts.UpdatePostRequest{
		Slug:     "new-slug",
		Title:    "New",
		Markdown: "body v2",
	})
	if err != nil {
		t.Fatalf("update post: %v", err)
	}
	if updated.Slug != "new-slug" || updated.Title != "New" {
		t.Fatalf("unexpected post %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("expected updated timestamp to advance, got %v / %v", updated.CreatedAt, updated.UpdatedAt)
	}

	if _, err := svc.Get(context.Background(), "new-slug"); err != nil {
		t.Fatalf("get by new slug: %v", err)
	}

	var notFound *posts.NotFoundError
	if _, err := svc.Get(context.Background(), "old-slug"); !errors.As(err, &notFound) {
		t.Fatalf("expected old slug to be gone, got %v", err)
	}
}

func TestServiceUpdateSlugConflict(t *testing.T) {
	svc := newTestService()

	for _, slug := range []string{"first", "second"} {
		if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
			Slug: slug, Title: slug, Markdown: slug,
		}); err != nil {
			t.Fatalf("create %s: %v", slug, err)
		}
	}

	_, err := svc.Update(context.Background(), "second", posts.UpdatePostRequest{
		Slug: "first", Title: "Second", Markdown: "second",
	})
	var conflict *posts.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError got %v", err)
	}
}

func TestServiceUpdateKeepingSlug(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "stable", Title: "Before", Markdown: "before",
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	updated, err := svc.Update(context.Background(), "stable", posts.UpdatePostRequest{
		Slug: "stable", Title: "After", Markdown: "after",
	})
	if err != nil {
		t.Fatalf("update post: %v", err)
	}
	if updated.Title != "After" || updated.Markdown != "after" {
		t.Fatalf("unexpected post %+v", updated)
	}
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "doomed", Title: "Doomed", Markdown: "bye",
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := svc.Delete(context.Background(), "doomed"); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	var notFound *posts.NotFoundError
	if _, err := svc.Get(context.Background(), "doomed"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError got %v", err)
	}

	if err := svc.Delete(context.Background(), "doomed"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError on double delete got %v", err)
	}
}

func TestServiceListSummariesOrder(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := start
	svc := newTestService(posts.WithClock(func() time.Time { return now }))

	for i, slug := range []string{"alpha", "beta", "gamma"} {
		now = start.Add(time.Duration(i) * time.Minute)
		if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
			Slug: slug, Title: slug, Markdown: slug,
		}); err != nil {
			t.Fatalf("create %s: %v", slug, err)
		}
	}

	summaries, err := svc.ListSummaries(context.Background())
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries got %d", len(summaries))
	}
	for i, want := range []string{"alpha", "beta", "gamma"} {
		if summaries[i].Slug != want {
			t.Fatalf("expected %s at %d got %s", want, i, summaries[i].Slug)
		}
	}
}
