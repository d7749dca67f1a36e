package postscmd_test

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
)

func TestSavePostCommandValidateCollectsAllErrors(t *testing.T) {
	msg := postscmd.SavePostCommand{RouteSlug: postscmd.NewRouteSlug}

	err := msg.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors got %T", err)
	}

	want := map[string]string{
		"title":    "Title is required",
		"slug":     "Slug is required",
		"markdown": "Markdown is required",
	}
	for field, message := range want {
		ferr, ok := errs[field]
		if !ok {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
		if ferr.Error() != message {
			t.Fatalf("expected %q for %s got %q", message, field, ferr.Error())
		}
	}
}

func TestSavePostCommandValidateAccepts(t *testing.T) {
	msg := postscmd.SavePostCommand{
		RouteSlug: "existing",
		Title:     "Title",
		Slug:      "slug",
		Markdown:  "body",
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestSavePostCommandIsCreate(t *testing.T) {
	if !(postscmd.SavePostCommand{RouteSlug: postscmd.NewRouteSlug}).IsCreate() {
		t.Fatal("expected route slug new to select create")
	}
	if (postscmd.SavePostCommand{RouteSlug: "existing"}).IsCreate() {
		t.Fatal("expected non-new route slug to select update")
	}
}

func TestSavePostHandlerCreates(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	handler := postscmd.NewSavePostHandler(svc, logging.NoOp())

	err := handler.Execute(context.Background(), postscmd.SavePostCommand{
		RouteSlug: postscmd.NewRouteSlug,
		Title:     "Fresh",
		Slug:      "fresh",
		Markdown:  "# Fresh",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	post, err := svc.Get(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("get created post: %v", err)
	}
	if post.Title != "Fresh" {
		t.Fatalf("unexpected post %+v", post)
	}
}

func TestSavePostHandlerUpdatesByRouteSlug(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "before", Title: "Before", Markdown: "before",
	}); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	handler := postscmd.NewSavePostHandler(svc, logging.NoOp())
	err := handler.Execute(context.Background(), postscmd.SavePostCommand{
		RouteSlug: "before",
		Title:     "After",
		Slug:      "after",
		Markdown:  "after",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	post, err := svc.Get(context.Background(), "after")
	if err != nil {
		t.Fatalf("get updated post: %v", err)
	}
	if post.Title != "After" {
		t.Fatalf("unexpected post %+v", post)
	}
}

func TestSavePostHandlerSurfacesConflict(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "taken", Title: "Taken", Markdown: "taken",
	}); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	handler := postscmd.NewSavePostHandler(svc, logging.NoOp())
	err := handler.Execute(context.Background(), postscmd.SavePostCommand{
		RouteSlug: postscmd.NewRouteSlug,
		Title:     "Other",
		Slug:      "taken",
		Markdown:  "other",
	})

	var conflict *posts.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError got %v", err)
	}
}

func TestDeletePostHandler(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	if _, err := svc.Create(context.Background(), posts.CreatePostRequest{
		Slug: "bye", Title: "Bye", Markdown: "bye",
	}); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	handler := postscmd.NewDeletePostHandler(svc, logging.NoOp())
	if err := handler.Execute(context.Background(), postscmd.DeletePostCommand{Slug: "bye"}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var notFound *posts.NotFoundError
	if _, err := svc.Get(context.Background(), "bye"); !errors.As(err, &notFound) {
		t.Fatalf("expected post to be gone, got %v", err)
	}

	if err := handler.Execute(context.Background(), postscmd.DeletePostCommand{Slug: "bye"}); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for missing post, got %v", err)
	}
}
