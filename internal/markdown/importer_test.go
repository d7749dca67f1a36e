package markdown_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
)

func importerFixture() fstest.MapFS {
	return fstest.MapFS{
		"my-first-post.md": &fstest.MapFile{
			Data: []byte("---\ntitle: My First Post\n---\n# Hello\n"),
		},
		"90s-mixtape.md": &fstest.MapFile{
			Data: []byte("---\ntitle: 90s Mixtape\nslug: 90s-mixtape\n---\n# 90s Mixtape\n"),
		},
		"drafts/wip.md": &fstest.MapFile{
			Data: []byte("---\ntitle: WIP\ndraft: true\n---\nnot ready\n"),
		},
		"notes.txt": &fstest.MapFile{
			Data: []byte("ignored, not markdown"),
		},
	}
}

func TestImporterCreatesPosts(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	imp := markdown.NewImporter(importerFixture(), svc)

	result, err := imp.Import(context.Background())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Created != 2 {
		t.Fatalf("expected 2 created got %d", result.Created)
	}
	if result.Skipped != 1 {
		t.Fatalf("expected 1 skipped draft got %d", result.Skipped)
	}

	post, err := svc.Get(context.Background(), "my-first-post")
	if err != nil {
		t.Fatalf("get imported post: %v", err)
	}
	if post.Title != "My First Post" {
		t.Fatalf("expected frontmatter title got %s", post.Title)
	}
	if post.Markdown != "# Hello\n" {
		t.Fatalf("expected body without frontmatter, got %q", post.Markdown)
	}

	if _, err := svc.Get(context.Background(), "90s-mixtape"); err != nil {
		t.Fatalf("get post by frontmatter slug: %v", err)
	}
}

func TestImporterIsIdempotent(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	fsys := importerFixture()

	if _, err := markdown.NewImporter(fsys, svc).Import(context.Background()); err != nil {
		t.Fatalf("first import: %v", err)
	}

	result, err := markdown.NewImporter(fsys, svc).Import(context.Background())
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if result.Created != 0 || result.Updated != 0 {
		t.Fatalf("expected unchanged files to be skipped, got %+v", result)
	}

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 posts after re-import got %d", len(records))
	}
}

func TestImporterUpdatesChangedContent(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	fsys := importerFixture()

	if _, err := markdown.NewImporter(fsys, svc).Import(context.Background()); err != nil {
		t.Fatalf("first import: %v", err)
	}

	fsys["my-first-post.md"] = &fstest.MapFile{
		Data: []byte("---\ntitle: My First Post\n---\n# Hello again\n"),
	}

	result, err := markdown.NewImporter(fsys, svc).Import(context.Background())
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if result.Updated != 1 {
		t.Fatalf("expected 1 updated got %+v", result)
	}

	post, err := svc.Get(context.Background(), "my-first-post")
	if err != nil {
		t.Fatalf("get updated post: %v", err)
	}
	if post.Markdown != "# Hello again\n" {
		t.Fatalf("expected updated body, got %q", post.Markdown)
	}
}

func TestImporterTitleFallsBackToFileName(t *testing.T) {
	svc := posts.NewService(posts.NewMemoryPostRepository())
	fsys := fstest.MapFS{
		"trail-riding.md": &fstest.MapFile{Data: []byte("# Trails\n")},
	}

	if _, err := markdown.NewImporter(fsys, svc).Import(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}

	post, err := svc.Get(context.Background(), "trail-riding")
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post.Title != "trail riding" {
		t.Fatalf("expected file-derived title got %q", post.Title)
	}
}
