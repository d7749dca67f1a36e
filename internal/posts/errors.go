package posts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSlugRequired     = errors.New("posts: slug is required")
	ErrSlugInvalid      = errors.New("posts: slug contains invalid characters")
	ErrSlugExists       = errors.New("posts: slug already exists")
	ErrTitleRequired    = errors.New("posts: title is required")
	ErrMarkdownRequired = errors.New("posts: markdown is required")
)

// NotFoundError reports a lookup miss for a post. Handlers branch on it to
// render the dedicated not-found view instead of a generic failure page.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "posts: not found"
	}
	resource := strings.TrimSpace(e.Resource)
	if resource == "" {
		resource = "post"
	}
	if key := strings.TrimSpace(e.Key); key != "" {
		return fmt.Sprintf("posts: %s not found: %s", resource, key)
	}
	return fmt.Sprintf("posts: %s not found", resource)
}

// ConflictError reports a slug collision on create or on an update that
// rewrites the slug to one already taken.
type ConflictError struct {
	Slug string
}

func (e *ConflictError) Error() string {
	if e == nil {
		return ErrSlugExists.Error()
	}
	if slug := strings.TrimSpace(e.Slug); slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrSlugExists.Error(), slug)
	}
	return ErrSlugExists.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrSlugExists
}
