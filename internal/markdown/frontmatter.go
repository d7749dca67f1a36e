package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter carries the metadata block of an imported markdown file.
type FrontMatter struct {
	Title   string
	Slug    string
	Summary string
	Date    time.Time
	Draft   bool
	Extra   map[string]any
}

type frontMatterEnvelope struct {
	Title   string         `yaml:"title"`
	Slug    string         `yaml:"slug"`
	Summary string         `yaml:"summary"`
	Date    time.Time      `yaml:"date"`
	Draft   bool           `yaml:"draft"`
	Extra   map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. Files without a frontmatter block yield zero metadata and the
// source unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	extra := meta.Extra
	if extra == nil {
		extra = map[string]any{}
	}

	return FrontMatter{
		Title:   meta.Title,
		Slug:    meta.Slug,
		Summary: meta.Summary,
		Date:    meta.Date,
		Draft:   meta.Draft,
		Extra:   extra,
	}, body, nil
}
