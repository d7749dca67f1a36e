// Package markdown renders post bodies to HTML and imports markdown files
// with frontmatter into the post store.
package markdown
