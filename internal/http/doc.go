// Package http serves the blog's server-rendered surface: the public post
// pages and the admin-gated mutation forms.
package http
