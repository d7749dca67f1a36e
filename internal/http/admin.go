package http

import (
	"errors"
	"net/http"
	"strings"

	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/posts"
)

const adminListPath = "/posts/admin"

type adminIndexData struct {
	Posts []posts.Summary
}

type adminFormData struct {
	IsNew     bool
	RouteSlug string
	Title     string
	Slug      string
	Markdown  string
	Errors    map[string]string
}

// handleAdminIndex lists every post with edit links plus the create
// affordance. Gated.
func (s *Server) handleAdminIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := s.gate.RequireAdmin(r); err != nil {
		s.respondError(w, r, err)
		return
	}

	summaries, err := s.posts.ListSummaries(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "admin.html", adminIndexData{Posts: summaries})
}

// handleAdminForm serves the post form: empty for the literal slug "new",
// pre-populated for an existing post, not-found otherwise. Gated.
func (s *Server) handleAdminForm(w http.ResponseWriter, r *http.Request) {
	if _, err := s.gate.RequireAdmin(r); err != nil {
		s.respondError(w, r, err)
		return
	}

	routeSlug := strings.TrimSpace(r.PathValue("slug"))
	if routeSlug == "" {
		http.Error(w, "slug is required", http.StatusBadRequest)
		return
	}

	if routeSlug == postscmd.NewRouteSlug {
		s.render(w, http.StatusOK, "admin_form.html", adminFormData{
			IsNew:     true,
			RouteSlug: routeSlug,
		})
		return
	}

	post, err := s.posts.Get(r.Context(), routeSlug)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "admin_form.html", adminFormData{
		RouteSlug: routeSlug,
		Title:     post.Title,
		Slug:      post.Slug,
		Markdown:  post.Markdown,
	})
}

// handleAdminSubmit dispatches the form's intent: delete short-circuits
// before validation, create/update validate every field and re-render the
// form with the full error map on failure. Success always lands on the admin
// list. Gated.
func (s *Server) handleAdminSubmit(w http.ResponseWriter, r *http.Request) {
	if _, err := s.gate.RequireAdmin(r); err != nil {
		s.respondError(w, r, err)
		return
	}

	routeSlug := strings.TrimSpace(r.PathValue("slug"))
	if routeSlug == "" {
		http.Error(w, "slug is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form payload", http.StatusBadRequest)
		return
	}

	if r.PostFormValue("intent") == "delete" {
		if err := s.deletePosts.Execute(r.Context(), postscmd.DeletePostCommand{Slug: routeSlug}); err != nil {
			s.respondError(w, r, err)
			return
		}
		seeOther(w, r, adminListPath)
		return
	}

	msg := postscmd.SavePostCommand{
		RouteSlug: routeSlug,
		Title:     strings.TrimSpace(r.PostFormValue("title")),
		Slug:      strings.TrimSpace(r.PostFormValue("slug")),
		Markdown:  r.PostFormValue("markdown"),
	}

	form := adminFormData{
		IsNew:     msg.IsCreate(),
		RouteSlug: routeSlug,
		Title:     msg.Title,
		Slug:      msg.Slug,
		Markdown:  msg.Markdown,
	}

	if err := msg.Validate(); err != nil {
		form.Errors = fieldErrors(err)
		s.render(w, http.StatusOK, "admin_form.html", form)
		return
	}

	if err := s.savePosts.Execute(r.Context(), msg); err != nil {
		var conflict *posts.ConflictError
		switch {
		case errors.As(err, &conflict):
			form.Errors = map[string]string{"slug": "Slug is already in use"}
			s.render(w, http.StatusOK, "admin_form.html", form)
		case errors.Is(err, posts.ErrSlugInvalid):
			form.Errors = map[string]string{"slug": "Slug may only contain letters, numbers, and dashes"}
			s.render(w, http.StatusOK, "admin_form.html", form)
		default:
			s.respondError(w, r, err)
		}
		return
	}

	seeOther(w, r, adminListPath)
}
