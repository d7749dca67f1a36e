package http

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/goliatone/go-blog/internal/auth"
	"github.com/goliatone/go-blog/internal/posts"
)

type postListData struct {
	Posts []posts.Summary
	User  *auth.User
}

type postViewData struct {
	Title string
	Body  template.HTML
	User  *auth.User
}

// handlePostList serves the public index: slug+title summaries plus the admin
// affordance when the optional session user is the admin.
func (s *Server) handlePostList(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.posts.ListSummaries(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "posts.html", postListData{
		Posts: summaries,
		User:  s.gate.Resolve(r),
	})
}

// handlePostView renders one post's markdown body to HTML. A lookup miss
// serves the dedicated not-found page, never the generic failure page.
func (s *Server) handlePostView(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.PathValue("slug"))
	if slug == "" {
		http.Error(w, "slug is required", http.StatusBadRequest)
		return
	}

	post, err := s.posts.Get(r.Context(), slug)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body, err := s.renderer.Render([]byte(post.Markdown))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	// The renderer output is trusted verbatim: post bodies come from the
	// admin only.
	s.render(w, http.StatusOK, "post.html", postViewData{
		Title: post.Title,
		Body:  template.HTML(body),
		User:  s.gate.Resolve(r),
	})
}
