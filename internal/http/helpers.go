package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/auth"
	"github.com/goliatone/go-blog/internal/posts"
)

type notFoundData struct {
	Slug string
}

// respondError maps expected failures to their dedicated responses and logs
// everything else as a generic server failure.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *posts.NotFoundError
	switch {
	case errors.As(err, &notFound):
		s.renderNotFound(w, notFound.Key)
	case errors.Is(err, auth.ErrUnauthorized):
		s.redirectToLogin(w, r)
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		s.render(w, http.StatusInternalServerError, "error.html", nil)
	}
}

// renderNotFound serves the dedicated post-not-found page, distinct from the
// generic failure page so callers can tell the two apart.
func (s *Server) renderNotFound(w http.ResponseWriter, slug string) {
	s.render(w, http.StatusNotFound, "not_found.html", notFoundData{Slug: slug})
}

func (s *Server) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := "/login"
	if r.URL.Path != "" {
		target += "?redirect_to=" + url.QueryEscape(r.URL.Path)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func seeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// fieldErrors flattens an ozzo validation error map into template-friendly
// field messages.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return out
	}
	for field, ferr := range errs {
		if ferr != nil {
			out[field] = ferr.Error()
		}
	}
	return out
}

// sanitizeRedirect keeps post-login redirects on-site.
func sanitizeRedirect(target, fallback string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	return target
}
