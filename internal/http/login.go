package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-blog/internal/auth"
)

type loginData struct {
	Email      string
	RedirectTo string
	Error      string
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if user := s.gate.Resolve(r); user != nil && user.Admin {
		seeOther(w, r, adminListPath)
		return
	}

	s.render(w, http.StatusOK, "login.html", loginData{
		RedirectTo: sanitizeRedirect(r.URL.Query().Get("redirect_to"), adminListPath),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form payload", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	redirectTo := sanitizeRedirect(r.PostFormValue("redirect_to"), adminListPath)

	user, err := s.gate.Authenticate(email, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.render(w, http.StatusOK, "login.html", loginData{
				Email:      email,
				RedirectTo: redirectTo,
				Error:      "Invalid email or password",
			})
			return
		}
		s.respondError(w, r, err)
		return
	}

	if err := s.sessions.Issue(w, user.Email); err != nil {
		s.respondError(w, r, err)
		return
	}

	seeOther(w, r, redirectTo)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	seeOther(w, r, "/posts")
}
