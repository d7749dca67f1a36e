package http

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/goliatone/go-blog/internal/auth"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
)

// Server wires the post service, renderer, and admin gate into the HTTP
// routes. All handlers share the post repository (via the service) as their
// only stateful dependency.
type Server struct {
	posts     posts.Service
	renderer  *markdown.Renderer
	gate      *auth.Gate
	sessions  *auth.SessionManager
	logger    logging.Logger
	templates *template.Template

	savePosts   *postscmd.SavePostHandler
	deletePosts *postscmd.DeletePostHandler
}

// Option mutates the server configuration.
type Option func(*Server)

// WithPostService wires the post service.
func WithPostService(service posts.Service) Option {
	return func(s *Server) {
		s.posts = service
	}
}

// WithRenderer wires the markdown renderer. Defaults to GFM with raw HTML
// passthrough.
func WithRenderer(renderer *markdown.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithGate wires the admin gate.
func WithGate(gate *auth.Gate) Option {
	return func(s *Server) {
		s.gate = gate
	}
}

// WithSessions wires the session manager used by login/logout.
func WithSessions(sessions *auth.SessionManager) Option {
	return func(s *Server) {
		s.sessions = sessions
	}
}

// WithLogger injects the HTTP logger. Defaults to a no-op logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer constructs the HTTP server from the supplied options.
func NewServer(opts ...Option) (*Server, error) {
	s := &Server{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.posts == nil {
		return nil, fmt.Errorf("http: post service is required")
	}
	if s.gate == nil || s.sessions == nil {
		return nil, fmt.Errorf("http: gate and session manager are required")
	}
	if s.renderer == nil {
		s.renderer = markdown.NewRenderer(markdown.RenderOptions{})
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.savePosts = postscmd.NewSavePostHandler(s.posts, s.logger)
	s.deletePosts = postscmd.NewDeletePostHandler(s.posts, s.logger)

	return s, nil
}

// Handler returns the route table. Literal segments win over wildcards, so
// /posts/admin is carved out of the /posts/{slug} space.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /posts", s.handlePostList)
	mux.HandleFunc("GET /posts/{slug}", s.handlePostView)

	mux.HandleFunc("GET /posts/admin", s.handleAdminIndex)
	mux.HandleFunc("GET /posts/admin/{slug}", s.handleAdminForm)
	mux.HandleFunc("POST /posts/admin/{slug}", s.handleAdminSubmit)

	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)

	return mux
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/posts", http.StatusFound)
}
