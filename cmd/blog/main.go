// Command blog runs the markdown blog: an HTTP server for reading and
// administering posts, plus a markdown directory importer.
//
// Usage:
//
//	blog serve
//	blog import -dir content
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-blog/internal/auth"
	"github.com/goliatone/go-blog/internal/commands"
	markdowncmd "github.com/goliatone/go-blog/internal/commands/markdown"
	"github.com/goliatone/go-blog/internal/config"
	bloghttp "github.com/goliatone/go-blog/internal/http"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/storage"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "blog:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	command := "serve"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return err
	}

	switch command {
	case "serve":
		return runServe(cfg, provider)
	case "import":
		return runImport(cfg, provider, args)
	default:
		return fmt.Errorf("unknown command %q (expected serve or import)", command)
	}
}

func runServe(cfg config.Config, provider logging.LoggerProvider) error {
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.Migrate(ctx, db); err != nil {
		return err
	}

	service := posts.NewService(
		posts.NewBunPostRepository(db),
		posts.WithLogger(logging.PostsLogger(provider)),
	)

	sessions, err := auth.NewSessionManager(auth.SessionConfig{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Secure: cfg.SecureCookies,
	}, auth.WithSessionLogger(logging.AuthLogger(provider)))
	if err != nil {
		return err
	}

	gate := auth.NewGate(sessions, cfg.AdminEmail, []byte(cfg.AdminPasswordHash))

	server, err := bloghttp.NewServer(
		bloghttp.WithPostService(service),
		bloghttp.WithGate(gate),
		bloghttp.WithSessions(sessions),
		bloghttp.WithLogger(logging.HTTPLogger(provider)),
	)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger := logging.ModuleLogger(provider, "")
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func runImport(cfg config.Config, provider logging.LoggerProvider, args []string) error {
	flags := flag.NewFlagSet("import", flag.ContinueOnError)
	dir := flags.String("dir", "content", "directory of markdown files to import")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.Migrate(ctx, db); err != nil {
		return err
	}

	service := posts.NewService(
		posts.NewBunPostRepository(db),
		posts.WithLogger(logging.PostsLogger(provider)),
	)

	handler := markdowncmd.NewImportHandler(service, commands.CommandLogger(provider, "markdown"))
	return handler.Execute(ctx, markdowncmd.ImportCommand{Dir: *dir})
}
