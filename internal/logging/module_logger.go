package logging

import "context"

const (
	rootModule     = "blog"
	postsModule    = "blog.posts"
	httpModule     = "blog.http"
	authModule     = "blog.auth"
	markdownModule = "blog.markdown"
	storageModule  = "blog.storage"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider LoggerProvider, module string) Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PostsLogger returns the logger namespace reserved for the post service.
func PostsLogger(provider LoggerProvider) Logger {
	return ModuleLogger(provider, postsModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP surface.
func HTTPLogger(provider LoggerProvider) Logger {
	return ModuleLogger(provider, httpModule)
}

// AuthLogger returns the logger namespace reserved for session handling.
func AuthLogger(provider LoggerProvider) Logger {
	return ModuleLogger(provider, authModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown workflows.
func MarkdownLogger(provider LoggerProvider) Logger {
	return ModuleLogger(provider, markdownModule)
}

// StorageLogger returns the logger namespace reserved for the datastore lifecycle.
func StorageLogger(provider LoggerProvider) Logger {
	return ModuleLogger(provider, storageModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Trace(string, ...any)                 {}
func (noopLogger) Debug(string, ...any)                 {}
func (noopLogger) Info(string, ...any)                  {}
func (noopLogger) Warn(string, ...any)                  {}
func (noopLogger) Error(string, ...any)                 {}
func (noopLogger) Fatal(string, ...any)                 {}
func (n noopLogger) WithContext(context.Context) Logger { return n }
