package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// Module names used when requesting loggers from a provider.
const (
	RootModule       = "sitecms"
	ContentModule    = "sitecms.content"
	PagesModule      = "sitecms.pages"
	NavigationModule = "sitecms.navigation"
	EnquiriesModule  = "sitecms.enquiries"
	MediaModule      = "sitecms.media"
	HTTPModule       = "sitecms.http"
	AuthModule       = "sitecms.auth"
	CommandsModule   = "sitecms.commands"
)

// ModuleLogger returns a logger scoped to module. A nil provider, or one that
// hands back nil, yields a no-op logger so callers never need nil checks.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = RootModule
	}

	var logger interfaces.Logger = noopLogger{}
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"module": module})
}

// WithFields attaches fields when the logger supports it and returns the
// logger unchanged otherwise.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fl, ok := logger.(interfaces.FieldsLogger); ok {
		return fl.WithFields(maps.Clone(fields))
	}
	return logger
}

// Ensure returns logger, or a no-op logger when it is nil.
func Ensure(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return noopLogger{}
	}
	return logger
}

// NoOp returns a logger that discards everything.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var (
	_ interfaces.Logger       = noopLogger{}
	_ interfaces.FieldsLogger = noopLogger{}
)

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger { return n }

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
