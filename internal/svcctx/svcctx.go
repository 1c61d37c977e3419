// Package svcctx provides service context for dependency injection via
// context. This package is separate from server to avoid import cycles with
// endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/taoshops/shopdex/internal/cache"
	"github.com/taoshops/shopdex/internal/config"
	"github.com/taoshops/shopdex/internal/home"
	"github.com/taoshops/shopdex/internal/pipeline"
)

// Loader runs a document load. The pipeline implements it; tests substitute
// stubs.
type Loader interface {
	Load(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// Services holds the core services that flow through request context.
type Services struct {
	Loader    Loader
	Cache     cache.Store
	ConfigMgr *config.Manager
	Home      *home.Dir
	Logger    *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// LoaderFrom extracts the document loader from context.
func LoaderFrom(ctx context.Context) Loader {
	if s := ServicesFrom(ctx); s != nil {
		return s.Loader
	}
	return nil
}

// CacheFrom extracts the cache store from context.
func CacheFrom(ctx context.Context) cache.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Cache
	}
	return nil
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigMgr
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
