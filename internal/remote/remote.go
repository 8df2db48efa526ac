// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remote provides the optional external paper-search integration.
// The default backend is a stub that answers from the static catalog; the
// Hugging Face backend performs live HTTP requests and is only used when
// explicitly enabled in configuration.
package remote

import (
	"context"

	"github.com/pdiddy/research-assistant/internal/papers"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// Backend searches an external paper source for a query.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]types.Paper, error)
}

// StubBackend answers search queries from the static catalog without any
// network access.
type StubBackend struct{}

// Name returns the backend identifier.
func (StubBackend) Name() string { return "stub" }

// Search returns static catalog papers for the query. It never fails and
// never returns nil.
func (StubBackend) Search(_ context.Context, query string, limit int) ([]types.Paper, error) {
	results := papers.ForQuery(query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ForConfig returns the backend selected by cfg: the Hugging Face backend
// when the remote integration is enabled, the stub otherwise.
func ForConfig(cfg types.RemoteConfig) Backend {
	if cfg.Enabled {
		return NewHuggingFaceBackend(cfg)
	}
	return StubBackend{}
}
