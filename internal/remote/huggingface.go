// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// hfAPIBase is the Hugging Face paper search endpoint. Declared as a var
// so tests can substitute an httptest server.
var hfAPIBase = "https://huggingface.co/api/papers/search"

// HuggingFaceBackend queries the Hugging Face papers API.
type HuggingFaceBackend struct {
	Client *http.Client
	cfg    types.RemoteConfig
}

// NewHuggingFaceBackend returns a backend using cfg's timeout, user agent,
// retry budget, and optional API token.
func NewHuggingFaceBackend(cfg types.RemoteConfig) *HuggingFaceBackend {
	return &HuggingFaceBackend{
		Client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

// Name returns the backend identifier.
func (b *HuggingFaceBackend) Name() string { return "huggingface" }

// Search queries the papers API and returns results in provider order.
func (b *HuggingFaceBackend) Search(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	reqURL := fmt.Sprintf("%s?q=%s", hfAPIBase, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", b.cfg.UserAgent)
	if b.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.cfg.APIToken)
	}

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, b.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("papers API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("papers API returned HTTP %d", resp.StatusCode)
	}

	var entries []hfEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing papers API response: %w", err)
	}

	var results []types.Paper
	for _, e := range entries {
		p := types.Paper{
			Title:    strings.TrimSpace(e.Paper.Title),
			Abstract: strings.TrimSpace(e.Paper.Summary),
			Upvotes:  e.Paper.Upvotes,
		}
		if e.Paper.ID != "" {
			p.URL = "https://hf.co/papers/" + e.Paper.ID
		}
		for _, a := range e.Paper.Authors {
			if a.Name != "" {
				p.Authors = append(p.Authors, a.Name)
			}
		}
		if p.Title == "" {
			continue
		}
		results = append(results, p)
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results, nil
}

// Hugging Face papers API response structures.
type hfEntry struct {
	Paper hfPaper `json:"paper"`
}

type hfPaper struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Summary string     `json:"summary"`
	Upvotes int        `json:"upvotes"`
	Authors []hfAuthor `json:"authors"`
}

type hfAuthor struct {
	Name string `json:"name"`
}
