// Package api is the HTTP client for the remote article/session service.
// Articles embed the encoded flow graph under decision_tree; the session
// endpoints expose the agent's pinned position and the message history the
// polling layer mirrors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
)

// Client talks to the remote support backend. It implements
// ports.ArticleStore and ports.SessionFeed.
type Client struct {
	base     *url.URL
	http     *http.Client
	adminKey string
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithAdminKey sets the operator credential sent on authoring requests.
func WithAdminKey(key string) Option {
	return func(c *Client) { c.adminKey = key }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c := &Client{
		base: base,
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Create stores a new article and returns the id the backend assigned.
func (c *Client) Create(ctx context.Context, a ports.Article) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/articles", articleBody(a), &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Update replaces an existing article's content.
func (c *Client) Update(ctx context.Context, a ports.Article) error {
	return c.do(ctx, http.MethodPut, "/articles/"+url.PathEscape(a.ID), articleBody(a), nil)
}

// Get retrieves one article.
func (c *Client) Get(ctx context.Context, id string) (ports.Article, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, &raw); err != nil {
		return ports.Article{}, err
	}
	return decodeArticle(raw)
}

// List retrieves all articles.
func (c *Client) List(ctx context.Context) ([]ports.Article, error) {
	var raws []map[string]any
	if err := c.do(ctx, http.MethodGet, "/articles", nil, &raws); err != nil {
		return nil, err
	}
	out := make([]ports.Article, 0, len(raws))
	for _, raw := range raws {
		a, err := decodeArticle(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Position reports the agent's pinned flow position for a session.
func (c *Client) Position(ctx context.Context, sessionID string) (ports.Pinned, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID)+"/position", nil, &raw); err != nil {
		return ports.Pinned{}, err
	}
	var p ports.Pinned
	if err := mapstructure.Decode(raw, &p); err != nil {
		return ports.Pinned{}, fmt.Errorf("failed to decode position payload: %w", err)
	}
	return p, nil
}

// Messages returns a session's history, oldest first.
func (c *Client) Messages(ctx context.Context, sessionID string) ([]ports.Message, error) {
	var msgs []ports.Message
	if err := c.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID)+"/messages", nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func articleBody(a ports.Article) map[string]any {
	body := map[string]any{
		"title":   a.Title,
		"summary": a.Summary,
	}
	if len(a.DecisionTree) > 0 {
		body["decision_tree"] = json.RawMessage(a.DecisionTree)
	}
	return body
}

// decodeArticle maps the backend's loosely-typed article payload into the
// port type. Scalar fields go through mapstructure; decision_tree is kept as
// raw JSON for pkg/wire to decode, never coerced here.
func decodeArticle(raw map[string]any) (ports.Article, error) {
	var a ports.Article
	if err := mapstructure.Decode(raw, &a); err != nil {
		return ports.Article{}, fmt.Errorf("failed to decode article payload: %w", err)
	}
	if tree, ok := raw["decision_tree"]; ok && tree != nil {
		encoded, err := json.Marshal(tree)
		if err != nil {
			return ports.Article{}, fmt.Errorf("failed to re-encode decision_tree: %w", err)
		}
		a.DecisionTree = encoded
	}
	return a, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.adminKey != "" {
		req.Header.Set("X-Admin-Key", c.adminKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return flow.ErrArticleNotFound
	case resp.StatusCode >= 400:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
