// Package http exposes the flow core over JSON HTTP: validation, preview
// stepping, mermaid export, and a development article store for clients to
// save and load authored flows against.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/logging"
	presentation "github.com/BristonLowell/vinnies-brain-app-sub000/internal/presentation/graph"
	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/runtime"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/observability"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/wire"
)

// Server routes flow-core operations over HTTP.
type Server struct {
	articles ports.ArticleStore
	variant  flow.Variant
	adminKey string
	logger   *slog.Logger
	steps    *observability.StepMetrics
}

// Option configures the server.
type Option func(*Server)

// WithAdminKey requires the given key (header X-Admin-Key) on mutating
// article routes. Empty means open, for local development.
func WithAdminKey(key string) Option {
	return func(s *Server) { s.adminKey = key }
}

// WithLogger attaches a request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewHandler builds the HTTP handler.
func NewHandler(articles ports.ArticleStore, variant flow.Variant, reg *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{articles: articles, variant: variant, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if reg != nil {
		s.steps = observability.NewStepMetrics(reg)
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Post("/flows/validate", s.validateFlow)
	r.Post("/flows/step", s.stepFlow)
	r.Post("/flows/mermaid", s.mermaid)

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", s.listArticles)
		r.Get("/{id}", s.getArticle)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdminKey)
			r.Post("/", s.createArticle)
			r.Put("/{id}", s.updateArticle)
		})
	})

	return r
}

type validateRequest struct {
	DecisionTree json.RawMessage `json:"decision_tree"`
}

type validateResponse struct {
	Valid     bool             `json:"valid"`
	Violation *violationWire   `json:"violation,omitempty"`
	Decode    *decodeErrorWire `json:"decode_error,omitempty"`
}

type violationWire struct {
	Kind   string `json:"kind"`
	NodeID string `json:"node_id,omitempty"`
	Option *int   `json:"option,omitempty"`
}

type decodeErrorWire struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
	Value  string `json:"value,omitempty"`
}

func (s *Server) validateFlow(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, err := wire.Decode(req.DecisionTree)
	if err != nil {
		s.writeJSON(w, http.StatusOK, validateResponse{Decode: decodeWire(err)})
		return
	}
	if v := flow.Validate(g, s.variant); v != nil {
		s.writeJSON(w, http.StatusOK, validateResponse{Violation: violationToWire(v)})
		return
	}
	s.writeJSON(w, http.StatusOK, validateResponse{Valid: true})
}

type stepRequest struct {
	DecisionTree json.RawMessage `json:"decision_tree"`
	NodeID       string          `json:"node_id"`
	Choice       string          `json:"choice"`
}

type stepResponse struct {
	NodeID  string `json:"node_id,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Title   string `json:"title,omitempty"`
	Body    string `json:"body,omitempty"`
}

func (s *Server) stepFlow(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, err := wire.Decode(req.DecisionTree)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	engine := runtime.New(g, s.variant, runtime.WithLogger(s.logger))
	state := engine.Restart()
	if req.NodeID != "" {
		state = flow.AtNode(req.NodeID)
	}
	if req.Choice != "" {
		state = engine.Step(state, req.Choice)
	}

	resp := stepResponse{}
	if state.Terminal() {
		resp.Outcome = string(state.Outcome)
		if s.steps != nil {
			s.steps.Steps.WithLabelValues(string(state.Outcome)).Inc()
		}
	} else {
		if s.steps != nil {
			s.steps.Steps.WithLabelValues("node").Inc()
		}
		resp.NodeID = state.NodeID
		if n := g.Node(state.NodeID); n != nil {
			resp.Title = n.Title
			resp.Body = n.Body
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) mermaid(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	g, err := wire.Decode(req.DecisionTree)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(presentation.GenerateMermaid(g, nil)))
}

func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.articles.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, articles)
}

func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	article, err := s.articles.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, flow.ErrArticleNotFound) {
		http.Error(w, "article not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, article)
}

func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	article, ok := s.decodeArticle(w, r)
	if !ok {
		return
	}
	id, err := s.articles.Create(r.Context(), article)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) updateArticle(w http.ResponseWriter, r *http.Request) {
	article, ok := s.decodeArticle(w, r)
	if !ok {
		return
	}
	article.ID = chi.URLParam(r, "id")
	err := s.articles.Update(r.Context(), article)
	if errors.Is(err, flow.ErrArticleNotFound) {
		http.Error(w, "article not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeArticle parses the body and rejects payloads whose embedded
// decision_tree does not decode. Saving is where structural errors block;
// editing never does.
func (s *Server) decodeArticle(w http.ResponseWriter, r *http.Request) (ports.Article, bool) {
	var article ports.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return ports.Article{}, false
	}
	if len(article.DecisionTree) > 0 {
		if _, err := wire.Decode(article.DecisionTree); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return ports.Article{}, false
		}
	}
	return article, true
}

func (s *Server) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.adminKey != "" && r.Header.Get("X-Admin-Key") != s.adminKey {
			http.Error(w, "admin key required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func violationToWire(v *flow.Violation) *violationWire {
	out := &violationWire{Kind: string(v.Kind), NodeID: v.NodeID}
	if v.Option >= 0 {
		opt := v.Option
		out.Option = &opt
	}
	return out
}

func decodeWire(err error) *decodeErrorWire {
	var de *wire.DecodeError
	if errors.As(err, &de) {
		return &decodeErrorWire{Field: de.Field, Reason: string(de.Reason), Value: de.Value}
	}
	return &decodeErrorWire{Reason: err.Error()}
}
