package server

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"manganovelsfeed/internal/domain"
	"manganovelsfeed/internal/feed"
	"manganovelsfeed/internal/provider"
)

// Response is the assembled transport result for one outcome.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// Assemble turns an outcome into its transport representation. Feeds render
// as RSS 2.0 with a content-derived ETag, redirects carry a Location header,
// and gone content maps to 410 with an empty body.
func Assemble(outcome domain.Outcome, sMaxAge int) (Response, error) {
	switch o := outcome.(type) {
	case domain.FeedOutcome:
		body, err := feed.RenderRSS(o.Feed)
		if err != nil {
			return Response{}, err
		}
		digest := sha1.Sum(body)
		return Response{
			StatusCode: http.StatusOK,
			Body:       body,
			Headers: map[string]string{
				"Content-Type":  "application/rss+xml",
				"Cache-Control": fmt.Sprintf("public, s-maxage=%d", sMaxAge),
				"ETag":          `"` + hex.EncodeToString(digest[:]) + `"`,
			},
		}, nil
	case domain.RedirectOutcome:
		return Response{
			StatusCode: http.StatusFound,
			Headers:    map[string]string{"Location": o.Target},
		}, nil
	case domain.GoneOutcome:
		return Response{StatusCode: http.StatusGone, Headers: map[string]string{}}, nil
	default:
		return Response{}, fmt.Errorf("unhandled outcome %T", outcome)
	}
}

// Server exposes the feed engine over HTTP.
type Server struct {
	registry *provider.Registry
	logger   *slog.Logger
	sMaxAge  int
}

// New wires the registry into the HTTP boundary.
func New(registry *provider.Registry, logger *slog.Logger, sMaxAge int) *Server {
	return &Server{registry: registry, logger: logger, sMaxAge: sMaxAge}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/feeds/{contentProvider}/{contentId}", s.handleFeed)
	return r
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "contentProvider")
	id := chi.URLParam(r, "contentId")

	strategy, err := s.registry.Resolve(key)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			http.Error(w, "unknown provider", http.StatusNotFound)
			return
		}
		s.fail(w, key, id, err)
		return
	}

	outcome, err := strategy.RSS(r.Context(), id)
	if err != nil {
		s.fail(w, key, id, err)
		return
	}

	resp, err := Assemble(outcome, s.sMaxAge)
	if err != nil {
		s.fail(w, key, id, err)
		return
	}

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}

func (s *Server) fail(w http.ResponseWriter, key, id string, err error) {
	if s.logger != nil {
		s.logger.Error("feed request failed", "provider", key, "content_id", id, "error", err)
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
