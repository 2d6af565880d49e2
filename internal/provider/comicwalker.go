package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"manganovelsfeed/internal/dates"
	"manganovelsfeed/internal/document"
	"manganovelsfeed/internal/domain"
	"manganovelsfeed/internal/feed"
	"manganovelsfeed/internal/fetch"
)

// ComicWalker reads the comic-walker.com works API: one JSON endpoint
// carrying both the work metadata and its latest episode list.
type ComicWalker struct {
	client *fetch.Client
	logger *slog.Logger
	base   string
}

var _ Strategy = (*ComicWalker)(nil)

// NewComicWalker wires the upstream client.
func NewComicWalker(client *fetch.Client, logger *slog.Logger) *ComicWalker {
	return &ComicWalker{client: client, logger: logger, base: "https://comic-walker.com"}
}

// RSS fetches the work detail document and projects active episodes.
func (s *ComicWalker) RSS(ctx context.Context, id string) (domain.Outcome, error) {
	endpoint := fmt.Sprintf("%s/api/contents/details/work?workCode=%s", s.base, url.QueryEscape(id))
	raw, err := s.client.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("comic-walker work %s: %w", id, err)
	}

	data, err := document.JSON(raw)
	if err != nil {
		return nil, fmt.Errorf("comic-walker work %s: %w", id, err)
	}

	work, ok := data["work"].(map[string]any)
	if !ok {
		return nil, domain.Structuref("comic-walker.com", "work object missing for %s", id)
	}

	detailURL := fmt.Sprintf("https://comic-walker.com/detail/%s", url.PathEscape(id))
	builder := feed.NewBuilder(document.Str(work, "title"), detailURL, document.Str(work, "summary"))

	episodes, ok := document.DigSlice(data, "latestEpisodes", "result")
	if !ok {
		return nil, domain.Structuref("comic-walker.com", "latestEpisodes.result missing for %s", id)
	}

	for _, raw := range episodes {
		ep, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if active, _ := ep["isActive"].(bool); !active {
			continue
		}

		publishedAt, err := dates.Parse(document.Str(ep, "updateDate"))
		if err != nil {
			s.debug("skip episode without date", "work", id, "code", document.Str(ep, "code"))
			continue
		}

		link := fmt.Sprintf("%s/episodes/%s?episodeType=first", detailURL, url.PathEscape(document.Str(ep, "code")))
		builder.Add(domain.FeedItem{
			Title:       document.Str(ep, "title"),
			Link:        link,
			GUID:        link,
			PublishedAt: publishedAt,
		})
	}

	return domain.FeedOutcome{Feed: builder.Build()}, nil
}

func (s *ComicWalker) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
