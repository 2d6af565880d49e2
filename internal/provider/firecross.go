package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"golang.org/x/sync/errgroup"

	"manganovelsfeed/internal/dates"
	"manganovelsfeed/internal/document"
	"manganovelsfeed/internal/domain"
	"manganovelsfeed/internal/feed"
	"manganovelsfeed/internal/fetch"
)

// FireCross reads the firecross.jp novel API. The source splits a work
// across two endpoints, one for metadata and one for the chapter list, so
// both calls run concurrently and join before the feed is built.
type FireCross struct {
	client *fetch.Client
	logger *slog.Logger
	base   string
}

var _ Strategy = (*FireCross)(nil)

// NewFireCross wires the upstream client.
func NewFireCross(client *fetch.Client, logger *slog.Logger) *FireCross {
	return &FireCross{client: client, logger: logger, base: "https://firecross.jp"}
}

// RSS fetches novel info and contents in parallel and projects published
// chapters into a feed.
func (s *FireCross) RSS(ctx context.Context, id string) (domain.Outcome, error) {
	body, err := json.Marshal(map[string]string{"novel_id": id})
	if err != nil {
		return nil, fmt.Errorf("firecross novel %s: %w", id, err)
	}

	var infoRaw, contentsRaw []byte
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		infoRaw, err = s.client.Post(groupCtx, s.base+"/api/ajax/novel_info", body)
		return err
	})
	group.Go(func() error {
		var err error
		contentsRaw, err = s.client.Post(groupCtx, s.base+"/api/ajax/novel_contents", body)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("firecross novel %s: %w", id, err)
	}

	info, err := document.JSON(infoRaw)
	if err != nil {
		return nil, fmt.Errorf("firecross novel %s info: %w", id, err)
	}
	contents, err := document.JSON(contentsRaw)
	if err != nil {
		return nil, fmt.Errorf("firecross novel %s contents: %w", id, err)
	}

	novelURL := fmt.Sprintf("%s/novels/%s", s.base, url.PathEscape(id))
	builder := feed.NewBuilder(document.Str(info, "name"), novelURL, document.Str(info, "synopsis"))

	entries, ok := document.DigSlice(contents, "contents")
	if !ok {
		return nil, domain.Structuref("firecross.jp", "contents list missing for %s", id)
	}

	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		// status 0 flags private or not-yet-published chapters.
		if status, ok := document.Num(entry, "status"); !ok || status == 0 {
			continue
		}

		fragment := document.Str(entry, "public_time")
		if fragment == "" {
			fragment = document.Str(entry, "latest_public_time")
		}
		publishedAt, err := dates.Parse(fragment)
		if err != nil {
			s.debug("skip chapter without publish time", "novel", id, "chapter", document.Str(entry, "id"))
			continue
		}

		chapterID := document.Str(entry, "id")
		if chapterID == "" {
			if n, ok := document.Num(entry, "id"); ok {
				chapterID = fmt.Sprintf("%.0f", n)
			}
		}

		link := fmt.Sprintf("%s/chapters/%s", novelURL, url.PathEscape(chapterID))
		builder.Add(domain.FeedItem{
			Title:       document.Str(entry, "title"),
			Link:        link,
			GUID:        link,
			PublishedAt: publishedAt,
		})
	}

	return domain.FeedOutcome{Feed: builder.Build()}, nil
}

func (s *FireCross) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
