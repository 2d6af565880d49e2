package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"manganovelsfeed/internal/dates"
	"manganovelsfeed/internal/document"
	"manganovelsfeed/internal/domain"
	"manganovelsfeed/internal/feed"
	"manganovelsfeed/internal/fetch"
)

var publishingPeriodExpr = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// GanganOnline scrapes ganganonline.com title pages. The episode list lives
// in the Next.js data blob embedded in the page, not in the rendered markup.
type GanganOnline struct {
	client *fetch.Client
	logger *slog.Logger
	base   string
}

var _ Strategy = (*GanganOnline)(nil)

// NewGanganOnline wires the upstream client.
func NewGanganOnline(client *fetch.Client, logger *slog.Logger) *GanganOnline {
	return &GanganOnline{client: client, logger: logger, base: "https://www.ganganonline.com"}
}

// RSS fetches the title page, lifts the embedded JSON payload, and projects
// chapters that carry a dated publishing period.
func (s *GanganOnline) RSS(ctx context.Context, id string) (domain.Outcome, error) {
	indexURL := fmt.Sprintf("%s/title/%s", s.base, url.PathEscape(id))
	raw, err := s.client.Get(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("ganganonline title %s: %w", id, err)
	}

	doc, err := document.HTML(raw)
	if err != nil {
		return nil, fmt.Errorf("ganganonline title %s: %w", id, err)
	}

	blob := doc.Find("#__NEXT_DATA__").First()
	if blob.Length() == 0 {
		return nil, domain.Structuref("ganganonline.com", "__NEXT_DATA__ script missing for %s", id)
	}

	data, err := document.JSON([]byte(blob.Text()))
	if err != nil {
		return nil, fmt.Errorf("ganganonline title %s: %w", id, err)
	}

	payload, ok := document.Dig(data, "props", "pageProps", "data", "default")
	if !ok {
		return nil, domain.Structuref("ganganonline.com", "pageProps data missing for %s", id)
	}
	props, ok := payload.(map[string]any)
	if !ok {
		return nil, domain.Structuref("ganganonline.com", "pageProps data is not an object for %s", id)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	builder := feed.NewBuilder(title, indexURL, document.Str(props, "description"))

	chapters, ok := document.DigSlice(props, "chapters")
	if !ok {
		return nil, domain.Structuref("ganganonline.com", "chapter list missing for %s", id)
	}

	for _, raw := range chapters {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		match := publishingPeriodExpr.FindStringSubmatch(document.Str(entry, "publishingPeriod"))
		if match == nil {
			continue
		}
		year, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		day, _ := strconv.Atoi(match[3])
		publishedAt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, dates.JST)

		link := fmt.Sprintf("%s/chapter/%s", indexURL, url.PathEscape(chapterID(entry)))
		builder.Add(domain.FeedItem{
			Title:       chapterTitle(entry),
			Link:        link,
			GUID:        link,
			PublishedAt: publishedAt,
		})
	}

	return domain.FeedOutcome{Feed: builder.Build()}, nil
}

// chapterTitle joins the main and sub text with a single space, dropping
// whichever parts are empty.
func chapterTitle(entry map[string]any) string {
	parts := make([]string, 0, 2)
	for _, key := range []string{"mainText", "subText"} {
		if s := document.Str(entry, key); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func chapterID(entry map[string]any) string {
	if s := document.Str(entry, "id"); s != "" {
		return s
	}
	if n, ok := document.Num(entry, "id"); ok {
		return strconv.FormatInt(int64(n), 10)
	}
	return ""
}
