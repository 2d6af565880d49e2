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

	"github.com/PuerkitoBio/goquery"

	"manganovelsfeed/internal/dates"
	"manganovelsfeed/internal/document"
	"manganovelsfeed/internal/domain"
	"manganovelsfeed/internal/feed"
	"manganovelsfeed/internal/fetch"
)

const publishedLabel = "公開日"

var monthDayExpr = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)

// Storia scrapes storia.takeshobo.co.jp series pages. Episode dates omit the
// year, so resolution threads the year-rollover heuristic through the list
// in page order.
type Storia struct {
	client *fetch.Client
	logger *slog.Logger
	base   string
	now    func() time.Time
}

var _ Strategy = (*Storia)(nil)

// NewStoria wires the upstream client with the UTC reference clock.
func NewStoria(client *fetch.Client, logger *slog.Logger) *Storia {
	return &Storia{
		client: client,
		logger: logger,
		base:   "https://storia.takeshobo.co.jp",
		now:    time.Now,
	}
}

// RSS fetches the series page and projects readable episodes, excluding
// paid-only entries.
func (s *Storia) RSS(ctx context.Context, id string) (domain.Outcome, error) {
	indexURL := fmt.Sprintf("%s/manga/%s/", s.base, url.PathEscape(id))
	raw, err := s.client.Get(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("storia series %s: %w", id, err)
	}

	doc, err := document.HTML(raw)
	if err != nil {
		return nil, fmt.Errorf("storia series %s: %w", id, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	description := doc.Find(`meta[name="description"]`).AttrOr("content", "")
	builder := feed.NewBuilder(title, indexURL, description)

	rollover := dates.NewRollover(s.now())
	var structureErr error

	doc.Find("ul.episode_list > li:not(.locked)").EachWithBreak(func(_ int, entry *goquery.Selection) bool {
		anchors := entry.Find("a")
		if anchors.Length() != 1 {
			// The page layout changed under us; bail out instead of
			// guessing which anchor is the episode link.
			structureErr = domain.Structuref("storia.takeshobo.co.jp",
				"episode entry has %d anchors for %s", anchors.Length(), id)
			return false
		}

		publishedAt, ok := entryDate(entry, rollover)
		if !ok {
			s.debug("skip episode without publish date", "series", id)
			return true
		}

		href, _ := anchors.Attr("href")
		link := resolveRef(indexURL, href)
		builder.Add(domain.FeedItem{
			Title:       strings.TrimSpace(anchors.Text()),
			Link:        link,
			GUID:        link,
			PublishedAt: publishedAt,
		})
		return true
	})
	if structureErr != nil {
		return nil, structureErr
	}

	return domain.FeedOutcome{Feed: builder.Build()}, nil
}

// entryDate locates the dd immediately following the dt labeled 公開日 and
// resolves its year-less fragment against the running reference.
func entryDate(entry *goquery.Selection, rollover *dates.Rollover) (time.Time, bool) {
	var fragment string
	entry.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		if strings.TrimSpace(dt.Text()) != publishedLabel {
			return true
		}
		fragment = strings.TrimSpace(dt.Next().Text())
		return false
	})

	match := monthDayExpr.FindStringSubmatch(fragment)
	if match == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(match[1])
	day, _ := strconv.Atoi(match[2])
	return rollover.Resolve(time.Month(month), day), true
}

func resolveRef(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func (s *Storia) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
