package feed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"manganovelsfeed/internal/domain"
)

func TestRenderRSS(t *testing.T) {
	t.Parallel()

	f := domain.Feed{
		Title:       "作品名",
		Link:        "https://example.com/work",
		Description: "説明",
		Items: []domain.FeedItem{
			{
				Title:       "第1話",
				Link:        "https://example.com/work/1",
				GUID:        "https://example.com/work/1",
				PublishedAt: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.FixedZone("JST", 9*3600)),
			},
		},
	}

	body, err := RenderRSS(f)
	if err != nil {
		t.Fatalf("RenderRSS returned error: %v", err)
	}

	text := string(body)
	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>作品名</title>",
		"<link>https://example.com/work</link>",
		"<description>説明</description>",
		`<guid isPermaLink="true">https://example.com/work/1</guid>`,
		"<pubDate>Tue, 02 Jan 2024 00:00:00 +0900</pubDate>",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("rendered RSS missing %q:\n%s", want, text)
		}
	}
}

func TestRenderRSSDeterministic(t *testing.T) {
	t.Parallel()

	f := domain.Feed{Title: "T", Link: "https://example.com/", Description: "D"}

	first, err := RenderRSS(f)
	if err != nil {
		t.Fatalf("RenderRSS returned error: %v", err)
	}
	second, err := RenderRSS(f)
	if err != nil {
		t.Fatalf("RenderRSS returned error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("identical feeds rendered differently")
	}
}
