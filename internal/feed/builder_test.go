package feed

import (
	"testing"
	"time"

	"manganovelsfeed/internal/domain"
)

func item(title string, published time.Time) domain.FeedItem {
	return domain.FeedItem{
		Title:       title,
		Link:        "https://example.com/" + title,
		GUID:        "https://example.com/" + title,
		PublishedAt: published,
	}
}

func TestBuilderSortsNewestFirst(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T", "https://example.com/", "D")
	b.Add(item("old", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	b.Add(item("new", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	b.Add(item("mid", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))

	f := b.Build()
	if len(f.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(f.Items))
	}
	for i := 0; i+1 < len(f.Items); i++ {
		if f.Items[i].PublishedAt.Before(f.Items[i+1].PublishedAt) {
			t.Fatalf("items out of order at %d: %v before %v", i, f.Items[i].PublishedAt, f.Items[i+1].PublishedAt)
		}
	}
	if f.Items[0].Title != "new" || f.Items[2].Title != "old" {
		t.Fatalf("unexpected order: %s .. %s", f.Items[0].Title, f.Items[2].Title)
	}
}

func TestBuilderDropsPartialItems(t *testing.T) {
	t.Parallel()

	b := NewBuilder("T", "https://example.com/", "D")
	b.Add(domain.FeedItem{Link: "https://example.com/x", GUID: "https://example.com/x", PublishedAt: time.Now()})
	b.Add(domain.FeedItem{Title: "no date", Link: "https://example.com/y", GUID: "https://example.com/y"})
	b.Add(domain.FeedItem{Title: "no link", GUID: "https://example.com/z", PublishedAt: time.Now()})
	b.Add(item("ok", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))

	f := b.Build()
	if len(f.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(f.Items))
	}
	if f.Items[0].Title != "ok" {
		t.Fatalf("unexpected surviving item: %s", f.Items[0].Title)
	}
}

func TestBuilderEmptyFeedKeepsChannelFields(t *testing.T) {
	t.Parallel()

	f := NewBuilder("T", "https://example.com/", "D").Build()
	if f.Title != "T" || f.Link != "https://example.com/" || f.Description != "D" {
		t.Fatalf("channel fields lost: %+v", f)
	}
	if len(f.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(f.Items))
	}
}
