package feed

import (
	"sort"

	"manganovelsfeed/internal/domain"
)

// Builder assembles a normalized feed. Every strategy funnels through it so
// ordering and completeness rules stay identical across providers: items
// missing any required field are dropped before insertion, and the built
// feed is always ordered newest-first.
type Builder struct {
	title       string
	link        string
	description string
	items       []domain.FeedItem
}

// NewBuilder starts a feed with its channel-level metadata. The channel
// fields are kept even when no item qualifies; an empty feed is valid.
func NewBuilder(title, link, description string) *Builder {
	return &Builder{title: title, link: link, description: description}
}

// Add inserts an item unless a required field is unresolved. Partial items
// never reach the feed.
func (b *Builder) Add(item domain.FeedItem) {
	if item.Title == "" || item.Link == "" || item.GUID == "" || item.PublishedAt.IsZero() {
		return
	}
	b.items = append(b.items, item)
}

// Build returns the normalized feed with items sorted newest-first.
func (b *Builder) Build() domain.Feed {
	items := make([]domain.FeedItem, len(b.items))
	copy(items, b.items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return domain.Feed{
		Title:       b.title,
		Link:        b.link,
		Description: b.description,
		Items:       items,
	}
}
