package domain

import "time"

// FeedItem is one normalized, datable, linkable unit of content.
// Every field is required; strategies drop entries that cannot fill all four.
type FeedItem struct {
	Title       string
	Link        string
	GUID        string
	PublishedAt time.Time
}

// Feed is the channel-level result of one provider extraction. Items are
// ordered newest-first. An empty item list is a valid feed.
type Feed struct {
	Title       string
	Link        string
	Description string
	Items       []FeedItem
}

// Outcome is the tagged result of a feed request. Exactly one concrete
// variant is ever returned: FeedOutcome, RedirectOutcome, or GoneOutcome.
// Failures travel on the error return, never as an Outcome.
type Outcome interface {
	outcome()
}

// FeedOutcome carries a normalized feed ready for rendering.
type FeedOutcome struct {
	Feed Feed
}

// RedirectOutcome tells the caller content resolution has permanently moved.
type RedirectOutcome struct {
	Target string
}

// GoneOutcome marks a provider that no longer serves this content class.
type GoneOutcome struct{}

func (FeedOutcome) outcome()     {}
func (RedirectOutcome) outcome() {}
func (GoneOutcome) outcome()     {}
