package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"manganovelsfeed/internal/domain"
)

// WebAce never builds a feed itself: web-ace.jp publishes native RSS, so
// resolution permanently redirects there. The content id carries the site
// sub-namespace as "sub:id".
type WebAce struct{}

var _ Strategy = (*WebAce)(nil)

// NewWebAce builds the redirect-only strategy.
func NewWebAce() *WebAce {
	return &WebAce{}
}

// RSS splits the id into its sub-namespace and work id and redirects to the
// provider's own feed for that pair.
func (s *WebAce) RSS(_ context.Context, id string) (domain.Outcome, error) {
	sub, rest, _ := strings.Cut(id, ":")
	target := fmt.Sprintf("https://web-ace.jp/%s/feed/rss/%s/", url.PathEscape(sub), url.PathEscape(rest))
	return domain.RedirectOutcome{Target: target}, nil
}
