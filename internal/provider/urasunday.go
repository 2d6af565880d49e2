package provider

import (
	"context"

	"manganovelsfeed/internal/domain"
)

// UraSunday is retired: urasunday.com stopped serving its episode catalog.
type UraSunday struct{}

var _ Strategy = (*UraSunday)(nil)

// NewUraSunday builds the gone-only strategy.
func NewUraSunday() *UraSunday {
	return &UraSunday{}
}

// RSS always reports the content class as gone.
// TODO: manga-one.com took over this catalog; point a strategy at its API.
func (s *UraSunday) RSS(_ context.Context, _ string) (domain.Outcome, error) {
	return domain.GoneOutcome{}, nil
}
