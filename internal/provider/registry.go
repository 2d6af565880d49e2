package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"manganovelsfeed/internal/domain"
)

// ErrNotFound marks a provider key outside the compiled-in table.
var ErrNotFound = errors.New("provider is not registered")

// Strategy captures the extraction implementation for one provider key.
type Strategy interface {
	RSS(ctx context.Context, id string) (domain.Outcome, error)
}

type entry struct {
	once     sync.Once
	build    func() Strategy
	strategy Strategy
}

// Registry maps provider keys (upstream domains) to strategies. The table is
// fixed after registration; instances are built lazily on first resolve and
// memoized, so concurrent first use observes a single strategy per key.
type Registry struct {
	entries map[string]*entry
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*entry{}}
}

// Register adds a strategy constructor under an exact provider key.
// Registration happens once at wiring time, before any resolve.
func (r *Registry) Register(key string, build func() Strategy) {
	r.entries[key] = &entry{build: build}
}

// Resolve returns the strategy for key, constructing it on first use.
// Lookup is exact and case-sensitive.
func (r *Registry) Resolve(key string) (Strategy, error) {
	e, ok := r.entries[key]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", key, ErrNotFound)
	}
	e.once.Do(func() {
		e.strategy = e.build()
	})
	return e.strategy, nil
}
