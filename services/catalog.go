// Package services: services/catalog.go
package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"yala-safari-web/logger"
	"yala-safari-web/models"
)

// listRetryDelay is how long a failed load waits before its single automatic
// retry. Swappable in tests.
var listRetryDelay = 2 * time.Second

// Catalog is the in-memory collection for one entity type. It is populated
// by full refetches from the backend and never mutated locally; after any
// successful create/update/delete the owning screen calls Load again
// (authoritative refetch).
type Catalog[T models.Searchable] struct {
	mu           sync.Mutex
	name         string
	fetch        func(ctx context.Context) ([]T, error)
	items        []T
	loading      bool
	lastErr      error
	retryPending bool
}

// NewCatalog builds a catalog around a fetch function, typically a closure
// over BackendClient's List for one endpoint.
func NewCatalog[T models.Searchable](name string, fetch func(ctx context.Context) ([]T, error)) *Catalog[T] {
	return &Catalog[T]{name: name, fetch: fetch}
}

// Load refetches the collection. On success the collection is replaced
// wholesale, preserving backend order. On failure the error is retained for
// display and exactly one retry is scheduled after listRetryDelay; the retry
// itself never schedules another, so a dead backend costs one extra call per
// failed Load rather than an unbounded loop.
func (c *Catalog[T]) Load(ctx context.Context) error {
	return c.load(ctx, true)
}

func (c *Catalog[T]) load(ctx context.Context, allowRetry bool) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.lastErr = err
		logger.Error.Printf("loading %s failed: %v", c.name, err)
		if allowRetry && !c.retryPending {
			c.retryPending = true
			time.AfterFunc(listRetryDelay, func() {
				c.mu.Lock()
				c.retryPending = false
				c.mu.Unlock()
				_ = c.load(context.Background(), false)
			})
		}
		return err
	}

	c.items = append([]T(nil), items...)
	c.lastErr = nil
	return nil
}

// Items returns a copy of the current collection in backend order.
func (c *Catalog[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Loading reports whether a load is in flight.
func (c *Catalog[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error from the most recent load, nil after a success.
func (c *Catalog[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Find returns the item with the given id, located via the supplied id
// accessor, and whether it was present.
func (c *Catalog[T]) Find(id string, idOf func(T) string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the items whose search text contains term (case-folded
// substring match) and which pass every extra predicate. An empty term
// matches everything. The underlying collection is never modified and order
// is preserved; recomputing per render is O(n) and fine at catalog sizes.
func (c *Catalog[T]) Filter(term string, preds ...func(T) bool) []T {
	c.mu.Lock()
	items := append([]T(nil), c.items...)
	c.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue outer
			}
		}
		if term == "" || matchesTerm(item, term) {
			out = append(out, item)
		}
	}
	return out
}

func matchesTerm(item models.Searchable, term string) bool {
	for _, field := range item.SearchText() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
