package oncecell

import (
	"context"
	"sync"
)

// Group composes many cells behind a key, for callers that want a keyed
// memoized cache. Each key gets its own cell with its own producer rounds,
// created on first use and kept until Forget.
//
// A Group is safe for concurrent use and must not be copied after first use.
type Group[K comparable, T any] struct {
	producer func(K, *Cell[T])
	opts     []Option

	mu    sync.Mutex
	cells map[K]*Cell[T]
}

// NewGroup returns a Group whose cells invoke producer with their key.
// opts are applied to every cell the group creates.
func NewGroup[K comparable, T any](producer func(K, *Cell[T]), opts ...Option) *Group[K, T] {
	return &Group[K, T]{
		producer: producer,
		opts:     opts,
		cells:    make(map[K]*Cell[T]),
	}
}

// Cell returns the cell for key, creating it on first use. All callers for
// the same key share one cell, so concurrent requests coalesce per key.
func (g *Group[K, T]) Cell(key K) *Cell[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.cells[key]
	if !ok {
		c = New(func(cell *Cell[T]) {
			g.producer(key, cell)
		}, g.opts...)
		g.cells[key] = c
	}
	return c
}

// Request registers completion with the cell for key. See [Cell.Request].
func (g *Group[K, T]) Request(key K, completion func(T, error)) {
	g.Cell(key).Request(completion)
}

// Get blocks for the outcome of the cell for key. See [Cell.Get].
func (g *Group[K, T]) Get(ctx context.Context, key K) (T, error) {
	return g.Cell(key).Get(ctx)
}

// Forget drops the cell for key. The next request for key creates a fresh
// cell and runs the producer again, even if the old cell had settled.
// Callers still holding the old cell keep observing its outcome.
func (g *Group[K, T]) Forget(key K) {
	g.mu.Lock()
	delete(g.cells, key)
	g.mu.Unlock()
}
