package oncecell

import (
	"context"
	"sync"
)

// Phase is the lifecycle state of a Cell.
type Phase int

const (
	// PhaseIdle means no producer run is in flight and no success has been
	// recorded. The next Request launches the producer.
	PhaseIdle Phase = iota
	// PhasePending means the producer has been invoked and has not yet
	// reported. Requests queue behind the in-flight round.
	PhasePending
	// PhaseSettled means a success has been recorded. It is permanent:
	// every further Request is served from the cache.
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Producer performs the work a Cell coordinates. It receives the cell so it
// can call Report, either before returning (synchronous completion) or later
// from another goroutine. Each invocation must eventually lead to exactly
// one effective Report; a producer that never reports strands that round's
// waiters — the cell does not detect or time out a silent producer.
type Producer[T any] func(*Cell[T])

// Cell coordinates concurrent requesters around one producer and its result.
// The producer runs at most once per round: requests made while a round is
// in flight share its outcome, a success is cached for the life of the cell,
// and a failure resets the cell so the next request retries.
//
// All methods are safe for concurrent use. The zero Cell is not usable;
// create cells with New.
type Cell[T any] struct {
	producer Producer[T]
	name     string
	observer Observer

	mu      sync.Mutex
	phase   Phase
	waiters []func(T, error)

	// Outcome of the most recent round. A success is sticky; a failure is
	// overwritten by the next round's report.
	cached bool
	value  T
	err    error
}

// New returns a Cell bound to producer for its lifetime.
func New[T any](producer Producer[T], opts ...Option) *Cell[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &Cell[T]{
		producer: producer,
		name:     s.name,
		observer: s.observer,
	}
}

// Request registers completion to be invoked exactly once with the cell's
// outcome. It never blocks and never fails; producer failures are delivered
// through completion.
//
// If the cell is settled, completion runs synchronously with the cached
// success. If a round is in flight, completion is queued and runs when the
// producer reports. Otherwise the cell launches the producer, which may
// itself report (and so run completion) before Request returns.
func (c *Cell[T]) Request(completion func(T, error)) {
	c.mu.Lock()
	switch c.phase {
	case PhaseSettled:
		value := c.value
		c.mu.Unlock()
		c.emit(EventHit, PhaseSettled, 0)
		completion(value, nil)
	case PhasePending:
		c.waiters = append(c.waiters, completion)
		queued := len(c.waiters)
		c.mu.Unlock()
		c.emit(EventCoalesce, PhasePending, queued)
	default: // PhaseIdle
		c.waiters = append(c.waiters, completion)
		c.phase = PhasePending
		c.mu.Unlock()
		c.emit(EventLaunch, PhasePending, 1)
		c.producer(c)
	}
}

// Report delivers a round's outcome, called by the producer from any
// goroutine. Every queued completion is invoked exactly once with the
// outcome before Report returns. A nil err settles the cell for good; a
// non-nil err resets it to idle so the next Request retries.
//
// Once the cell holds a success, later Report calls are dropped, so a
// duplicate or stray report after settlement is harmless.
func (c *Cell[T]) Report(value T, err error) {
	c.mu.Lock()
	if c.cached && c.err == nil {
		c.mu.Unlock()
		return
	}
	waiters := c.waiters
	c.waiters = nil
	c.cached = true
	c.value = value
	c.err = err
	if err == nil {
		c.phase = PhaseSettled
	} else {
		c.phase = PhaseIdle
	}
	phase := c.phase
	c.mu.Unlock()

	if err == nil {
		c.emit(EventSettle, phase, len(waiters))
	} else {
		c.emit(EventReset, phase, len(waiters))
	}

	// Drain newest-first. Completions are independent observers, so no
	// ordering between them is promised.
	for i := len(waiters) - 1; i >= 0; i-- {
		waiters[i](value, err)
	}
}

// Get is a blocking facade over Request. It waits for the cell's outcome or
// for ctx to be done, whichever comes first. On cancellation the eventual
// outcome is ignored and ctx.Err() is returned with T's zero value.
//
// Cancelling ctx does not cancel the in-flight producer; it only stops this
// caller from waiting.
func (c *Cell[T]) Get(ctx context.Context) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	ch := make(chan outcome, 1)
	c.Request(func(value T, err error) {
		ch <- outcome{value, err}
	})
	select {
	case out := <-ch:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Phase reports the cell's current lifecycle state.
func (c *Cell[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Cell[T]) emit(event Event, phase Phase, waiters int) {
	if c.observer == nil {
		return
	}
	c.observer.On(EventData{
		Event:   event,
		Cell:    c.name,
		Phase:   phase,
		Waiters: waiters,
	})
}
