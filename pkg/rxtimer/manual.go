package rxtimer

import (
	"sync"

	"github.com/streamkit/rxstream/rx"
)

// Manual is a hand-steppable Completable for deterministic tests of
// debounce, throttle, delay, buffer, and window — callers decide exactly
// when it fires instead of waiting on a real clock.
type Manual struct {
	mu    sync.Mutex
	fired bool
	waker rx.Waker
}

// NewManual returns an unfired Manual.
func NewManual() *Manual {
	return &Manual{}
}

// Poll implements rx.Completable.
func (m *Manual) Poll(cx rx.Context) rx.CompletablePoll {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fired {
		return rx.Fired
	}
	m.waker = cx.Waker()
	return rx.Pending
}

// Fire resolves the Completable and wakes whichever Context last polled
// it. Idempotent.
func (m *Manual) Fire() {
	m.mu.Lock()
	if m.fired {
		m.mu.Unlock()
		return
	}
	m.fired = true
	w := m.waker
	m.mu.Unlock()
	if w != nil {
		w.Wake()
	}
}

// ManualFactory is an rx.DelayFactory that hands out Manual completables
// and remembers the order they were created in, so a test can fire them
// one at a time in the order the operator under test armed them.
type ManualFactory[T any] struct {
	mu      sync.Mutex
	created []*Manual
}

// NewManualFactory returns an empty ManualFactory.
func NewManualFactory[T any]() *ManualFactory[T] {
	return &ManualFactory[T]{}
}

// Factory returns the rx.DelayFactory to pass to a timing operator.
func (f *ManualFactory[T]) Factory() rx.DelayFactory[T] {
	return func(T) rx.Completable {
		m := NewManual()
		f.mu.Lock()
		f.created = append(f.created, m)
		f.mu.Unlock()
		return m
	}
}

// Count reports how many Manual completables have been created so far.
func (f *ManualFactory[T]) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

// FireAt fires the i-th created Manual. Panics if i is out of range, since
// firing a timer that was never armed is a test bug, not a runtime
// condition to handle gracefully.
func (f *ManualFactory[T]) FireAt(i int) {
	f.mu.Lock()
	m := f.created[i]
	f.mu.Unlock()
	m.Fire()
}

// FireLatest fires the most recently created Manual.
func (f *ManualFactory[T]) FireLatest() {
	f.mu.Lock()
	n := len(f.created)
	var m *Manual
	if n > 0 {
		m = f.created[n-1]
	}
	f.mu.Unlock()
	if m != nil {
		m.Fire()
	}
}
