// Package rxtimer provides concrete implementations of the timer
// abstractions rx's timing operators consume: a real time.AfterFunc-backed
// Completable for production use, and a hand-steppable double for
// deterministic tests.
package rxtimer

import (
	"sync"
	"time"

	"github.com/streamkit/rxstream/rx"
)

// Timer is a Completable backed by a real time.Timer. It fires at most
// once and wakes whichever Context last polled it, via a fired flag plus
// a stored waker rather than a blocking channel, since Completable.Poll
// must never block.
type Timer struct {
	mu    sync.Mutex
	fired bool
	waker rx.Waker
	timer *time.Timer
}

// After returns a Timer that fires once d has elapsed.
func After(d time.Duration) *Timer {
	t := &Timer{}
	t.timer = time.AfterFunc(d, t.fire)
	return t
}

func (t *Timer) fire() {
	t.mu.Lock()
	t.fired = true
	w := t.waker
	t.mu.Unlock()
	if w != nil {
		w.Wake()
	}
}

// Poll implements rx.Completable.
func (t *Timer) Poll(cx rx.Context) rx.CompletablePoll {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired {
		return rx.Fired
	}
	t.waker = cx.Waker()
	return rx.Pending
}

// Stop releases the underlying timer. Best-effort: if the timer already
// fired, Stop is a no-op, matching the core's "TimerCancelled is silent"
// rule.
func (t *Timer) Stop() {
	t.timer.Stop()
}

// AfterFactory adapts After into an rx.DelayFactory that ignores its
// trigger context and always waits d.
func AfterFactory[T any](d time.Duration) rx.DelayFactory[T] {
	return func(T) rx.Completable {
		return After(d)
	}
}
