package rx

import "sync/atomic"

// Waker is signaled when a suspended Pullable might be able to make
// progress. Implementations must tolerate being called from any goroutine
// and more than once.
type Waker interface {
	Wake()
}

// Context is threaded through one poll call. It carries nothing but a
// Waker — there is no cancellation channel in this model; cancellation is
// expressed by a consumer simply dropping its Pullable.
type Context struct {
	waker Waker
}

// NewContext wraps a Waker into a Context.
func NewContext(w Waker) Context {
	return Context{waker: w}
}

// Waker returns the Waker carried by this Context.
func (cx Context) Waker() Waker {
	return cx.waker
}

// Wake signals this Context's waker, if any.
func (cx Context) Wake() {
	if cx.waker != nil {
		cx.waker.Wake()
	}
}

// FlagWaker is a Waker that records whether it has been woken, for use by
// test harnesses and simple busy-poll executors. Safe for concurrent use.
type FlagWaker struct {
	woken atomic.Bool
}

// Wake implements Waker.
func (w *FlagWaker) Wake() {
	w.woken.Store(true)
}

// Woken reports and clears the wake flag.
func (w *FlagWaker) Woken() bool {
	return w.woken.Swap(false)
}

// NoopWaker ignores Wake calls. Useful when a caller polls in a tight loop
// and does not need wake notifications to make progress.
type NoopWaker struct{}

// Wake implements Waker.
func (NoopWaker) Wake() {}
