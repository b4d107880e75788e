package rx

import "sync"

// FromSlice returns a Pullable that yields each element of items in order,
// then completes. Polling never returns Pending — a synchronous source,
// useful for tests and for feeding deterministic fixtures into operators.
func FromSlice[T any](items []T) Pullable[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	i := 0
	return Func[T](func(cx Context) Poll[T] {
		if i >= len(cp) {
			return DonePoll[T]()
		}
		v := cp[i]
		i++
		return ReadyPoll(v)
	})
}

// Empty returns a Pullable that completes immediately without emitting.
func Empty[T any]() Pullable[T] {
	return Func[T](func(cx Context) Poll[T] {
		return DonePoll[T]()
	})
}

// FromChannel adapts a Go channel into a Pullable. Every poll first tries a
// non-blocking receive, so a value already sitting in the channel (the
// common case for buffered channels and tight busy-poll tests) is delivered
// synchronously. Only when the channel is genuinely empty does it hand a
// receive off to a background goroutine, which wakes the most recently
// registered waker once it completes — so a non-busy-poll executor is
// correctly signaled rather than stalling. At most one such receive is ever
// in flight. The channel's close is observed as terminal completion.
func FromChannel[T any](ch <-chan T) Pullable[T] {
	var mu sync.Mutex
	var waker Waker
	var waiting bool
	var value T
	var hasValue, closed, done bool

	return Func[T](func(cx Context) Poll[T] {
		mu.Lock()
		if done {
			mu.Unlock()
			return DonePoll[T]()
		}
		if hasValue {
			v := value
			hasValue = false
			mu.Unlock()
			return ReadyPoll(v)
		}
		if closed {
			done = true
			mu.Unlock()
			return DonePoll[T]()
		}
		mu.Unlock()

		select {
		case v, ok := <-ch:
			if !ok {
				mu.Lock()
				done = true
				mu.Unlock()
				return DonePoll[T]()
			}
			return ReadyPoll(v)
		default:
		}

		mu.Lock()
		waker = cx.Waker()
		if !waiting {
			waiting = true
			go func() {
				v, ok := <-ch
				mu.Lock()
				waiting = false
				if ok {
					value = v
					hasValue = true
				} else {
					closed = true
				}
				w := waker
				mu.Unlock()
				if w != nil {
					w.Wake()
				}
			}()
		}
		mu.Unlock()
		return PendingPoll[T]()
	})
}
