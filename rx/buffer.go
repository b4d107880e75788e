package rx

// BufferPredicate decides, asynchronously, whether an accumulating buffer
// should be flushed; it is handed the buffer's current contents and count
// and returns a Completable that resolves true to flush.
type BufferPredicate[T any] func(items []T, count int) Completable

// Buffer accumulates upstream items into a slice, consulting pred after
// every item; when pred resolves, the slice is emitted and reset. Upstream
// completion flushes a non-empty buffer once, then terminates.
func Buffer[T any](upstream Pullable[T], pred BufferPredicate[T]) Pullable[[]T] {
	var items []T
	var flushTimer Completable
	upstreamDone := false

	return Func[[]T](func(cx Context) Poll[[]T] {
		if !upstreamDone {
			up := upstream.Poll(cx)
			switch {
			case up.Done:
				upstreamDone = true
				if len(items) > 0 {
					out := items
					items = nil
					return ReadyPoll(out)
				}
				return DonePoll[[]T]()
			case up.HasValue():
				items = append(items, up.Value)
				flushTimer = pred(items, len(items))
			}
		}

		if flushTimer != nil && flushTimer.Poll(cx).Ready {
			flushTimer = nil
			if len(items) > 0 {
				out := items
				items = nil
				return ReadyPoll(out)
			}
		}

		if upstreamDone && len(items) == 0 {
			return DonePoll[[]T]()
		}
		return PendingPoll[[]T]()
	})
}
