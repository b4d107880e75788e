package rx

// Window produces a stream of Observables: each emitted inner is backed by
// an ephemeral, single-consumer publish buffer fed by the current window's
// items. pred is consulted after every item (same contract as Buffer); when
// it resolves true, the current inner is closed and a new one opens on the
// next upstream item. Upstream completion closes the current inner, then
// terminates the outer.
func Window[T any](upstream Pullable[T], pred BufferPredicate[T]) Pullable[Observable[T]] {
	var current *Subject[T]
	var windowItems []T
	var flushTimer Completable
	upstreamDone := false

	return Func[Observable[T]](func(cx Context) Poll[Observable[T]] {
		if !upstreamDone {
			up := upstream.Poll(cx)
			switch {
			case up.Done:
				upstreamDone = true
				if current != nil {
					current.Close()
					current = nil
				}
			case up.HasValue():
				opening := current == nil
				var obs Observable[T]
				if opening {
					s := NewPublishSubject[T]()
					current = &s
					windowItems = nil
					// Subscribe before the first Next: a PublishSubject's
					// new subscribers start at next_seq, so pushing first
					// would drop this window's opening item.
					obs = current.Subscribe()
				}
				current.Next(up.Value)
				windowItems = append(windowItems, up.Value)
				flushTimer = pred(windowItems, len(windowItems))
				if opening {
					return ReadyPoll(obs)
				}
			}
		}

		if flushTimer != nil && flushTimer.Poll(cx).Ready {
			flushTimer = nil
			if current != nil {
				current.Close()
				current = nil
				windowItems = nil
			}
		}

		if upstreamDone && current == nil {
			return DonePoll[Observable[T]]()
		}
		return PendingPoll[Observable[T]]()
	})
}
