package rx

// Debounce holds a single replaceable candidate item rather than an
// accumulating buffer: each new upstream item overwrites the previous
// candidate and (re)arms a fresh timer via f. When the timer fires without
// being re-armed, the candidate is flushed downstream. Upstream completion
// flushes any held candidate once, then terminates.
func Debounce[T any](upstream Pullable[T], f DelayFactory[T]) Pullable[T] {
	var candidate T
	hasCandidate := false
	var timer Completable
	upstreamDone := false

	return Func[T](func(cx Context) Poll[T] {
		if !upstreamDone {
			up := upstream.Poll(cx)
			switch {
			case up.Done:
				upstreamDone = true
				if hasCandidate {
					v := candidate
					hasCandidate = false
					return ReadyPoll(v)
				}
				return DonePoll[T]()
			case up.HasValue():
				candidate = up.Value
				hasCandidate = true
				timer = f(candidate)
			}
		}

		if hasCandidate && timer != nil {
			if timer.Poll(cx).Ready {
				v := candidate
				hasCandidate = false
				timer = nil
				return ReadyPoll(v)
			}
		}

		if upstreamDone && !hasCandidate {
			return DonePoll[T]()
		}
		return PendingPoll[T]()
	})
}
