package rx

// Sample opportunistically drains upstream into a held latest value every
// round; whenever sampler emits, the current latest (if any) is emitted and
// cleared. Terminates when upstream is done and latest is empty, or when
// sampler is done.
func Sample[T, S any](upstream Pullable[T], sampler Pullable[S]) Pullable[T] {
	var latest T
	hasLatest := false
	upstreamDone := false

	return Func[T](func(cx Context) Poll[T] {
		if !upstreamDone {
			up := upstream.Poll(cx)
			switch {
			case up.Done:
				upstreamDone = true
			case up.HasValue():
				latest = up.Value
				hasLatest = true
			}
		}

		sp := sampler.Poll(cx)
		switch {
		case sp.Done:
			return DonePoll[T]()
		case sp.HasValue():
			if hasLatest {
				v := latest
				hasLatest = false
				return ReadyPoll(v)
			}
		}

		if upstreamDone && !hasLatest {
			return DonePoll[T]()
		}
		return PendingPoll[T]()
	})
}
