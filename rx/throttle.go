package rx

// Throttle is the leading-edge variant: the first item in a window is
// emitted immediately and arms a timer via f; every other item arriving
// while the timer is armed is dropped. Disarms when the timer fires.
func Throttle[T any](upstream Pullable[T], f DelayFactory[T]) Pullable[T] {
	var timer Completable
	upstreamDone := false

	return Func[T](func(cx Context) Poll[T] {
		if timer != nil && timer.Poll(cx).Ready {
			timer = nil
		}

		if upstreamDone {
			return DonePoll[T]()
		}

		up := upstream.Poll(cx)
		switch {
		case up.Pending:
			return PendingPoll[T]()
		case up.Done:
			upstreamDone = true
			return DonePoll[T]()
		default:
			if timer != nil {
				return PendingPoll[T]()
			}
			timer = f(up.Value)
			return ReadyPoll(up.Value)
		}
	})
}

// ThrottleTrailing arms a timer on the first item of a window and remembers
// the latest item seen during the armed window, overwriting it on every
// subsequent arrival; the remembered item is emitted once the timer fires.
func ThrottleTrailing[T any](upstream Pullable[T], f DelayFactory[T]) Pullable[T] {
	var timer Completable
	var pending T
	hasPending := false
	upstreamDone := false

	return Func[T](func(cx Context) Poll[T] {
		if !upstreamDone {
			up := upstream.Poll(cx)
			switch {
			case up.Done:
				upstreamDone = true
			case up.HasValue():
				pending = up.Value
				hasPending = true
				if timer == nil {
					timer = f(up.Value)
				}
			}
		}

		if timer != nil && timer.Poll(cx).Ready {
			timer = nil
			if hasPending {
				v := pending
				hasPending = false
				return ReadyPoll(v)
			}
		}

		if upstreamDone && timer == nil && !hasPending {
			return DonePoll[T]()
		}
		return PendingPoll[T]()
	})
}

// ThrottleAll combines leading and trailing edges: it emits the first item
// of a window immediately, tracks a trailing slot through the window, and
// on timer completion also emits the trailing item if it differs from the
// leading one.
func ThrottleAll[T any](upstream Pullable[T], f DelayFactory[T], equal func(a, b T) bool) Pullable[T] {
	var timer Completable
	var leading, trailing T
	hasTrailing := false
	upstreamDone := false

	return Func[T](func(cx Context) Poll[T] {
		if !upstreamDone {
			up := upstream.Poll(cx)
			switch {
			case up.Done:
				upstreamDone = true
			case up.HasValue():
				if timer == nil {
					leading = up.Value
					timer = f(up.Value)
					return ReadyPoll(up.Value)
				}
				trailing = up.Value
				hasTrailing = true
			}
		}

		if timer != nil && timer.Poll(cx).Ready {
			timer = nil
			if hasTrailing {
				hasTrailing = false
				if !equal(trailing, leading) {
					return ReadyPoll(trailing)
				}
			}
		}

		if upstreamDone && timer == nil {
			return DonePoll[T]()
		}
		return PendingPoll[T]()
	})
}
