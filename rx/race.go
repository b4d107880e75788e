package rx

// Race polls s1 and then s2 while no winner is decided; whichever yields an
// item first wins, and the loser is dropped entirely — only the winner is
// polled from then on. s1 is checked first, so in a round where s1 yields
// an item s2 is not polled at all. If one side completes without emitting before the
// other produces anything, the race continues with the other side; if
// both complete with nothing emitted, the race completes.
func Race[T any](s1, s2 Pullable[T]) Pullable[T] {
	const (
		undecided = iota
		wonLeft
		wonRight
	)
	winner := undecided
	leftDone, rightDone := false, false

	return Func[T](func(cx Context) Poll[T] {
		switch winner {
		case wonLeft:
			return s1.Poll(cx)
		case wonRight:
			return s2.Poll(cx)
		}

		if !leftDone {
			lp := s1.Poll(cx)
			switch {
			case lp.Done:
				leftDone = true
			case lp.HasValue():
				winner = wonLeft
				return ReadyPoll(lp.Value)
			}
		}
		if !rightDone {
			rp := s2.Poll(cx)
			switch {
			case rp.Done:
				rightDone = true
			case rp.HasValue():
				winner = wonRight
				return ReadyPoll(rp.Value)
			}
		}

		if leftDone && rightDone {
			return DonePoll[T]()
		}
		if leftDone {
			winner = wonRight
		}
		if rightDone {
			winner = wonLeft
		}
		return PendingPoll[T]()
	})
}
