package rx

// WithLatestFrom maintains the most recent value observed from other via
// an opportunistic, non-blocking drain performed every round; it emits
// Tuple2(x, latest) only when upstream produces x and other has already
// produced at least one value. Upstream items observed while no value of
// other has arrived yet are dropped. Completion of other does not
// propagate — this library resolves the open question by continuing with
// the last observed value (§9 open question c).
func WithLatestFrom[T, U any](upstream Pullable[T], other Pullable[U]) Pullable[Tuple2[T, U]] {
	var latest U
	hasLatest := false
	otherDone := false

	return Func[Tuple2[T, U]](func(cx Context) Poll[Tuple2[T, U]] {
		if !otherDone {
			for {
				op := other.Poll(cx)
				switch {
				case op.Pending:
					goto drainedOther
				case op.Done:
					otherDone = true
					goto drainedOther
				default:
					latest = op.Value
					hasLatest = true
				}
			}
		}
	drainedOther:

		up := upstream.Poll(cx)
		switch {
		case up.Pending:
			return PendingPoll[Tuple2[T, U]]()
		case up.Done:
			return DonePoll[Tuple2[T, U]]()
		default:
			if !hasLatest {
				cx.Wake()
				return PendingPoll[Tuple2[T, U]]()
			}
			return ReadyPoll(Tuple2[T, U]{V1: up.Value, V2: latest})
		}
	})
}
