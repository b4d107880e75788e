package rx

import "time"

// Timed wraps one item with the wall-clock time it was emitted and the
// interval since the previous emission (None for the first item).
type Timed[T any] struct {
	Value     T
	Timestamp time.Time
	Interval  *time.Duration
}

// Timing wraps each upstream item into a Timed record using clock as the
// injectable time source.
func Timing[T any](upstream Pullable[T], clock Clock) Pullable[Timed[T]] {
	var prev time.Time
	first := true

	return Func[Timed[T]](func(cx Context) Poll[Timed[T]] {
		p := upstream.Poll(cx)
		switch {
		case p.Pending:
			return PendingPoll[Timed[T]]()
		case p.Done:
			return DonePoll[Timed[T]]()
		default:
			now := clock.Now()
			var interval *time.Duration
			if !first {
				d := now.Sub(prev)
				interval = &d
			}
			first = false
			prev = now
			return ReadyPoll(Timed[T]{Value: p.Value, Timestamp: now, Interval: interval})
		}
	})
}
