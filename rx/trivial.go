package rx

// StartWith prepends items ahead of everything upstream produces.
func StartWith[T any](upstream Pullable[T], items []T) Pullable[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	i := 0
	return Func[T](func(cx Context) Poll[T] {
		if i < len(cp) {
			v := cp[i]
			i++
			return ReadyPoll(v)
		}
		return upstream.Poll(cx)
	})
}

// EndWith appends items once upstream completes.
func EndWith[T any](upstream Pullable[T], items []T) Pullable[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	i := 0
	upstreamDone := false
	return Func[T](func(cx Context) Poll[T] {
		if !upstreamDone {
			p := upstream.Poll(cx)
			switch {
			case p.Pending:
				return PendingPoll[T]()
			case p.Done:
				upstreamDone = true
			default:
				return ReadyPoll(p.Value)
			}
		}
		if i < len(cp) {
			v := cp[i]
			i++
			return ReadyPoll(v)
		}
		return DonePoll[T]()
	})
}

// Pairwise emits (prev, cur) starting with the second upstream item.
func Pairwise[T any](upstream Pullable[T]) Pullable[Tuple2[T, T]] {
	var prev T
	hasPrev := false
	return Func[Tuple2[T, T]](func(cx Context) Poll[Tuple2[T, T]] {
		for {
			p := upstream.Poll(cx)
			switch {
			case p.Pending:
				return PendingPoll[Tuple2[T, T]]()
			case p.Done:
				return DonePoll[Tuple2[T, T]]()
			default:
				if !hasPrev {
					prev = p.Value
					hasPrev = true
					continue
				}
				out := Tuple2[T, T]{V1: prev, V2: p.Value}
				prev = p.Value
				return ReadyPoll(out)
			}
		}
	})
}

// Distinct emits only items never previously seen.
func Distinct[T comparable](upstream Pullable[T]) Pullable[T] {
	seen := make(map[T]struct{})
	return Func[T](func(cx Context) Poll[T] {
		for {
			p := upstream.Poll(cx)
			switch {
			case p.Pending:
				return PendingPoll[T]()
			case p.Done:
				return DonePoll[T]()
			default:
				if _, ok := seen[p.Value]; ok {
					continue
				}
				seen[p.Value] = struct{}{}
				return ReadyPoll(p.Value)
			}
		}
	})
}

// DistinctUntilChanged emits items not equal to the immediately previous
// one.
func DistinctUntilChanged[T comparable](upstream Pullable[T]) Pullable[T] {
	var prev T
	hasPrev := false
	return Func[T](func(cx Context) Poll[T] {
		for {
			p := upstream.Poll(cx)
			switch {
			case p.Pending:
				return PendingPoll[T]()
			case p.Done:
				return DonePoll[T]()
			default:
				if hasPrev && prev == p.Value {
					continue
				}
				prev = p.Value
				hasPrev = true
				return ReadyPoll(p.Value)
			}
		}
	})
}

// InspectDone invokes f exactly once, when upstream completes.
func InspectDone[T any](upstream Pullable[T], f func()) Pullable[T] {
	invoked := false
	return Func[T](func(cx Context) Poll[T] {
		p := upstream.Poll(cx)
		if p.Done && !invoked {
			invoked = true
			f()
		}
		return p
	})
}

// Materialize converts Ready(Some)/Ready(None) into first-class
// Notification items, itself completing after the Complete notification.
func Materialize[T any](upstream Pullable[T]) Pullable[Notification[T]] {
	terminated := false
	return Func[Notification[T]](func(cx Context) Poll[Notification[T]] {
		if terminated {
			return DonePoll[Notification[T]]()
		}
		p := upstream.Poll(cx)
		switch {
		case p.Pending:
			return PendingPoll[Notification[T]]()
		case p.Done:
			terminated = true
			return ReadyPoll(Complete[T]())
		default:
			return ReadyPoll(Next(p.Value))
		}
	})
}

// Dematerialize inverts Materialize.
func Dematerialize[T any](upstream Pullable[Notification[T]]) Pullable[T] {
	return Func[T](func(cx Context) Poll[T] {
		p := upstream.Poll(cx)
		switch {
		case p.Pending:
			return PendingPoll[T]()
		case p.Done:
			return DonePoll[T]()
		default:
			if p.Value.IsComplete() {
				return DonePoll[T]()
			}
			return ReadyPoll(p.Value.Value)
		}
	})
}
