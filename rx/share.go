package rx

// Share adapts any Pullable into a Broadcast-backed Observable: items come
// from driving upstream rather than from Next calls, but the multiplexing
// semantics (driver election, cursor-based delivery) are identical to a
// PublishSubject. Cloning the returned Observable is the only way to
// obtain a second subscriber.
func Share[T any](upstream Pullable[T]) Observable[T] {
	buf := newBroadcastBuffer[T](upstream, replayPolicy{mode: replayNone})
	return Observable[T]{buf: buf, id: buf.subscribe()}
}

// ShareBehavior is Share with BehaviorSubject-style retention: the buffer
// always retains the latest item so that late subscribers still observe
// it.
func ShareBehavior[T any](upstream Pullable[T]) Observable[T] {
	buf := newBroadcastBuffer[T](upstream, replayPolicy{mode: replayLast1})
	return Observable[T]{buf: buf, id: buf.subscribe()}
}

// ShareReplay is Share with ReplaySubject-style retention: the buffer
// retains up to cap items for late subscribers. cap < 0 means unbounded;
// cap == 0 is treated as equivalent to Share, per the open question this
// library resolves that way.
func ShareReplay[T any](upstream Pullable[T], cap int) Observable[T] {
	mode := replayAllUpTo
	if cap == 0 {
		mode = replayNone
	}
	buf := newBroadcastBuffer[T](upstream, replayPolicy{mode: mode, cap: cap})
	return Observable[T]{buf: buf, id: buf.subscribe()}
}
