package rx

// Subject owns exactly one broadcast buffer and is driven externally via
// Next/Close rather than by polling an upstream. Publish, Behavior, and
// Replay variants differ only in the buffer's replay policy.
type Subject[T any] struct {
	buf *broadcastBuffer[T]
}

// Next pushes one value to every current and future subscriber (subject to
// the buffer's retention policy). A no-op once the subject is closed.
func (s Subject[T]) Next(v T) {
	s.buf.push(v)
}

// Close marks the subject terminal. Pending events already appended are
// still drained by each subscriber before it observes completion.
func (s Subject[T]) Close() {
	s.buf.close()
}

// Subscribe returns a new Observable positioned per the subject's policy.
func (s Subject[T]) Subscribe() Observable[T] {
	return Observable[T]{buf: s.buf, id: s.buf.subscribe()}
}

// NewPublishSubject returns a Subject where new subscribers skip past
// everything already emitted — {None, 0, skip-past}.
func NewPublishSubject[T any]() Subject[T] {
	return Subject[T]{buf: newBroadcastBuffer[T](nil, replayPolicy{mode: replayNone})}
}

// NewBehaviorSubject returns a Subject seeded with x0; the buffer retains
// exactly the most recent event and new subscribers resume from it.
func NewBehaviorSubject[T any](seed T) Subject[T] {
	buf := newBroadcastBuffer[T](nil, replayPolicy{mode: replayLast1})
	buf.push(seed)
	return Subject[T]{buf: buf}
}

// NewReplaySubject returns a Subject that retains every event; new
// subscribers resume from the oldest retained.
func NewReplaySubject[T any]() Subject[T] {
	return Subject[T]{buf: newBroadcastBuffer[T](nil, replayPolicy{mode: replayAllUpTo, cap: -1})}
}

// NewReplaySubjectWithCapacity returns a Subject that retains only the last
// cap events; slow subscribers have their cursor fast-forwarded past
// entries evicted under the cap.
func NewReplaySubjectWithCapacity[T any](cap int) Subject[T] {
	return Subject[T]{buf: newBroadcastBuffer[T](nil, replayPolicy{mode: replayAllUpTo, cap: cap})}
}
