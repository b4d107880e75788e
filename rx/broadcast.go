package rx

import (
	"sync"

	"github.com/google/uuid"
)

// replayMode selects how a broadcastBuffer retains history for subscribers
// that join after events have already been appended.
type replayMode int

const (
	replayNone    replayMode = iota // Publish: new subscribers skip past
	replayLast1                     // Behavior: retain exactly the latest event
	replayAllUpTo                   // Replay(cap): retain up to cap events
)

// replayPolicy is the {replay_mode, replay_cap} pair from the broadcast
// buffer's policy triple. cap < 0 means unbounded retention.
type replayPolicy struct {
	mode replayMode
	cap  int
}

type subscriberState struct {
	cursor uint64
	waker  Waker
}

// broadcastBuffer is the multiplex point shared by Subjects and share*
// operators: a monotonic sequence of events, a map of subscriber id to
// cursor, and a replay-retention policy. At most one subscriber drives the
// upstream at a time (driver election); the rest register their waker and
// are woken when the driver appends an item.
//
// Grounded on the subscriber-map/mutex shape of a channel-fanout hub, but
// rebuilt around cursors and pull rather than push so that each subscriber
// can be polled independently and at its own pace.
type broadcastBuffer[T any] struct {
	mu sync.Mutex

	upstream Pullable[T] // nil for a pure Subject fed only by push()

	oldestSeq uint64
	nextSeq   uint64
	entries   []Event[T]

	terminal   bool
	driverHeld bool

	policy replayPolicy
	subs   map[string]*subscriberState
}

func newBroadcastBuffer[T any](upstream Pullable[T], policy replayPolicy) *broadcastBuffer[T] {
	return &broadcastBuffer[T]{
		upstream: upstream,
		policy:   policy,
		subs:     make(map[string]*subscriberState),
	}
}

// subscribe registers a new subscriber id with a cursor positioned per the
// buffer's replay policy, and returns that id.
func (b *broadcastBuffer[T]) subscribe() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	var cursor uint64
	switch b.policy.mode {
	case replayNone:
		cursor = b.nextSeq
	default:
		cursor = b.oldestSeq
	}
	b.subs[id] = &subscriberState{cursor: cursor}
	return id
}

// unsubscribe removes a cursor. Per spec, dropping an Observable wakes the
// producer if it was waiting on this being the slowest cursor — here that
// reduces to simply re-running eviction, since a removed cursor can no
// longer hold back retention.
func (b *broadcastBuffer[T]) unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
	b.evictLocked()
}

// push appends a value directly (Subject.Next path; no upstream involved).
func (b *broadcastBuffer[T]) push(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.terminal {
		return
	}
	b.appendLocked(NewEvent(v))
	b.wakeAllLocked()
}

// close marks the buffer terminal (Subject.Close path).
func (b *broadcastBuffer[T]) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.terminal = true
	b.wakeAllLocked()
}

func (b *broadcastBuffer[T]) appendLocked(e Event[T]) {
	b.entries = append(b.entries, e)
	b.nextSeq++
	b.evictLocked()
}

func (b *broadcastBuffer[T]) wakeAllLocked() {
	for _, s := range b.subs {
		if s.waker != nil {
			s.waker.Wake()
			s.waker = nil
		}
	}
}

// evictLocked drops entries no longer required by any live cursor nor by
// the retention policy. A capped replay policy may force eviction past a
// slow cursor's position; that cursor is fast-forwarded to the new oldest
// retained sequence, matching the buffer's "deliberate eviction" rule.
func (b *broadcastBuffer[T]) evictLocked() {
	minCursor := b.nextSeq
	for _, s := range b.subs {
		if s.cursor < minCursor {
			minCursor = s.cursor
		}
	}

	keepFrom := minCursor
	switch b.policy.mode {
	case replayLast1:
		if b.nextSeq > 0 && b.nextSeq-1 < keepFrom {
			keepFrom = b.nextSeq - 1
		}
	case replayAllUpTo:
		if b.policy.cap >= 0 {
			floor := uint64(0)
			if b.nextSeq > uint64(b.policy.cap) {
				floor = b.nextSeq - uint64(b.policy.cap)
			}
			keepFrom = floor
		} else {
			keepFrom = b.oldestSeq
		}
	}

	if keepFrom < b.oldestSeq {
		keepFrom = b.oldestSeq
	}
	if keepFrom > b.nextSeq {
		keepFrom = b.nextSeq
	}
	if keepFrom > b.oldestSeq {
		drop := keepFrom - b.oldestSeq
		b.entries = b.entries[drop:]
		b.oldestSeq = keepFrom
		for _, s := range b.subs {
			if s.cursor < b.oldestSeq {
				s.cursor = b.oldestSeq
			}
		}
	}
}

// poll services one subscriber's poll call, driving the upstream inline
// when no other subscriber currently holds the driver flag.
func (b *broadcastBuffer[T]) poll(id string, cx Context) Poll[Event[T]] {
	b.mu.Lock()

	sub, ok := b.subs[id]
	if !ok {
		b.mu.Unlock()
		return DonePoll[Event[T]]()
	}

	if sub.cursor < b.oldestSeq {
		sub.cursor = b.oldestSeq
	}

	if sub.cursor < b.nextSeq {
		v := b.entries[sub.cursor-b.oldestSeq]
		sub.cursor++
		b.mu.Unlock()
		return ReadyPoll(v)
	}

	if b.terminal {
		b.mu.Unlock()
		return DonePoll[Event[T]]()
	}

	sub.waker = cx.Waker()

	if b.upstream == nil || b.driverHeld {
		b.mu.Unlock()
		return PendingPoll[Event[T]]()
	}

	b.driverHeld = true
	b.mu.Unlock()

	up := b.upstream.Poll(cx)

	b.mu.Lock()
	b.driverHeld = false
	switch {
	case up.Done:
		b.terminal = true
		b.wakeAllLocked()
	case up.HasValue():
		b.appendLocked(NewEvent(up.Value))
		b.wakeAllLocked()
	}

	// Re-check this subscriber's own cursor now that the round is over.
	if sub.cursor < b.oldestSeq {
		sub.cursor = b.oldestSeq
	}
	if sub.cursor < b.nextSeq {
		v := b.entries[sub.cursor-b.oldestSeq]
		sub.cursor++
		b.mu.Unlock()
		return ReadyPoll(v)
	}
	if b.terminal {
		b.mu.Unlock()
		return DonePoll[Event[T]]()
	}
	b.mu.Unlock()
	return PendingPoll[Event[T]]()
}
