package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBehaviorSubject_ReplayAfterClose(t *testing.T) {
	t.Run("two late subscribers each see only the last value", func(t *testing.T) {
		s := NewBehaviorSubject(0)
		s.Next(1)
		s.Next(2)
		s.Next(3)
		s.Close()

		a := s.Subscribe()
		b := s.Subscribe()

		gotA := drainEvents(a)
		gotB := drainEvents(b)

		assert.Equal(t, []int{3}, gotA)
		assert.Equal(t, []int{3}, gotB)
	})
}

func TestPublishSubject_SkipsPastHistory(t *testing.T) {
	s := NewPublishSubject[int]()
	s.Next(1)
	sub := s.Subscribe()
	s.Next(2)
	s.Close()

	assert.Equal(t, []int{2}, drainEvents(sub))
}

func TestReplaySubject_NewSubscriberSeesFullHistory(t *testing.T) {
	s := NewReplaySubject[int]()
	s.Next(1)
	s.Next(2)
	sub := s.Subscribe()
	s.Next(3)
	s.Close()

	assert.Equal(t, []int{1, 2, 3}, drainEvents(sub))
}

func TestReplaySubjectWithCapacity_EvictsAndFastForwards(t *testing.T) {
	s := NewReplaySubjectWithCapacity[int](2)
	s.Next(1)
	s.Next(2)
	s.Next(3) // evicts 1
	sub := s.Subscribe()
	s.Close()

	assert.Equal(t, []int{2, 3}, drainEvents(sub))
}

func TestSubject_MultipleSubscribersObserveSameOrder(t *testing.T) {
	// Invariant 2: every subscriber's observed projection is a
	// prefix-after-cursor of the same underlying sequence.
	s := NewPublishSubject[int]()
	a := s.Subscribe()
	s.Next(1)
	b := s.Subscribe()
	s.Next(2)
	s.Next(3)
	s.Close()

	gotA := drainEvents(a)
	gotB := drainEvents(b)
	require.Equal(t, []int{1, 2, 3}, gotA)
	require.Equal(t, []int{2, 3}, gotB)
}

func TestPoll_StickyAfterDone(t *testing.T) {
	p := FromSlice([]int{1})
	cx := NewContext(NoopWaker{})
	require.Equal(t, 1, p.Poll(cx).Value)
	require.True(t, p.Poll(cx).Done)
	require.True(t, p.Poll(cx).Done)
}

func drainEvents[T any](o Observable[T]) []T {
	cx := NewContext(NoopWaker{})
	var out []T
	for i := 0; i < 100000; i++ {
		p := o.Poll(cx)
		if p.Done {
			return out
		}
		if !p.Pending {
			out = append(out, p.Value.Value())
		}
	}
	panic("drainEvents: exceeded iteration budget without completing")
}
