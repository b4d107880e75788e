package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchMap_SynchronousDrainPinnedScenario(t *testing.T) {
	upstream := FromSlice([]int{0, 1, 2, 3})
	f := func(i int) Pullable[int] {
		return FromSlice([]int{i * i, i * i * i, i * i * i * i})
	}

	got := drainAll(SwitchMap(upstream, f))
	assert.Equal(t, []int{0, 1, 4, 9, 27, 81}, got)
}

func TestSwitchMap_NoItemFromEarlierInnerAfterLaterInner(t *testing.T) {
	// Invariant 5: no item produced by f(a_i) appears after any item
	// produced by f(a_j) for j > i.
	upstream := FromSlice([]string{"a", "b"})
	f := func(s string) Pullable[string] {
		return FromSlice([]string{s + "1", s + "2"})
	}

	got := drainAll(SwitchMap(upstream, f))
	lastA := -1
	firstB := -1
	for i, v := range got {
		if v == "a1" || v == "a2" {
			lastA = i
		}
		if firstB == -1 && (v == "b1" || v == "b2") {
			firstB = i
		}
	}
	if lastA != -1 && firstB != -1 {
		assert.Less(t, lastA, firstB)
	}
}
