package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_CountThreePinnedScenario(t *testing.T) {
	upstream := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	pred := func(items []int, count int) Completable {
		return Immediate(count%3 == 0)
	}

	outer := Window(upstream, pred)
	inners := drainAll(outer)

	var got [][2]int
	for windowIndex, inner := range inners {
		for _, v := range drainEvents(inner) {
			got = append(got, [2]int{windowIndex, v})
		}
	}

	want := [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 3}, {1, 4}, {1, 5},
		{2, 6}, {2, 7}, {2, 8},
	}
	assert.Equal(t, want, got)
}
