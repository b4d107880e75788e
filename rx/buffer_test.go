package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_FlushesOnCountThreeAndOnUpstreamCompletion(t *testing.T) {
	pred := func(items []int, count int) Completable {
		return Immediate(count%3 == 0)
	}
	got := drainAll(Buffer[int](FromSlice([]int{1, 2, 3, 4, 5}), pred))

	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, got)
}
