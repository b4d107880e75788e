package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLatestFrom_DropsUntilOtherHasEmitted(t *testing.T) {
	upstream := make(chan string, 4)
	other := make(chan int, 4)
	p := WithLatestFrom[string, int](FromChannel(upstream), FromChannel(other))
	cx := NewContext(NoopWaker{})

	upstream <- "x"
	assert.True(t, p.Poll(cx).Pending) // dropped: no latest yet

	other <- 1
	upstream <- "y"
	got := p.Poll(cx)
	assert.False(t, got.Pending)
	assert.Equal(t, Tuple2[string, int]{V1: "y", V2: 1}, got.Value)
}

func TestWithLatestFrom_ContinuesAfterOtherCompletes(t *testing.T) {
	other := FromSlice([]int{7})
	upstream := FromSlice([]string{"a", "b"})
	p := WithLatestFrom[string, int](upstream, other)

	got := drainAll(p)
	assert.Equal(t, []Tuple2[string, int]{{V1: "a", V2: 7}, {V1: "b", V2: 7}}, got)
}
