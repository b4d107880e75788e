package rxtimer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamkit/rxstream/rx"
)

func TestTimer_FiresAfterDuration(t *testing.T) {
	tm := After(10 * time.Millisecond)
	w := &rx.FlagWaker{}
	cx := rx.NewContext(w)

	assert.Equal(t, rx.Pending, tm.Poll(cx))

	require.Eventually(t, func() bool {
		return tm.Poll(cx).Ready
	}, time.Second, 5*time.Millisecond)
}

func TestManual_FiresOnDemandAndWakesRegisteredWaker(t *testing.T) {
	m := NewManual()
	w := &rx.FlagWaker{}
	cx := rx.NewContext(w)

	assert.Equal(t, rx.Pending, m.Poll(cx))
	assert.False(t, w.Woken())

	m.Fire()
	assert.True(t, w.Woken())
	assert.Equal(t, rx.Fired, m.Poll(cx))
}

func TestManualFactory_RemembersCreationOrder(t *testing.T) {
	f := NewManualFactory[int]()
	factory := f.Factory()

	c1 := factory(1)
	c2 := factory(2)
	require.Equal(t, 2, f.Count())

	f.FireAt(1)
	cx := rx.NewContext(rx.NoopWaker{})
	assert.Equal(t, rx.Pending, c1.Poll(cx))
	assert.Equal(t, rx.Fired, c2.Poll(cx))
}
