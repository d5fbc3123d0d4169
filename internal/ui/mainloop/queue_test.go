package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueue_RunIdleIsFIFOAndDrainsNestedWork(t *testing.T) {
	q := NewQueue()
	var order []string

	q.CallAfter(func() {
		order = append(order, "a")
		q.CallAfter(func() { order = append(order, "c") })
	})
	q.CallAfter(func() { order = append(order, "b") })

	assert.Equal(t, 2, q.Pending())
	assert.Equal(t, 3, q.RunIdle())
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Zero(t, q.Pending())
}

func TestQueue_NothingRunsUntilDrained(t *testing.T) {
	q := NewQueue()
	ran := false
	q.CallAfter(func() { ran = true })

	assert.False(t, ran)
	q.RunIdle()
	assert.True(t, ran)
}

func TestQueue_EveryFiresPerInterval(t *testing.T) {
	q := NewQueue()
	ticks := 0
	stop := q.Every(16*time.Millisecond, func() bool {
		ticks++
		return true
	})

	q.Advance(15 * time.Millisecond)
	assert.Equal(t, 0, ticks)

	q.Advance(50 * time.Millisecond)
	assert.Equal(t, 4, ticks)

	stop()
	q.Advance(time.Second)
	assert.Equal(t, 4, ticks)
}

func TestQueue_EveryStopsWhenCallbackReturnsFalse(t *testing.T) {
	q := NewQueue()
	ticks := 0
	q.Every(10*time.Millisecond, func() bool {
		ticks++
		return ticks < 2
	})

	q.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, ticks)
}

func TestQueue_CoalescerOverQueue(t *testing.T) {
	q := NewQueue()
	c := NewCoalescer(q.CallAfter)

	pushed := ""
	c.Post("state", func() { pushed = "first" })
	c.Post("state", func() { pushed = "second" })

	assert.Equal(t, 1, q.Pending())
	q.RunIdle()
	assert.Equal(t, "second", pushed)
}
