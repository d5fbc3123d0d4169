package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStartupTimer_MarkMeasuresSinceLastMark(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	timer := newStartupTimer(clock.now)

	clock.advance(30 * time.Millisecond)
	timer.Mark("prepare")
	clock.advance(50 * time.Millisecond)
	timer.Mark("engine")

	d, ok := timer.Phase("prepare")
	assert.True(t, ok)
	assert.Equal(t, 30*time.Millisecond, d)
	d, ok = timer.Phase("engine")
	assert.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, d)
	assert.Equal(t, 80*time.Millisecond, timer.Total())
	assert.Equal(t, []string{"prepare", "engine"}, timer.Phases())
}

func TestStartupTimer_MarkDurationKeepsFirstOrder(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	timer := newStartupTimer(clock.now)

	timer.MarkDuration("a", time.Second)
	timer.MarkDuration("b", 2*time.Second)
	timer.MarkDuration("a", 3*time.Second)

	d, _ := timer.Phase("a")
	assert.Equal(t, 3*time.Second, d)
	assert.Equal(t, []string{"a", "b"}, timer.Phases())

	_, ok := timer.Phase("missing")
	assert.False(t, ok)

	assert.NotPanics(t, func() { timer.LogDebug(context.Background()) })
}
