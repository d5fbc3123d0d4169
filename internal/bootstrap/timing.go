// Package bootstrap starts websurface: helper processes, the engine session
// and the GTK application.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/websurface/internal/logging"
)

// StartupTimer tracks how long each startup phase took.
type StartupTimer struct {
	start  time.Time
	phases map[string]time.Duration
	order  []string
	last   time.Time
	mu     sync.Mutex
	now    func() time.Time
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	t := now()
	return &StartupTimer{
		start:  t,
		phases: make(map[string]time.Duration),
		last:   t,
		now:    now,
	}
}

// Mark records the time since the previous mark (or start) for phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.record(phase, now.Sub(t.last))
	t.last = now
}

// MarkDuration records a duration measured elsewhere.
func (t *StartupTimer) MarkDuration(phase string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record(phase, d)
}

func (t *StartupTimer) record(phase string, d time.Duration) {
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = d
}

// Phase returns the recorded duration of phase.
func (t *StartupTimer) Phase(phase string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.phases[phase]
	return d, ok
}

// Phases returns phase names in the order they were first recorded.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Total returns the time elapsed since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now().Sub(t.start)
}

// LogDebug writes every phase to the context logger at debug level.
func (t *StartupTimer) LogDebug(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", t.now().Sub(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
