package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/logging"
	"github.com/bnema/websurface/internal/ui/mainloop"
)

const stateSyncKey = "app-state"

// StateTarget receives serialized state snapshots.
type StateTarget interface {
	UpdateState(stateJSON string) error
}

// StateSync pushes application state to every attached surface. Bursts of
// Push calls within one loop turn collapse into a single push.
type StateSync struct {
	ctx       context.Context
	source    StateSource
	coalescer *mainloop.Coalescer

	mu      sync.Mutex
	targets []StateTarget
}

// NewStateSync creates a state pusher running on scheduler.
func NewStateSync(ctx context.Context, source StateSource, scheduler port.Scheduler, targets ...StateTarget) *StateSync {
	if ctx == nil {
		ctx = context.Background()
	}
	return &StateSync{
		ctx:       logging.WithComponent(ctx, "state-sync"),
		source:    source,
		coalescer: mainloop.NewCoalescer(scheduler.CallAfter),
		targets:   targets,
	}
}

// AddTarget attaches another surface.
func (s *StateSync) AddTarget(t StateTarget) {
	if t == nil {
		return
	}
	s.mu.Lock()
	s.targets = append(s.targets, t)
	s.mu.Unlock()
}

// Push schedules a push on the next idle turn.
func (s *StateSync) Push() {
	s.coalescer.Post(stateSyncKey, func() {
		if _, err := s.PushNow(); err != nil {
			logging.FromContext(s.ctx).Error().Err(err).Msg("state push failed")
		}
	})
}

// PushNow serializes the state and sends it to every target, returning how
// many accepted it. Targets without a browser are skipped.
func (s *StateSync) PushNow() (int, error) {
	data, err := json.Marshal(s.source.State())
	if err != nil {
		return 0, fmt.Errorf("encode app state: %w", err)
	}

	s.mu.Lock()
	targets := append([]StateTarget(nil), s.targets...)
	s.mu.Unlock()

	delivered := 0
	for _, t := range targets {
		if err := t.UpdateState(string(data)); err != nil {
			logging.FromContext(s.ctx).Trace().Err(err).Msg("state target skipped")
			continue
		}
		delivered++
	}
	return delivered, nil
}

// Destroy drops queued pushes.
func (s *StateSync) Destroy() {
	s.coalescer.Destroy()
}
