package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/internal/application/usecase"
	"github.com/bnema/websurface/internal/ui/mainloop"
)

type recordingTarget struct {
	pushed []string
	err    error
}

func (r *recordingTarget) UpdateState(stateJSON string) error {
	if r.err != nil {
		return r.err
	}
	r.pushed = append(r.pushed, stateJSON)
	return nil
}

func TestStateSync_CoalescesBursts(t *testing.T) {
	// Arrange
	app := newFakeApp()
	q := mainloop.NewQueue()
	navbar := &recordingTarget{}
	shell := &recordingTarget{}
	sync := usecase.NewStateSync(context.Background(), app, q, navbar)
	sync.AddTarget(shell)

	// Act
	sync.Push()
	app.state.Title = "part.3mf"
	sync.Push()
	q.RunIdle()

	// Assert
	require.Len(t, navbar.pushed, 1)
	require.Len(t, shell.pushed, 1)
	assert.Contains(t, navbar.pushed[0], `"title":"part.3mf"`)
	assert.Equal(t, navbar.pushed[0], shell.pushed[0])
}

func TestStateSync_SkipsTargetsWithoutBrowser(t *testing.T) {
	app := newFakeApp()
	q := mainloop.NewQueue()
	live := &recordingTarget{}
	detached := &recordingTarget{err: errors.New("no browser attached")}
	sync := usecase.NewStateSync(context.Background(), app, q, detached, live)

	n, err := sync.PushNow()

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, live.pushed, 1)
}

func TestStateSync_DestroyDropsQueuedPush(t *testing.T) {
	app := newFakeApp()
	q := mainloop.NewQueue()
	target := &recordingTarget{}
	sync := usecase.NewStateSync(context.Background(), app, q, target)

	sync.Push()
	sync.Destroy()
	q.RunIdle()

	assert.Empty(t, target.pushed)
}
