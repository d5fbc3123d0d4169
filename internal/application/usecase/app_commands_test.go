package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/internal/application/usecase"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/ui/mainloop"
)

type fakeApp struct {
	state     entity.AppState
	selectErr error
	calls     []string
}

func newFakeApp() *fakeApp {
	s := entity.NewAppState()
	s.TabVisibility[entity.TabHome] = true
	s.TabVisibility[entity.TabPrepare] = true
	s.Title = "untitled"
	return &fakeApp{state: s}
}

func (a *fakeApp) State() entity.AppState { return a.state }

func (a *fakeApp) SelectTab(id entity.TabID) error {
	if a.selectErr != nil {
		return a.selectErr
	}
	a.calls = append(a.calls, "select:"+string(id))
	a.state.ActiveTabID = id
	return nil
}

func (a *fakeApp) Save()           { a.calls = append(a.calls, "save") }
func (a *fakeApp) Undo()           { a.calls = append(a.calls, "undo") }
func (a *fakeApp) Redo()           { a.calls = append(a.calls, "redo") }
func (a *fakeApp) Minimize()       { a.calls = append(a.calls, "minimize") }
func (a *fakeApp) ToggleMaximize() { a.calls = append(a.calls, "maximize") }
func (a *fakeApp) Close()          { a.calls = append(a.calls, "close") }

func setup(t *testing.T) (*bridge.Bridge, *fakeApp, *mainloop.Queue, *int) {
	t.Helper()
	b := bridge.New(context.Background())
	app := newFakeApp()
	q := mainloop.NewQueue()
	resyncs := 0
	usecase.RegisterAppCommands(context.Background(), b, app, q, func() { resyncs++ })
	return b, app, q, &resyncs
}

func TestAppCommands_GetState(t *testing.T) {
	// Arrange
	b, app, _, _ := setup(t)
	app.state.CanUndo = true

	// Act
	resp := b.HandleCommand(`{"type":"getState"}`)

	// Assert
	var decoded struct {
		Success bool            `json:"success"`
		State   entity.AppState `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp), &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, app.state, decoded.State)
	assert.Contains(t, resp, `"activeTabId":"prepare"`)
}

func TestAppCommands_SelectTab(t *testing.T) {
	tests := []struct {
		name      string
		request   string
		want      string
		wantCalls []string
	}{
		{
			name:      "visible tab",
			request:   `{"type":"selectTab","payload":{"tabId":"home"}}`,
			want:      `{"success":true}`,
			wantCalls: []string{"select:home"},
		},
		{
			name:    "hidden tab",
			request: `{"type":"selectTab","payload":{"tabId":"device"}}`,
			want:    `{"success":false,"error":"Unknown or unavailable tabId: device"}`,
		},
		{
			name:    "unknown tab",
			request: `{"type":"selectTab","payload":{"tabId":"kitchen"}}`,
			want:    `{"success":false,"error":"Unknown or unavailable tabId: kitchen"}`,
		},
		{
			name:    "missing tab id",
			request: `{"type":"selectTab","payload":{}}`,
			want:    `{"success":true}`,
		},
		{
			name:    "missing payload",
			request: `{"type":"selectTab"}`,
			want:    `{"success":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, app, _, _ := setup(t)

			assert.Equal(t, tt.want, b.HandleCommand(tt.request))
			assert.Equal(t, tt.wantCalls, app.calls)
		})
	}
}

func TestAppCommands_SelectTabBadPayload(t *testing.T) {
	b, _, _, _ := setup(t)

	resp := b.HandleCommand(`{"type":"selectTab","payload":{"tabId":7}}`)

	assert.Contains(t, resp, `"success":false`)
	assert.Contains(t, resp, "cannot unmarshal")
}

func TestAppCommands_SelectTabControllerRefusal(t *testing.T) {
	b, app, _, _ := setup(t)
	app.selectErr = usecase.ErrTabUnavailable

	assert.Equal(t, `{"success":false,"error":"Unknown or unavailable tabId: home"}`,
		b.HandleCommand(`{"type":"selectTab","payload":{"tabId":"home"}}`))

	app.selectErr = errors.New("busy slicing")
	assert.Equal(t, `{"success":false,"error":"busy slicing"}`,
		b.HandleCommand(`{"type":"selectTab","payload":{"tabId":"home"}}`))
}

func TestAppCommands_DocumentCommandsScheduleResync(t *testing.T) {
	b, app, q, resyncs := setup(t)

	for _, name := range []string{"save", "undo", "redo"} {
		assert.Equal(t, `{"success":true}`, b.HandleCommand(`{"type":"`+name+`"}`))
	}

	assert.Equal(t, []string{"save", "undo", "redo"}, app.calls)
	assert.Zero(t, *resyncs)
	q.RunIdle()
	assert.Equal(t, 3, *resyncs)
}

func TestAppCommands_WindowCommands(t *testing.T) {
	b, app, q, resyncs := setup(t)

	b.HandleCommand(`{"type":"windowMinimize"}`)
	b.HandleCommand(`{"type":"windowMaximize"}`)
	b.HandleCommand(`{"type":"windowMaximize"}`)
	b.HandleCommand(`{"type":"windowClose"}`)

	assert.Equal(t, []string{"minimize", "maximize", "maximize", "close"}, app.calls)
	q.RunIdle()
	assert.Zero(t, *resyncs)
}
