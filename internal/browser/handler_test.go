package browser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/application/port/mocks"
	"github.com/bnema/websurface/internal/browser"
	"github.com/bnema/websurface/internal/domain/entity"
)

type recordingEndpoint struct {
	messages   []port.ProcessMessage
	browses    int
	closes     int
	terminated int
	consume    bool
}

func (e *recordingEndpoint) OnProcessMessage(_ port.NativeBrowser, msg port.ProcessMessage) bool {
	e.messages = append(e.messages, msg)
	return e.consume
}

func (e *recordingEndpoint) OnBeforeBrowse(port.NativeBrowser)            { e.browses++ }
func (e *recordingEndpoint) OnBeforeClose(port.NativeBrowser)             { e.closes++ }
func (e *recordingEndpoint) OnRenderProcessTerminated(port.NativeBrowser) { e.terminated++ }

func newBrowser(t *testing.T, id port.BrowserID) *mocks.MockNativeBrowser {
	t.Helper()
	b := mocks.NewMockNativeBrowser(t)
	b.EXPECT().ID().Return(id).Maybe()
	return b
}

func createdHandler(t *testing.T, ep browser.Endpoint) (*browser.Handler, *mocks.MockNativeBrowser, *int) {
	t.Helper()
	h := browser.NewHandler(context.Background(), ep)
	changes := 0
	h.SetStateChangedCallback(func() { changes++ })

	b := newBrowser(t, 1)
	b.EXPECT().WasResized().Once()
	require.True(t, h.HandleEvent(port.AfterCreated{Target: b}))
	return h, b, &changes
}

func TestHandler_AfterCreatedAdoptsFirstBrowserOnly(t *testing.T) {
	// Arrange
	h, first, changes := createdHandler(t, nil)
	second := newBrowser(t, 2)

	// Act
	adopted := h.HandleEvent(port.AfterCreated{Target: second})

	// Assert
	assert.False(t, adopted)
	assert.Same(t, first, h.Browser())
	assert.Equal(t, entity.BrowserCreated, h.State())
	assert.Equal(t, 1, *changes)
}

func TestHandler_LoadCycle(t *testing.T) {
	h, b, changes := createdHandler(t, nil)

	assert.True(t, h.HandleEvent(port.LoadStart{Target: b, URL: "file:///r/index.html"}))
	assert.Equal(t, entity.BrowserNavigating, h.State())

	assert.True(t, h.HandleEvent(port.LoadEnd{Target: b, HTTPStatusCode: 200}))
	assert.Equal(t, entity.BrowserLoaded, h.State())
	assert.Equal(t, 2, *changes)
}

func TestHandler_LoadErrorsDoNotChangeState(t *testing.T) {
	tests := []struct {
		name string
		code port.ErrorCode
	}{
		{name: "aborted", code: port.ErrAborted},
		{name: "failed", code: port.ErrFailed},
		{name: "tls", code: port.ErrTLS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, b, changes := createdHandler(t, nil)

			handled := h.HandleEvent(port.LoadError{Target: b, Code: tt.code, Text: "x", FailedURL: "https://a"})

			assert.True(t, handled)
			assert.Equal(t, entity.BrowserCreated, h.State())
			assert.Same(t, b, h.Browser())
			assert.Equal(t, 1, *changes)
		})
	}
}

func TestHandler_RoutesRouterEvents(t *testing.T) {
	ep := &recordingEndpoint{consume: true}
	h, b, _ := createdHandler(t, ep)
	msg := port.ProcessMessage{Name: "surfaceQuery", QueryID: 1}

	assert.True(t, h.HandleEvent(port.ProcessMessageReceived{Target: b, Message: msg}))
	assert.True(t, h.HandleEvent(port.BeforeBrowse{Target: b, URL: "https://next"}))
	assert.True(t, h.HandleEvent(port.RenderProcessTerminated{Target: b, Status: port.TerminationCrashed}))

	assert.Equal(t, []port.ProcessMessage{msg}, ep.messages)
	assert.Equal(t, 1, ep.browses)
	assert.Equal(t, 1, ep.terminated)
}

func TestHandler_IgnoresEventsForOtherBrowsers(t *testing.T) {
	ep := &recordingEndpoint{consume: true}
	h, _, _ := createdHandler(t, ep)
	stranger := newBrowser(t, 99)

	assert.False(t, h.HandleEvent(port.BeforeBrowse{Target: stranger}))
	assert.False(t, h.HandleEvent(port.ProcessMessageReceived{Target: stranger}))
	assert.False(t, h.HandleEvent(port.BeforeClose{Target: stranger}))
	assert.False(t, h.HandleEvent(nil))

	assert.Zero(t, ep.browses)
	assert.Zero(t, ep.closes)
	assert.Empty(t, ep.messages)
	assert.NotNil(t, h.Browser())
}

func TestHandler_CloseFlow(t *testing.T) {
	ep := &recordingEndpoint{}
	h, b, _ := createdHandler(t, ep)
	b.EXPECT().CloseBrowser(true).Once()

	assert.True(t, h.Close(true))
	assert.False(t, h.Close(true))
	assert.Equal(t, entity.BrowserClosing, h.State())

	h.HandleEvent(port.LoadEnd{Target: b})
	assert.Equal(t, entity.BrowserClosing, h.State())

	assert.True(t, h.HandleEvent(port.BeforeClose{Target: b}))
	assert.Nil(t, h.Browser())
	assert.Equal(t, entity.BrowserClosed, h.State())
	assert.Equal(t, 1, ep.closes)
	assert.False(t, h.Close(true))
}

func TestHandler_CloseWithoutBrowser(t *testing.T) {
	h := browser.NewHandler(context.Background(), nil)

	assert.False(t, h.Close(true))
	assert.Equal(t, entity.BrowserUnattached, h.State())
	assert.Nil(t, h.Browser())
}
