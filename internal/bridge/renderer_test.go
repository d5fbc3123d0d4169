package bridge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/application/port/mocks"
	"github.com/bnema/websurface/internal/bridge"
)

func TestRendererRouter_RunsResolveScriptForLiveContext(t *testing.T) {
	// Arrange
	rr := bridge.NewRendererRouter(context.Background(), bridge.DefaultRouterConfig())
	target := mocks.NewMockScriptTarget(t)
	target.EXPECT().ID().Return(port.BrowserID(1))
	target.EXPECT().
		ExecuteJavaScript(`if (window.__surfaceQueryResolve) { window.__surfaceQueryResolve(3, true, "{\"success\":true}", 0, ""); }`, "").
		Once()
	rr.OnContextCreated(target)

	// Act
	handled := rr.OnProcessMessageReceived(target, port.ProcessMessage{
		Name:     bridge.DefaultQueryFunction,
		QueryID:  3,
		Success:  true,
		Response: `{"success":true}`,
	})

	// Assert
	assert.True(t, handled)
	assert.True(t, rr.HasContext(1))
}

func TestRendererRouter_DropsRepliesAfterRelease(t *testing.T) {
	rr := bridge.NewRendererRouter(context.Background(), bridge.DefaultRouterConfig())
	target := mocks.NewMockScriptTarget(t)
	target.EXPECT().ID().Return(port.BrowserID(2))
	rr.OnContextCreated(target)
	rr.OnContextReleased(2)

	handled := rr.OnProcessMessageReceived(target, port.ProcessMessage{Name: bridge.DefaultQueryFunction, QueryID: 1})

	assert.True(t, handled)
	assert.False(t, rr.HasContext(2))
}

func TestRendererRouter_IgnoresOtherMessages(t *testing.T) {
	rr := bridge.NewRendererRouter(context.Background(), bridge.DefaultRouterConfig())
	target := mocks.NewMockScriptTarget(t)

	assert.False(t, rr.OnProcessMessageReceived(target, port.ProcessMessage{Name: "other"}))
	assert.False(t, rr.OnProcessMessageReceived(nil, port.ProcessMessage{Name: bridge.DefaultQueryFunction}))
}

func TestResolveScript_EscapesStrings(t *testing.T) {
	script := bridge.ResolveScript(bridge.DefaultRouterConfig(), 4, false, "", -1, `it's "bad"`)
	assert.Equal(t,
		`if (window.__surfaceQueryResolve) { window.__surfaceQueryResolve(4, false, "", -1, "it's \"bad\""); }`,
		script)
}

func TestShimScript_DefinesConfiguredFunctions(t *testing.T) {
	script := bridge.ShimScript(bridge.RouterConfig{QueryFunction: "appQuery", CancelFunction: "appCancel"}, "window.post")

	assert.Contains(t, script, "window.appQuery = function")
	assert.Contains(t, script, "window.appCancel = function")
	assert.Contains(t, script, "window.__appQueryResolve = function")
	assert.Contains(t, script, `name: "appQuery"`)
	assert.Contains(t, script, "(window.post)(msg)")
	assert.NotContains(t, script, "{{")
}

func TestStateScript(t *testing.T) {
	assert.Equal(t,
		`if (window.updateAppState) { window.updateAppState({"title":"x"}); }`,
		bridge.StateScript(`{"title":"x"}`))
}
