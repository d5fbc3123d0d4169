package surface_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/application/port/mocks"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/surface"
)

func newWidget(t *testing.T) *mocks.MockNativeWidget {
	t.Helper()
	return mocks.NewMockNativeWidget(t)
}

func TestShell_UpdateHoleBoundsCommand(t *testing.T) {
	// Arrange
	f := newHostFixture(t)
	shell := surface.NewShell(context.Background(), f.opts)
	w := newWidget(t)
	shell.RegisterHole("preview", w)
	w.EXPECT().SetPosition(10, 20).Once()
	w.EXPECT().SetSize(100, 50).Once()

	// Act
	resp := shell.Bridge().HandleCommand(
		`{"type":"updateHoleBounds","payload":{"id":"preview","bounds":{"x":10.2,"y":19.6,"width":100,"height":50}}}`)

	// Assert
	assert.Equal(t, `{"success":true}`, resp)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 100, H: 50}, shell.HoleBounds("preview"))
}

func TestShell_UpdateHoleBoundsCommandClampsNegativeOrigin(t *testing.T) {
	f := newHostFixture(t)
	shell := surface.NewShell(context.Background(), f.opts)
	w := newWidget(t)
	shell.RegisterHole("x", w)
	w.EXPECT().SetPosition(0, 0).Once()
	w.EXPECT().SetSize(100, 50).Once()

	resp := shell.Bridge().HandleCommand(
		`{"type":"updateHoleBounds","payload":{"id":"x","bounds":{"x":-40,"y":-12,"width":100,"height":50}}}`)

	assert.Equal(t, `{"success":true}`, resp)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 100, H: 50}, shell.HoleBounds("x"))
}

func TestShell_UpdateHoleBoundsCommandErrors(t *testing.T) {
	f := newHostFixture(t)
	shell := surface.NewShell(context.Background(), f.opts)

	tests := []struct {
		name    string
		request string
		want    string
	}{
		{name: "no payload", request: `{"type":"updateHoleBounds"}`, want: "Missing hole id"},
		{name: "no id", request: `{"type":"updateHoleBounds","payload":{"bounds":{}}}`, want: "Missing hole id"},
		{name: "bad bounds", request: `{"type":"updateHoleBounds","payload":{"id":"a","bounds":"big"}}`, want: "Invalid updateHoleBounds payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := shell.Bridge().HandleCommand(tt.request)
			assert.Contains(t, resp, `"success":false`)
			assert.Contains(t, resp, tt.want)
		})
	}
}

func TestShell_UnknownHoleIsAcknowledged(t *testing.T) {
	f := newHostFixture(t)
	shell := surface.NewShell(context.Background(), f.opts)

	resp := shell.Bridge().HandleCommand(`{"type":"updateHoleBounds","payload":{"id":"ghost","bounds":{"x":1,"y":1,"width":1,"height":1}}}`)

	assert.Equal(t, `{"success":true}`, resp)
	assert.Empty(t, shell.Holes())
}

func TestSurfaceVariants_BackgroundColours(t *testing.T) {
	tests := []struct {
		name  string
		build func(surface.HostOptions) *surface.Host
		want  uint32
	}{
		{
			name:  "navbar is opaque white",
			build: func(o surface.HostOptions) *surface.Host { return surface.NewNavBar(context.Background(), o, 0).Host },
			want:  0xffffffff,
		},
		{
			name:  "shell is transparent",
			build: func(o surface.HostOptions) *surface.Host { return surface.NewShell(context.Background(), o).Host },
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHostFixture(t)
			f.handle = 42
			f.opts.Settings.BackgroundColor = 0x12345678
			host := tt.build(f.opts)
			f.factory.EXPECT().
				CreateBrowser(mock.Anything, mock.Anything, mock.Anything, "about:blank", port.BrowserSettings{BackgroundColor: tt.want}).
				Return(nil).Once()

			host.LoadURL("about:blank")
			f.queue.RunIdle()
		})
	}
}

func TestNavBar_MinHeight(t *testing.T) {
	f := newHostFixture(t)

	assert.Equal(t, surface.NavBarMinHeight, surface.NewNavBar(context.Background(), f.opts, 0).MinHeight())
	assert.Equal(t, 60, surface.NewNavBar(context.Background(), f.opts, 60).MinHeight())
}
