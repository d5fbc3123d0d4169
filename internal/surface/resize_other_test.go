//go:build !windows && !darwin

package surface_test

import (
	"context"
	"testing"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/surface"
)

func TestHost_OnSizeNotifiesBrowser(t *testing.T) {
	f := newHostFixture(t)
	f.handle = 42
	host := surface.NewHost(context.Background(), "test", f.opts)
	var client port.BrowserClient
	f.expectCreate("about:blank", &client).Once()
	host.LoadURL("about:blank")
	f.queue.RunIdle()
	b := newBrowser(t, 1)
	attach(t, client, b)

	b.EXPECT().WasResized().Once()
	host.OnSize()
}

func TestShell_OnSizeRepositionsPanels(t *testing.T) {
	f := newHostFixture(t)
	f.handle = 42
	shell := surface.NewShell(context.Background(), f.opts)
	var client port.BrowserClient
	f.expectCreate("about:blank", &client).Once()
	shell.LoadURL("about:blank")
	f.queue.RunIdle()
	b := newBrowser(t, 1)
	attach(t, client, b)

	w := newWidget(t)
	shell.RegisterHole("preview", w)
	w.EXPECT().SetPosition(0, 0).Times(2)
	w.EXPECT().SetSize(320, 200).Times(2)
	shell.UpdateHoleBounds("preview", entity.Rect{W: 320, H: 200})

	b.EXPECT().WasResized().Once()
	shell.OnSize()
}
