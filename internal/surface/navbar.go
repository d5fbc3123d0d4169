package surface

import (
	"context"

	"github.com/bnema/websurface/internal/application/port"
)

// NavBarMinHeight is the minimum height of the navigation bar.
const NavBarMinHeight = 46

// NavBar is the opaque top navigation strip.
type NavBar struct {
	*Host
	minHeight int
}

// NewNavBar creates a navigation bar host. A non-positive minHeight uses
// NavBarMinHeight.
func NewNavBar(ctx context.Context, opts HostOptions, minHeight int) *NavBar {
	if minHeight <= 0 {
		minHeight = NavBarMinHeight
	}
	opts.Settings.BackgroundColor = port.ARGB(0xff, 0xff, 0xff, 0xff)
	return &NavBar{
		Host:      NewHost(ctx, "navbar", opts),
		minHeight: minHeight,
	}
}

// MinHeight returns the minimum height the native container must keep.
func (n *NavBar) MinHeight() int {
	return n.minHeight
}
