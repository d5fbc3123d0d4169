//go:build windows

package surface

import (
	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
)

// The browser owns a child HWND that must follow the client rectangle.
func resizeBrowser(b port.NativeBrowser, client entity.Size) {
	b.SetBounds(entity.Rect{W: client.W, H: client.H})
}
