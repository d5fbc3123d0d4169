//go:build darwin

package surface

import (
	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
)

func resizeBrowser(b port.NativeBrowser, _ entity.Size) {
	b.NotifyMoveOrResizeStarted()
}
