package surface

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/bnema/websurface/internal/domain/entity"
)

// CommandUpdateHoleBounds is sent by the page when a hole moves.
const CommandUpdateHoleBounds = "updateHoleBounds"

// Shell is the transparent main surface. Native panels show through the
// holes its page reports.
type Shell struct {
	*Host
	*Compositor
}

// NewShell creates the shell host and registers its layout commands.
func NewShell(ctx context.Context, opts HostOptions) *Shell {
	opts.Settings.BackgroundColor = 0
	s := &Shell{
		Host:       NewHost(ctx, "shell", opts),
		Compositor: NewCompositor(ctx),
	}
	s.RegisterLayoutCommands()
	return s
}

// OnSize resizes the browser and realigns every native panel.
func (s *Shell) OnSize() {
	s.Host.OnSize()
	s.RepositionNativePanels()
}

type holeBoundsPayload struct {
	ID     *string `json:"id"`
	Bounds struct {
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"bounds"`
}

// Page layout reports fractional CSS pixels.
func (p holeBoundsPayload) rect() entity.Rect {
	return entity.Rect{
		X: int(math.Round(p.Bounds.X)),
		Y: int(math.Round(p.Bounds.Y)),
		W: int(math.Round(p.Bounds.Width)),
		H: int(math.Round(p.Bounds.Height)),
	}
}

// RegisterLayoutCommands binds updateHoleBounds on the shell bridge.
func (s *Shell) RegisterLayoutCommands() {
	s.Bridge().RegisterCommand(CommandUpdateHoleBounds, func(payload string) string {
		var p holeBoundsPayload
		if payload == "" {
			return entity.ErrorResponse("Missing hole id")
		}
		if err := json.Unmarshal([]byte(payload), &p); err != nil {
			return entity.ErrorResponse(fmt.Sprintf("Invalid %s payload: %v", CommandUpdateHoleBounds, err))
		}
		if p.ID == nil {
			return entity.ErrorResponse("Missing hole id")
		}
		s.UpdateHoleBounds(*p.ID, p.rect())
		return entity.SuccessResponse()
	})
}
