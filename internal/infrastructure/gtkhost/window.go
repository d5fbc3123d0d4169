package gtkhost

import (
	"context"
	"errors"

	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"

	"github.com/bnema/websurface/internal/logging"
)

// ErrWindowCreationFailed is returned when GTK cannot create the window.
var ErrWindowCreationFailed = errors.New("failed to create window")

// Window is the top-level window stacking surface containers vertically.
type Window struct {
	window  *gtk.ApplicationWindow
	rootBox *gtk.Box
	logger  zerolog.Logger
}

// NewWindow creates an application window with an empty vertical layout.
func NewWindow(ctx context.Context, app *gtk.Application, title string, width, height int) (*Window, error) {
	w := &Window{
		logger: logging.FromContext(ctx).With().Str("component", "window").Logger(),
	}

	w.window = gtk.NewApplicationWindow(app)
	if w.window == nil {
		return nil, ErrWindowCreationFailed
	}
	w.window.SetTitle(&title)
	w.window.SetDefaultSize(width, height)

	w.rootBox = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if w.rootBox == nil {
		w.window.Unref()
		return nil, ErrWindowCreationFailed
	}
	w.rootBox.SetHexpand(true)
	w.rootBox.SetVexpand(true)
	w.rootBox.SetVisible(true)
	w.window.SetChild(&w.rootBox.Widget)

	w.logger.Debug().Str("title", title).Int("width", width).Int("height", height).Msg("window created")
	return w, nil
}

// Append packs a container below the previous ones. A positive minHeight
// fixes the container's height; otherwise it takes the remaining space.
func (w *Window) Append(c *Container, minHeight int) {
	widget := c.Widget()
	if widget == nil {
		return
	}
	if minHeight > 0 {
		widget.SetVexpand(false)
		widget.SetSizeRequest(-1, minHeight)
	}
	w.rootBox.Append(widget)
}

// SetTitle updates the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(&title)
}

// Present shows the window.
func (w *Window) Present() { w.window.Present() }

// Minimize iconifies the window.
func (w *Window) Minimize() { w.window.Minimize() }

// ToggleMaximize maximizes or restores the window.
func (w *Window) ToggleMaximize() {
	if w.window.IsMaximized() {
		w.window.Unmaximize()
		return
	}
	w.window.Maximize()
}

// Close requests the window to close.
func (w *Window) Close() { w.window.Close() }
