// Package usecase contains the application logic behind the web surfaces.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// ErrTabUnavailable is returned by AppController.SelectTab for unknown or
// hidden tabs.
var ErrTabUnavailable = errors.New("tab unavailable")

// Command names understood by the application surfaces.
const (
	CommandGetState       = "getState"
	CommandSelectTab      = "selectTab"
	CommandSave           = "save"
	CommandUndo           = "undo"
	CommandRedo           = "redo"
	CommandWindowMinimize = "windowMinimize"
	CommandWindowMaximize = "windowMaximize"
	CommandWindowClose    = "windowClose"
)

// StateSource produces the current application state.
type StateSource interface {
	State() entity.AppState
}

// AppController is the host application as seen from web content.
type AppController interface {
	StateSource
	SelectTab(id entity.TabID) error
	Save()
	Undo()
	Redo()
	Minimize()
	// ToggleMaximize maximizes or restores the main window.
	ToggleMaximize()
	Close()
}

// CommandRegistry is where commands get bound.
type CommandRegistry interface {
	RegisterCommand(name string, handler bridge.CommandHandler)
}

// AppCommands implements the application command table.
type AppCommands struct {
	ctx       context.Context
	app       AppController
	scheduler port.Scheduler
	resync    func()
}

// NewAppCommands creates the command table. resync runs on the next idle
// turn after commands that change document state; it may be nil.
func NewAppCommands(ctx context.Context, app AppController, scheduler port.Scheduler, resync func()) *AppCommands {
	if ctx == nil {
		ctx = context.Background()
	}
	return &AppCommands{
		ctx:       logging.WithComponent(ctx, "app-commands"),
		app:       app,
		scheduler: scheduler,
		resync:    resync,
	}
}

// RegisterAppCommands binds the application commands on reg.
func RegisterAppCommands(ctx context.Context, reg CommandRegistry, app AppController, scheduler port.Scheduler, resync func()) *AppCommands {
	c := NewAppCommands(ctx, app, scheduler, resync)
	c.Register(reg)
	return c
}

// Register binds every command on reg.
func (c *AppCommands) Register(reg CommandRegistry) {
	reg.RegisterCommand(CommandGetState, c.getState)
	reg.RegisterCommand(CommandSelectTab, c.selectTab)
	reg.RegisterCommand(CommandSave, c.documentCommand(CommandSave, c.app.Save))
	reg.RegisterCommand(CommandUndo, c.documentCommand(CommandUndo, c.app.Undo))
	reg.RegisterCommand(CommandRedo, c.documentCommand(CommandRedo, c.app.Redo))
	reg.RegisterCommand(CommandWindowMinimize, c.windowCommand(CommandWindowMinimize, c.app.Minimize))
	reg.RegisterCommand(CommandWindowMaximize, c.windowCommand(CommandWindowMaximize, c.app.ToggleMaximize))
	reg.RegisterCommand(CommandWindowClose, c.windowCommand(CommandWindowClose, c.app.Close))
}

func (c *AppCommands) getState(string) string {
	state := c.app.State()
	return entity.CommandResponse{Success: true, State: &state}.JSON()
}

type selectTabPayload struct {
	TabID *string `json:"tabId"`
}

func (c *AppCommands) selectTab(payload string) string {
	if payload == "" {
		return entity.SuccessResponse()
	}
	var p selectTabPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return entity.ErrorResponse(err.Error())
	}
	if p.TabID == nil {
		return entity.SuccessResponse()
	}

	id := entity.TabID(*p.TabID)
	if err := c.trySelect(id); err != nil {
		if errors.Is(err, ErrTabUnavailable) {
			return entity.ErrorResponse("Unknown or unavailable tabId: " + *p.TabID)
		}
		return entity.ErrorResponse(err.Error())
	}
	logging.FromContext(c.ctx).Debug().Str("tab_id", string(id)).Msg("tab selected")
	return entity.SuccessResponse()
}

func (c *AppCommands) trySelect(id entity.TabID) error {
	if !id.IsKnown() || !c.app.State().IsTabVisible(id) {
		return fmt.Errorf("select %q: %w", id, ErrTabUnavailable)
	}
	return c.app.SelectTab(id)
}

func (c *AppCommands) documentCommand(name string, action func()) bridge.CommandHandler {
	return func(string) string {
		action()
		logging.FromContext(c.ctx).Debug().Str("command", name).Msg("document command")
		if c.resync != nil && c.scheduler != nil {
			c.scheduler.CallAfter(c.resync)
		}
		return entity.SuccessResponse()
	}
}

func (c *AppCommands) windowCommand(name string, action func()) bridge.CommandHandler {
	return func(string) string {
		logging.FromContext(c.ctx).Debug().Str("command", name).Msg("window command")
		action()
		return entity.SuccessResponse()
	}
}
