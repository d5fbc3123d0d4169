// Package model holds the in-memory application model the surfaces present.
package model

import (
	"fmt"
	"sync"

	"github.com/bnema/websurface/internal/application/usecase"
	"github.com/bnema/websurface/internal/domain/entity"
)

// WindowActions are the window operations web content may trigger.
type WindowActions interface {
	Minimize()
	ToggleMaximize()
	Close()
}

// Workspace is a document with an undo history and a set of visible tabs.
type Workspace struct {
	mu       sync.Mutex
	title    string
	active   entity.TabID
	visible  map[entity.TabID]bool
	edits    []string
	cursor   int // number of applied edits
	savedAt  int
	window   WindowActions
	onChange []func()
}

var _ usecase.AppController = (*Workspace)(nil)

// DefaultVisibleTabs are shown in a new workspace.
var DefaultVisibleTabs = []entity.TabID{
	entity.TabHome,
	entity.TabPrepare,
	entity.TabPreview,
	entity.TabProject,
}

// NewWorkspace creates a workspace on the prepare tab. window may be nil.
func NewWorkspace(title string, window WindowActions) *Workspace {
	w := &Workspace{
		title:   title,
		active:  entity.TabPrepare,
		visible: make(map[entity.TabID]bool, len(entity.AllTabs)),
		window:  window,
	}
	for _, t := range entity.AllTabs {
		w.visible[t] = false
	}
	for _, t := range DefaultVisibleTabs {
		w.visible[t] = true
	}
	return w
}

// OnChange registers fn to run after every state change.
func (w *Workspace) OnChange(fn func()) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	w.onChange = append(w.onChange, fn)
	w.mu.Unlock()
}

// changed must be called without w.mu held.
func (w *Workspace) changed() {
	w.mu.Lock()
	fns := make([]func(), len(w.onChange))
	copy(fns, w.onChange)
	w.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// State returns a fresh snapshot.
func (w *Workspace) State() entity.AppState {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := entity.NewAppState()
	st.ActiveTabID = w.active
	for id, v := range w.visible {
		st.TabVisibility[id] = v
	}
	st.Title = w.title
	st.HasUnsavedChanges = w.cursor != w.savedAt
	st.CanUndo = w.cursor > 0
	st.CanRedo = w.cursor < len(w.edits)
	st.CanSave = st.HasUnsavedChanges
	return st
}

// SelectTab activates a known, visible tab.
func (w *Workspace) SelectTab(id entity.TabID) error {
	w.mu.Lock()
	if !id.IsKnown() || !w.visible[id] {
		w.mu.Unlock()
		return fmt.Errorf("select %q: %w", id, usecase.ErrTabUnavailable)
	}
	if w.active == id {
		w.mu.Unlock()
		return nil
	}
	w.active = id
	w.mu.Unlock()
	w.changed()
	return nil
}

// SetTabVisible shows or hides a tab. Hiding the active tab moves to prepare.
func (w *Workspace) SetTabVisible(id entity.TabID, visible bool) {
	if !id.IsKnown() {
		return
	}
	w.mu.Lock()
	w.visible[id] = visible
	if !visible && w.active == id {
		w.active = entity.TabPrepare
		w.visible[entity.TabPrepare] = true
	}
	w.mu.Unlock()
	w.changed()
}

// Edit records a document change and drops the redo tail.
func (w *Workspace) Edit(description string) {
	w.mu.Lock()
	w.edits = append(w.edits[:w.cursor], description)
	w.cursor = len(w.edits)
	if w.savedAt > w.cursor {
		w.savedAt = -1
	}
	w.mu.Unlock()
	w.changed()
}

// Save marks the current edit as saved.
func (w *Workspace) Save() {
	w.mu.Lock()
	w.savedAt = w.cursor
	w.mu.Unlock()
	w.changed()
}

// Undo reverts the last applied edit.
func (w *Workspace) Undo() {
	w.mu.Lock()
	if w.cursor == 0 {
		w.mu.Unlock()
		return
	}
	w.cursor--
	w.mu.Unlock()
	w.changed()
}

// Redo reapplies the next edit.
func (w *Workspace) Redo() {
	w.mu.Lock()
	if w.cursor >= len(w.edits) {
		w.mu.Unlock()
		return
	}
	w.cursor++
	w.mu.Unlock()
	w.changed()
}

// Minimize iconifies the main window.
func (w *Workspace) Minimize() {
	if w.window != nil {
		w.window.Minimize()
	}
}

// ToggleMaximize maximizes or restores the main window.
func (w *Workspace) ToggleMaximize() {
	if w.window != nil {
		w.window.ToggleMaximize()
	}
}

// Close closes the main window.
func (w *Workspace) Close() {
	if w.window != nil {
		w.window.Close()
	}
}

// SetWindow attaches the window once it exists.
func (w *Workspace) SetWindow(window WindowActions) {
	w.mu.Lock()
	w.window = window
	w.mu.Unlock()
}
