package entity

// TabID identifies a logical tab of the host application as seen by web content.
type TabID string

const (
	TabHome        TabID = "home"
	TabPrepare     TabID = "prepare"
	TabPreview     TabID = "preview"
	TabDevice      TabID = "device"
	TabMultiDevice TabID = "multi-device"
	TabProject     TabID = "project"
	TabCalibration TabID = "calibration"
	TabAuxiliary   TabID = "auxiliary"
	TabDebugTool   TabID = "debug-tool"
)

// AllTabs lists every tab id known to web content, in display order.
var AllTabs = []TabID{
	TabHome,
	TabPrepare,
	TabPreview,
	TabDevice,
	TabMultiDevice,
	TabProject,
	TabCalibration,
	TabAuxiliary,
	TabDebugTool,
}

// IsKnown reports whether id is one of AllTabs.
func (id TabID) IsKnown() bool {
	for _, t := range AllTabs {
		if t == id {
			return true
		}
	}
	return false
}

// AppState is the snapshot pushed to (or pulled by) hosted web content.
// It is recomputed from live application state every time and never persisted.
type AppState struct {
	ActiveTabID       TabID          `json:"activeTabId"`
	TabVisibility     map[TabID]bool `json:"tabVisibility"`
	Title             string         `json:"title"`
	HasUnsavedChanges bool           `json:"hasUnsavedChanges"`
	CanUndo           bool           `json:"canUndo"`
	CanRedo           bool           `json:"canRedo"`
	CanSave           bool           `json:"canSave"`
}

// NewAppState returns a state with every known tab hidden and "prepare" active.
func NewAppState() AppState {
	visibility := make(map[TabID]bool, len(AllTabs))
	for _, t := range AllTabs {
		visibility[t] = false
	}
	return AppState{
		ActiveTabID:   TabPrepare,
		TabVisibility: visibility,
	}
}

// IsTabVisible reports whether the tab is present in the visibility map and shown.
func (s AppState) IsTabVisible(id TabID) bool {
	return s.TabVisibility[id]
}
