package entity

// BrowserState is the lifecycle state of a hosted browser session.
type BrowserState int

const (
	BrowserUnattached BrowserState = iota
	BrowserCreated
	BrowserNavigating
	BrowserLoaded
	BrowserClosing
	BrowserClosed
)

func (s BrowserState) String() string {
	switch s {
	case BrowserUnattached:
		return "unattached"
	case BrowserCreated:
		return "created"
	case BrowserNavigating:
		return "navigating"
	case BrowserLoaded:
		return "loaded"
	case BrowserClosing:
		return "closing"
	case BrowserClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// HasBrowser reports whether a native browser is expected to be live in this state.
func (s BrowserState) HasBrowser() bool {
	switch s {
	case BrowserCreated, BrowserNavigating, BrowserLoaded, BrowserClosing:
		return true
	default:
		return false
	}
}
