package port

// ErrorCode is a navigation error code reported with LoadError.
type ErrorCode int

const (
	ErrNone    ErrorCode = 0
	ErrFailed  ErrorCode = -2
	ErrAborted ErrorCode = -3
	// ErrTLS covers certificate failures.
	ErrTLS ErrorCode = -200
)

// TerminationStatus describes why a render process went away.
type TerminationStatus int

const (
	TerminationAbnormal TerminationStatus = iota
	TerminationKilled
	TerminationCrashed
	TerminationOutOfMemory
)

func (s TerminationStatus) String() string {
	switch s {
	case TerminationAbnormal:
		return "abnormal"
	case TerminationKilled:
		return "killed"
	case TerminationCrashed:
		return "crashed"
	case TerminationOutOfMemory:
		return "out_of_memory"
	default:
		return "unknown"
	}
}

// BrowserEvent is the closed set of events a BrowserClient receives.
type BrowserEvent interface {
	Browser() NativeBrowser
	browserEvent()
}

// AfterCreated fires once the native browser exists.
type AfterCreated struct {
	Target NativeBrowser
}

// LoadStart fires when the main frame starts loading.
type LoadStart struct {
	Target NativeBrowser
	URL    string
}

// LoadEnd fires when the main frame finished loading.
type LoadEnd struct {
	Target         NativeBrowser
	HTTPStatusCode int
}

// LoadError fires when a navigation fails.
type LoadError struct {
	Target    NativeBrowser
	Code      ErrorCode
	Text      string
	FailedURL string
}

// BeforeBrowse fires before the main frame navigates away.
type BeforeBrowse struct {
	Target      NativeBrowser
	URL         string
	UserGesture bool
	IsRedirect  bool
}

// ProcessMessage carries router traffic between renderer and browser sides.
type ProcessMessage struct {
	Name       string `json:"name"`
	QueryID    int64  `json:"id"`
	Request    string `json:"request,omitempty"`
	Persistent bool   `json:"persistent,omitempty"`

	// Response fields, set on browser -> renderer messages.
	Success      bool   `json:"success,omitempty"`
	Response     string `json:"response,omitempty"`
	ErrorCode    int    `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// ProcessMessageReceived fires when the renderer side posts a message.
type ProcessMessageReceived struct {
	Target  NativeBrowser
	Message ProcessMessage
}

// RenderProcessTerminated fires when the web content process dies.
type RenderProcessTerminated struct {
	Target NativeBrowser
	Status TerminationStatus
	Code   int
}

// BeforeClose fires right before the native browser is destroyed.
type BeforeClose struct {
	Target NativeBrowser
}

func (e AfterCreated) Browser() NativeBrowser            { return e.Target }
func (e LoadStart) Browser() NativeBrowser               { return e.Target }
func (e LoadEnd) Browser() NativeBrowser                 { return e.Target }
func (e LoadError) Browser() NativeBrowser               { return e.Target }
func (e BeforeBrowse) Browser() NativeBrowser            { return e.Target }
func (e ProcessMessageReceived) Browser() NativeBrowser  { return e.Target }
func (e RenderProcessTerminated) Browser() NativeBrowser { return e.Target }
func (e BeforeClose) Browser() NativeBrowser             { return e.Target }

func (AfterCreated) browserEvent()            {}
func (LoadStart) browserEvent()               {}
func (LoadEnd) browserEvent()                 {}
func (LoadError) browserEvent()               {}
func (BeforeBrowse) browserEvent()            {}
func (ProcessMessageReceived) browserEvent()  {}
func (RenderProcessTerminated) browserEvent() {}
func (BeforeClose) browserEvent()             {}
