package port

import "context"

// LogSeverity is the minimum engine log level.
type LogSeverity string

const (
	LogSeverityVerbose LogSeverity = "verbose"
	LogSeverityInfo    LogSeverity = "info"
	LogSeverityWarning LogSeverity = "warning"
	LogSeverityError   LogSeverity = "error"
	LogSeverityDisable LogSeverity = "disable"
)

// EngineSettings is passed to Engine.Initialize.
type EngineSettings struct {
	NoSandbox                bool
	ExternalMessagePump      bool
	MultiThreadedMessageLoop bool

	ResourcesDir string
	LocalesDir   string
	LogSeverity  LogSeverity

	// Switches are engine command-line switches without the leading dashes.
	Switches []string
}

// HasSwitch reports whether name is present in Switches.
func (s EngineSettings) HasSwitch(name string) bool {
	for _, sw := range s.Switches {
		if sw == name {
			return true
		}
	}
	return false
}

// Engine is the process-wide embedded browser engine.
type Engine interface {
	// ExecuteProcess returns a non-negative exit code when args describe a
	// secondary engine process that already ran to completion, -1 otherwise.
	ExecuteProcess(args []string) int
	Initialize(ctx context.Context, settings EngineSettings) error
	// DoMessageLoopWork performs one non-blocking iteration of engine work.
	DoMessageLoopWork()
	Shutdown()
}

// LibraryLoader locates and loads the engine shared libraries.
type LibraryLoader interface {
	LoadInMain() error
	LoadInHelper() error
	Unload()
}

// ScriptTarget is the renderer-side view of a browser: something that can run script.
type ScriptTarget interface {
	ID() BrowserID
	ExecuteJavaScript(code, scriptURL string)
}

// HelperApp is the reduced handler set installed in helper processes.
type HelperApp interface {
	OnContextCreated(target ScriptTarget)
	OnContextReleased(id BrowserID)
	OnProcessMessageReceived(target ScriptTarget, msg ProcessMessage) bool
}

// HelperEngine runs a helper-role process to completion.
type HelperEngine interface {
	ExecuteHelper(ctx context.Context, args []string, app HelperApp) int
}

// LibraryStatus is the outcome of probing one engine library candidate.
type LibraryStatus struct {
	Path  string
	OK    bool
	Error string
}

// LibraryProbe checks engine library candidates without keeping them loaded.
type LibraryProbe interface {
	Probe() []LibraryStatus
}
