package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jwijenbergh/purego"
	"github.com/jwijenbergh/puregotk/pkg/core"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/logging"
)

// ErrLibraryNotFound is returned when no candidate engine library could be opened.
var ErrLibraryNotFound = errors.New("webkit library not found")

// DefaultLibraries are tried after the paths puregotk reports.
var DefaultLibraries = []string{
	"libwebkitgtk-6.0.so.4",
	"libjavascriptcoregtk-6.0.so.1",
}

// LibraryLoader opens the WebKitGTK shared libraries with global symbol
// visibility so the bindings resolve against them.
type LibraryLoader struct {
	ctx        context.Context
	candidates func() []string
	open       func(path string) (uintptr, error)
	close      func(handle uintptr) error

	mu      sync.Mutex
	handles []uintptr
}

var (
	_ port.LibraryLoader = (*LibraryLoader)(nil)
	_ port.LibraryProbe  = (*LibraryLoader)(nil)
)

// NewLibraryLoader creates a loader using purego.
func NewLibraryLoader(ctx context.Context) *LibraryLoader {
	if ctx == nil {
		ctx = context.Background()
	}
	return &LibraryLoader{
		ctx:        logging.WithComponent(ctx, "library-loader"),
		candidates: libraryCandidates,
		open: func(path string) (uintptr, error) {
			return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		},
		close: purego.Dlclose,
	}
}

func libraryCandidates() []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range [][]string{core.GetPaths("WEBKIT"), core.GetPaths("JAVASCRIPTCORE"), DefaultLibraries} {
		for _, p := range group {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// LoadInMain opens the engine libraries in the host process.
func (l *LibraryLoader) LoadInMain() error {
	return l.load("main")
}

// LoadInHelper opens the engine libraries in an auxiliary process.
func (l *LibraryLoader) LoadInHelper() error {
	return l.load("helper")
}

func (l *LibraryLoader) load(role string) error {
	log := logging.FromContext(l.ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.handles) > 0 {
		return nil
	}

	var errs []error
	for _, path := range l.candidates() {
		h, err := l.open(path)
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("failed to open library")
			errs = append(errs, err)
			continue
		}
		l.handles = append(l.handles, h)
	}
	if len(l.handles) == 0 {
		return fmt.Errorf("%s: %w", role, errors.Join(append([]error{ErrLibraryNotFound}, errs...)...))
	}
	log.Debug().Str("role", role).Int("libraries", len(l.handles)).Msg("engine libraries loaded")
	return nil
}

// Unload closes every opened library.
func (l *LibraryLoader) Unload() {
	l.mu.Lock()
	handles := l.handles
	l.handles = nil
	l.mu.Unlock()

	for _, h := range handles {
		if err := l.close(h); err != nil {
			logging.FromContext(l.ctx).Debug().Err(err).Msg("failed to close library")
		}
	}
}

// Loaded reports how many libraries are open.
func (l *LibraryLoader) Loaded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handles)
}

// Probe opens and closes every candidate once, without keeping any loaded.
func (l *LibraryLoader) Probe() []port.LibraryStatus {
	candidates := l.candidates()
	out := make([]port.LibraryStatus, 0, len(candidates))
	for _, path := range candidates {
		st := port.LibraryStatus{Path: path}
		h, err := l.open(path)
		if err != nil {
			st.Error = err.Error()
		} else {
			st.OK = true
			if cerr := l.close(h); cerr != nil {
				logging.FromContext(l.ctx).Debug().Err(cerr).Msg("failed to close probed library")
			}
		}
		out = append(out, st)
	}
	return out
}
