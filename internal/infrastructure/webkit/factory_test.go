package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/websurface/internal/application/port"
)

type recordingView struct {
	port.NativeBrowser
	loads []string
}

func (v *recordingView) LoadURL(url string) { v.loads = append(v.loads, url) }

type clientFunc func(ev port.BrowserEvent) bool

func (f clientFunc) HandleEvent(ev port.BrowserEvent) bool { return f(ev) }

func TestStartBrowserLetsClientNavigateLast(t *testing.T) {
	view := &recordingView{}
	var events []port.BrowserEvent
	// The client flushes a URL requested after creation started.
	client := clientFunc(func(ev port.BrowserEvent) bool {
		events = append(events, ev)
		if _, ok := ev.(port.AfterCreated); ok {
			view.LoadURL("file:///res/b.html")
		}
		return true
	})

	var q workQueue
	q.push(func() { startBrowser(view, client, "file:///res/a.html") })
	assert.Equal(t, 1, q.drain())

	assert.Equal(t, []string{"file:///res/a.html", "file:///res/b.html"}, view.loads)
	if assert.Len(t, events, 1) {
		assert.Equal(t, port.AfterCreated{Target: view}, events[0])
	}
}

func TestStartBrowserWithoutURL(t *testing.T) {
	view := &recordingView{}
	created := 0
	client := clientFunc(func(ev port.BrowserEvent) bool {
		if _, ok := ev.(port.AfterCreated); ok {
			created++
		}
		return true
	})

	startBrowser(view, client, "")
	startBrowser(view, nil, "")

	assert.Empty(t, view.loads)
	assert.Equal(t, 1, created)
}
