package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/websurface/internal/surface"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "about blank passes through", url: "about:blank", want: "about:blank"},
		{name: "https passes through", url: "https://example.org/a?b=c", want: "https://example.org/a?b=c"},
		{name: "file url passes through", url: "file:///tmp/x.html", want: "file:///tmp/x.html"},
		{name: "custom scheme passes through", url: "app-res+v1:main", want: "app-res+v1:main"},
		{name: "relative file", url: "index.html", want: "file:///opt/app/resources/index.html"},
		{name: "nested relative file", url: "web/shell/index.html", want: "file:///opt/app/resources/web/shell/index.html"},
		{name: "leading slash", url: "/index.html", want: "file:///opt/app/resources/index.html"},
		{name: "colon inside path", url: "dir/a:b.html", want: "file:///opt/app/resources/dir/a:b.html"},
		{name: "empty", url: "", want: surface.BlankURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, surface.ResolveURL("/opt/app/resources", tt.url))
		})
	}
}

func TestHasScheme_DriveLettersAreNotSchemes(t *testing.T) {
	assert.False(t, surface.HasScheme(`C:\app\index.html`))
	assert.False(t, surface.HasScheme("c:/app/index.html"))
	assert.True(t, surface.HasScheme("data:text/html,hi"))
	assert.False(t, surface.HasScheme("1abc:x"))
}
