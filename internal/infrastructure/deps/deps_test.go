package deps

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/internal/application/port"
)

func TestPrependPathList(t *testing.T) {
	got := prependPathList("/usr/lib: /a ::/usr/lib", "/a", " ", "/b")
	assert.Equal(t, "/a:/b:/usr/lib", got)
}

func TestPrefixedEnv(t *testing.T) {
	assert.Nil(t, prefixedEnv("  ", func(string) string { return "" }))

	env := prefixedEnv("/opt/webkit/", func(key string) string {
		if key == "LD_LIBRARY_PATH" {
			return "/usr/lib"
		}
		return ""
	})

	keys := make([]string, 0, len(env))
	values := map[string]string{}
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		require.True(t, ok)
		keys = append(keys, k)
		values[k] = v
	}
	assert.Equal(t, []string{"GI_TYPELIB_PATH", "LD_LIBRARY_PATH", "PKG_CONFIG_PATH", "XDG_DATA_DIRS"}, keys)
	assert.True(t, strings.HasPrefix(values["LD_LIBRARY_PATH"], "/opt/webkit/lib:"))
	assert.True(t, strings.HasSuffix(values["LD_LIBRARY_PATH"], ":/usr/lib"))
	assert.Contains(t, values["PKG_CONFIG_PATH"], "/opt/webkit/share/pkgconfig")
	assert.Equal(t, "/opt/webkit/share", values["XDG_DATA_DIRS"])
}

func TestCommandEnvWithPrefixReplacesKeys(t *testing.T) {
	t.Setenv("PKG_CONFIG_PATH", "/usr/share/pkgconfig")

	env := CommandEnvWithPrefix("/opt/webkit")

	count := 0
	for _, kv := range env {
		if strings.HasPrefix(kv, "PKG_CONFIG_PATH=") {
			count++
			assert.Contains(t, kv, "/opt/webkit/lib/pkgconfig")
			assert.True(t, strings.HasSuffix(kv, ":/usr/share/pkgconfig"))
		}
	}
	assert.Equal(t, 1, count)
}

func TestPkgConfigProbe(t *testing.T) {
	t.Run("command missing", func(t *testing.T) {
		p := &PkgConfigProbe{lookPath: func(string) (string, error) { return "", errors.New("not found") }}

		_, err := p.PkgConfigModVersion(context.Background(), "gtk4", "")

		require.ErrorIs(t, err, port.ErrPkgConfigMissing)
		var pcErr *port.PkgConfigError
		require.ErrorAs(t, err, &pcErr)
		assert.Equal(t, port.PkgConfigErrorKindCommandMissing, pcErr.Kind)
	})

	t.Run("package missing", func(t *testing.T) {
		p := &PkgConfigProbe{
			lookPath: func(string) (string, error) { return "/usr/bin/pkg-config", nil },
			run: func(context.Context, []string, string, ...string) ([]byte, error) {
				return []byte("Package gtk4 was not found\n"), errors.New("exit status 1")
			},
		}

		_, err := p.PkgConfigModVersion(context.Background(), "gtk4", "")

		require.ErrorIs(t, err, port.ErrPkgConfigPackageMissing)
		assert.Contains(t, err.Error(), "Package gtk4 was not found")
	})

	t.Run("version", func(t *testing.T) {
		var gotArgs []string
		p := &PkgConfigProbe{
			lookPath: func(string) (string, error) { return "/usr/bin/pkg-config", nil },
			run: func(_ context.Context, _ []string, name string, args ...string) ([]byte, error) {
				gotArgs = append([]string{name}, args...)
				return []byte("2.50.1\n"), nil
			},
		}

		v, err := p.PkgConfigModVersion(context.Background(), "webkitgtk-6.0", "")

		require.NoError(t, err)
		assert.Equal(t, "2.50.1", v)
		assert.Equal(t, []string{"/usr/bin/pkg-config", "--modversion", "webkitgtk-6.0"}, gotArgs)
	})
}
