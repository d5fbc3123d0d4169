package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/assets"
)

func TestInstallWritesMissingPages(t *testing.T) {
	dir := t.TempDir()

	n, err := assets.Install(dir)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	for _, p := range []string{"web/navbar/index.html", "web/shell/index.html", "web/websurface.js"} {
		assert.FileExists(t, filepath.Join(dir, p))
	}
}

func TestInstallKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "web", "shell", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(custom), 0o755))
	require.NoError(t, os.WriteFile(custom, []byte("mine"), 0o644))

	n, err := assets.Install(dir)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))

	n, err = assets.Install(dir)
	require.NoError(t, err)
	assert.Zero(t, n)
}
