// Package assets embeds the default surface pages.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed web
var Web embed.FS

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Install copies the embedded pages under dir, keeping files that already
// exist. It returns the number of files written.
func Install(dir string) (int, error) {
	written := 0
	err := fs.WalkDir(Web, "web", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, dirPerm)
		}
		if _, statErr := os.Stat(target); statErr == nil {
			return nil
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return statErr
		}
		data, err := Web.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, filePerm); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("install web assets in %s: %w", dir, err)
	}
	return written, nil
}
