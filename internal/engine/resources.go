package engine

import (
	"os"
	"path/filepath"
	"runtime"
)

const fallbackResourcesDir = "./resources"

// ResourcesPath returns the directory holding engine resources and local web
// assets, derived from the executable location.
func ResourcesPath() string {
	exe, err := os.Executable()
	if err != nil {
		return fallbackResourcesDir
	}
	return resourcesPathFor(runtime.GOOS, exe)
}

func resourcesPathFor(goos, exe string) string {
	if exe == "" {
		return fallbackResourcesDir
	}
	dir := filepath.Dir(exe)
	if goos == "darwin" {
		// <bundle>/Contents/MacOS/<exe> -> <bundle>/Contents/Resources
		return filepath.Join(dir, "..", "Resources")
	}
	return filepath.Join(dir, "resources")
}

// LocalesPath returns the locales directory inside resourcesDir.
func LocalesPath(resourcesDir string) string {
	return filepath.Join(resourcesDir, "locales")
}
