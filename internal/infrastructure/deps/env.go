// Package deps locates the WebKitGTK runtime on the host.
package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyPrefixEnv prepends the search paths of a manual runtime install to
// the process environment. An empty prefix is a no-op.
func ApplyPrefixEnv(prefix string) error {
	for _, kv := range prefixedEnv(prefix, os.Getenv) {
		key, value, _ := strings.Cut(kv, "=")
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}

// CommandEnvWithPrefix returns os.Environ with the prefix paths prepended,
// suitable for exec.Cmd.Env.
func CommandEnvWithPrefix(prefix string) []string {
	base := os.Environ()
	updates := prefixedEnv(prefix, func(key string) string {
		for _, kv := range base {
			if k, v, ok := strings.Cut(kv, "="); ok && k == key {
				return v
			}
		}
		return ""
	})
	if len(updates) == 0 {
		return base
	}

	replaced := make(map[string]bool, len(updates))
	for _, kv := range updates {
		k, _, _ := strings.Cut(kv, "=")
		replaced[k] = true
	}
	out := make([]string, 0, len(base)+len(updates))
	for _, kv := range base {
		if k, _, ok := strings.Cut(kv, "="); ok && replaced[k] {
			continue
		}
		out = append(out, kv)
	}
	return append(out, updates...)
}

// prefixedEnv returns KEY=VALUE pairs sorted by key.
func prefixedEnv(prefix string, getenv func(string) string) []string {
	if strings.TrimSpace(prefix) == "" {
		return nil
	}
	paths := prefixPaths(filepath.Clean(prefix))
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+prependPathList(getenv(k), paths[k]...))
	}
	return out
}

func prefixPaths(prefix string) map[string][]string {
	libDirs := []string{
		filepath.Join(prefix, "lib"),
		filepath.Join(prefix, "lib64"),
		filepath.Join(prefix, "lib", "x86_64-linux-gnu"),
		filepath.Join(prefix, "lib", "aarch64-linux-gnu"),
	}
	under := func(sub string) []string {
		out := make([]string, 0, len(libDirs))
		for _, d := range libDirs {
			out = append(out, filepath.Join(d, sub))
		}
		return out
	}

	return map[string][]string{
		"PKG_CONFIG_PATH": append(under("pkgconfig"), filepath.Join(prefix, "share", "pkgconfig")),
		"LD_LIBRARY_PATH": libDirs,
		"GI_TYPELIB_PATH": under("girepository-1.0"),
		"XDG_DATA_DIRS":   {filepath.Join(prefix, "share")},
	}
}

// prependPathList puts values in front of a colon-separated list, dropping
// blanks and duplicates.
func prependPathList(existing string, values ...string) string {
	seen := map[string]bool{}
	out := make([]string, 0, len(values)+4)
	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	for _, v := range values {
		add(v)
	}
	if existing != "" {
		for _, v := range strings.Split(existing, ":") {
			add(v)
		}
	}
	return strings.Join(out, ":")
}
