//go:build linux

package logging

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// CaptureStdout redirects file descriptor 1, which the engine writes console
// messages to, into the context logger. The returned stop restores it.
func CaptureStdout(ctx context.Context) (stop func(), err error) {
	ctx = WithComponent(ctx, "engine-console")

	saved, err := unix.Dup(unix.Stdout)
	if err != nil {
		return nil, fmt.Errorf("dup stdout: %w", err)
	}
	r, w, err := os.Pipe()
	if err != nil {
		_ = unix.Close(saved)
		return nil, fmt.Errorf("create pipe: %w", err)
	}
	if err := unix.Dup3(int(w.Fd()), unix.Stdout, 0); err != nil {
		_ = unix.Close(saved)
		_ = r.Close()
		_ = w.Close()
		return nil, fmt.Errorf("redirect stdout: %w", err)
	}

	go forwardLines(ctx, r, "stdout")

	var once sync.Once
	return func() {
		once.Do(func() {
			if err := unix.Dup3(saved, unix.Stdout, 0); err != nil {
				FromContext(ctx).Warn().Err(err).Msg("failed to restore stdout")
			}
			_ = unix.Close(saved)
			_ = w.Close()
			// Engine subprocesses may still hold the write end.
			_ = r.Close()
		})
	}, nil
}
