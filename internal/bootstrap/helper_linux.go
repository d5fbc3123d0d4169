//go:build linux

package bootstrap

import "golang.org/x/sys/unix"

// setParentDeathSignal terminates a helper when the main process dies.
func setParentDeathSignal() error {
	return unix.Prctl(unix.PR_SET_PDEATHSIG, uintptr(unix.SIGTERM), 0, 0, 0)
}
