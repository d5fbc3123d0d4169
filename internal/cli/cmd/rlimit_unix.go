//go:build linux || darwin

package cmd

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// coreDumpLimit reports the soft RLIMIT_CORE, which decides whether an engine
// crash leaves a core dump behind.
func coreDumpLimit() string {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		return ""
	}
	if limit.Cur == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(limit.Cur, 10)
}
