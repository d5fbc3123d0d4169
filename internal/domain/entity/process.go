package entity

import "strings"

// ProcessRole says what an invocation of the executable is for.
type ProcessRole string

const (
	// RoleHost is the main application process (no --type argument).
	RoleHost     ProcessRole = ""
	RoleRenderer ProcessRole = "renderer"
	RoleGPU      ProcessRole = "gpu-process"
	RoleUtility  ProcessRole = "utility"
)

const roleFlag = "--type="

// ParseProcessRole extracts the role from process arguments.
// args[0] is the executable path and is ignored.
func ParseProcessRole(args []string) ProcessRole {
	if len(args) < 2 {
		return RoleHost
	}
	for _, arg := range args[1:] {
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, roleFlag) {
			return ProcessRole(strings.TrimPrefix(arg, roleFlag))
		}
	}
	return RoleHost
}

// IsHelper reports whether the role is a secondary engine process.
func (r ProcessRole) IsHelper() bool {
	return r != RoleHost
}
