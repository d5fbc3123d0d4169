package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/websurface/internal/application/port"
)

// PkgConfigProbe queries module versions with pkg-config.
type PkgConfigProbe struct {
	lookPath func(string) (string, error)
	run      func(ctx context.Context, env []string, name string, args ...string) ([]byte, error)
}

var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

// NewPkgConfigProbe creates a probe that runs the host pkg-config.
func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
			cmd := exec.CommandContext(ctx, name, args...)
			cmd.Env = env
			return cmd.CombinedOutput()
		},
	}
}

// PkgConfigModVersion returns the installed version of pkgName.
func (p *PkgConfigProbe) PkgConfigModVersion(ctx context.Context, pkgName, prefix string) (string, error) {
	pc, err := p.lookPath("pkg-config")
	if err != nil {
		return "", &port.PkgConfigError{
			Kind:    port.PkgConfigErrorKindCommandMissing,
			Package: pkgName,
			Err:     port.ErrPkgConfigMissing,
		}
	}

	out, err := p.run(ctx, CommandEnvWithPrefix(prefix), pc, "--modversion", pkgName)
	if err != nil {
		return "", &port.PkgConfigError{
			Kind:    port.PkgConfigErrorKindPackageMissing,
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrPkgConfigPackageMissing,
		}
	}
	return strings.TrimSpace(string(out)), nil
}
