package tools

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// versionArgs are tried in order when probing an executable for its version.
var versionArgs = [][]string{{"--version"}, {"-v"}}

// Installed reports whether t's executable resolves on PATH.
func Installed(t ToolInfo) bool {
	_, err := exec.LookPath(t.Executable)
	return err == nil
}

// Check detects the install state of t: PATH probe first, npm global list
// as a fallback, plus a registry query so callers can show upgrade hints.
func Check(t ToolInfo) CheckResult {
	latest := ""
	if t.Package != "" {
		ctxL, cancelL := context.WithTimeout(context.Background(), 6*time.Second)
		latest, _ = NpmLatestVersion(ctxL, t.Package)
		cancelL()
	}

	if path, err := exec.LookPath(t.Executable); err == nil {
		for _, args := range versionArgs {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			out, err := runCmd(ctx, path, args...)
			cancel()
			if err != nil || strings.TrimSpace(out) == "" {
				continue
			}
			ver := ParseVersion(out)
			if ver == "" {
				ver = strings.Split(strings.TrimSpace(out), "\n")[0]
			}
			return CheckResult{Installed: true, Version: ver, Source: t.Executable + " " + strings.Join(args, " "), Latest: latest}
		}
		// Binary found but no usable version output; still installed.
		return CheckResult{Installed: true, Source: t.Executable, Latest: latest}
	}

	if t.Package != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ver, err := NpmGlobalVersion(ctx, t.Package)
		if err == nil && ver != "" {
			return CheckResult{Installed: true, Version: ver, Source: "npm -g", Latest: latest}
		}
		if err != nil && !errors.Is(err, exec.ErrNotFound) {
			return CheckResult{Installed: false, Err: err.Error(), Latest: latest}
		}
	}

	return CheckResult{Installed: false, Err: "no executable on PATH and no npm record", Latest: latest}
}
