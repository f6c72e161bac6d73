package tools

import (
	"context"
	"os"
	"os/exec"
)

// runCmd executes a command and returns combined output as a string.
func runCmd(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid pagers and interactive prompts in probes.
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", ctx.Err()
	}
	return string(out), err
}

// RunInstallCommand runs a catalog install recipe. Recipes are authored as
// shell one-liners (pipes, &&), so they run under sh -c. Output is captured
// so callers can surface it on failure.
func RunInstallCommand(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return string(out), ctx.Err()
	}
	return string(out), err
}
