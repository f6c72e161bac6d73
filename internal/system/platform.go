package system

import (
	"os"
	"runtime"
	"strings"
)

// procVersionPath is the kernel banner consulted for WSL detection.
const procVersionPath = "/proc/version"

// Platform returns the effective platform identifier used for installer
// matching: "darwin", "linux", "windows", or "wsl" when a Linux kernel runs
// inside the Windows compatibility layer. Detection happens only here;
// everything below this function takes the platform as an explicit string.
func Platform() string {
	return platformFrom(runtime.GOOS, os.Getenv, procVersionPath)
}

func platformFrom(goos string, getenv func(string) string, procVersion string) string {
	if goos != "linux" {
		return goos
	}
	if getenv("WSL_DISTRO_NAME") != "" || getenv("WSL_INTEROP") != "" {
		return "wsl"
	}
	if b, err := os.ReadFile(procVersion); err == nil {
		if strings.Contains(strings.ToLower(string(b)), "microsoft") {
			return "wsl"
		}
	}
	return "linux"
}

// PlatformMatches reports whether a recipe restricted to platforms applies
// on the given platform. An empty restriction applies everywhere. WSL is a
// refinement of Linux: on "wsl" both "wsl" and "linux" entries match.
func PlatformMatches(platform string, platforms []string) bool {
	if len(platforms) == 0 {
		return true
	}
	for _, p := range platforms {
		if p == platform {
			return true
		}
		if platform == "wsl" && p == "linux" {
			return true
		}
	}
	return false
}
