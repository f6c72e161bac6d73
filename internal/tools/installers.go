package tools

import (
	"fmt"

	"aiswitch/internal/system"
)

// InstallerChoices returns the install options for t on platform, in catalog
// order, always ending with a Cancel sentinel (even when nothing else
// applies). Recipes without a platform restriction apply everywhere; on WSL
// both "wsl" and "linux" restrictions match.
func InstallerChoices(t ToolInfo, platform string) []InstallerChoice {
	out := make([]InstallerChoice, 0, len(t.Installers)+1)
	for _, r := range t.Installers {
		if !system.PlatformMatches(platform, r.Platforms) {
			continue
		}
		out = append(out, InstallerChoice{
			Label:   fmt.Sprintf("%s: %s", r.Label, r.Command),
			Command: r.Command,
		})
	}
	return append(out, InstallerChoice{Label: "Cancel"})
}

// FastFlag returns the preferred fast-mode flag for t. The catalog orders
// flags most-to-least preferred, so the first entry wins.
func FastFlag(t ToolInfo) (string, bool) {
	if len(t.FastFlags) == 0 {
		return "", false
	}
	return t.FastFlags[0], true
}
