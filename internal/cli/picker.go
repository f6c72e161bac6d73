package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"aiswitch/internal/tools"
)

// formTheme returns the shared huh theme: charm base with the accent color.
func formTheme() *huh.Theme {
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)
	return theme
}

// pickTool asks which catalog tool to launch. An empty key means the prompt
// was canceled.
func pickTool() (tools.ToolKey, error) {
	opts := make([]huh.Option[tools.ToolKey], 0, len(tools.Tools))
	for _, t := range tools.Tools {
		opts = append(opts, huh.NewOption(t.DisplayName, t.Key))
	}
	var key tools.ToolKey
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[tools.ToolKey]().
			Title("Launch which tool?").
			Options(opts...).
			Value(&key),
	)).WithTheme(formTheme())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return key, nil
}

// pickInstaller presents the platform-filtered install choices for t. The
// trailing Cancel choice (and an aborted prompt) yields an empty command.
func pickInstaller(t tools.ToolInfo, platform string) (string, error) {
	choices := tools.InstallerChoices(t, platform)
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Command))
	}
	var command string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(fmt.Sprintf("%s is not installed. Install it?", t.DisplayName)).
			Options(opts...).
			Value(&command),
	)).WithTheme(formTheme())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return command, nil
}
