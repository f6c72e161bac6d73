package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"aiswitch/internal/config"
	"aiswitch/internal/system"
	"aiswitch/internal/tools"
)

// launchFinishedMsg is emitted when the spawned tool process exits.
type launchFinishedMsg struct{ err error }

// launchModel runs the external tool via Bubble Tea's ExecProcess so the
// terminal state is properly restored when the process exits.
type launchModel struct {
	name string
	cmd  *exec.Cmd
	err  error
}

func (m launchModel) Init() tea.Cmd {
	return tea.ExecProcess(m.cmd, func(err error) tea.Msg {
		return launchFinishedMsg{err: err}
	})
}

func (m launchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if fin, ok := msg.(launchFinishedMsg); ok {
		m.err = fin.err
		return m, tea.Quit
	}
	return m, nil
}

func (m launchModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("%s exited with error: %v\n", m.name, m.err)
	}
	return fmt.Sprintf("starting %s ...\n", m.name)
}

// launch resolves rawTool (positional arg, then config defaultTool, then an
// interactive picker), makes sure it is installed, composes the final
// argument vector and hands it to the process runner.
func launch(ctx context.Context, rawTool string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg := config.Load(cwd, warnLogger())

	key, ok := tools.Normalize(rawTool)
	switch {
	case ok:
	case rawTool != "":
		return unknownToolError(rawTool)
	case cfg.DefaultTool != "":
		key = cfg.DefaultTool
	default:
		key, err = pickTool()
		if err != nil {
			return err
		}
		if key == "" { // canceled
			return nil
		}
	}
	t := tools.Get(key)

	if !tools.Installed(t) {
		installed, err := promptInstall(ctx, t)
		if err != nil {
			return err
		}
		if !installed {
			return fmt.Errorf("%s is not installed", t.Executable)
		}
	}

	args := make([]string, 0, len(cfg.DefaultFlags)+2)
	args = append(args, cfg.DefaultFlags...)
	if fastMode {
		if flag, ok := tools.FastFlag(t); ok {
			args = append(args, flag)
		} else {
			system.Logger.Warn("no fast-mode flag known", "tool", key)
		}
	}
	args = append(args, tools.PassthroughArgs(os.Args[1:])...)

	display := system.FormatCommand(t.Executable, args)
	if dryRun {
		fmt.Println(display)
		return nil
	}
	system.Logger.Info("launching", "cmd", display)

	c := exec.Command(t.Executable, args...) //nolint:gosec
	_, err = tea.NewProgram(launchModel{name: t.Executable, cmd: c}).Run()
	return err
}

// unknownToolError builds the error for an unrecognized tool name, with a
// fuzzy suggestion when one exists.
func unknownToolError(raw string) error {
	if sugg := tools.Suggest(raw); len(sugg) > 0 {
		return fmt.Errorf("unknown tool %q (did you mean %q?)", raw, sugg[0])
	}
	return fmt.Errorf("unknown tool %q", raw)
}

// warnLogger routes config-load warnings into the shared logger.
func warnLogger() config.Warner {
	return config.WarnerFunc(func(msg string) {
		system.Logger.Warn(msg)
	})
}
