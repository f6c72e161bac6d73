package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"aiswitch/internal/system"
	"aiswitch/internal/tools"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [tool...]",
	Short: "Install supported tools",
	Long:  "Pick and run an install recipe for the named tools (all of them when none are named).",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selectTools(args)
		if err != nil {
			return err
		}
		for i, t := range selected {
			fmt.Printf("[%d/%d] %s\n", i+1, len(selected), t.DisplayName)
			res := tools.Check(t)
			if res.Installed {
				ver := res.Version
				if ver == "" {
					ver = "installed"
				}
				fmt.Printf("  • skipped: %s\n", ver)
				continue
			}
			ok, err := promptInstall(cmd.Context(), t)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("  • canceled")
			}
		}
		return nil
	},
}

// selectTools resolves args to catalog entries; no args or "all" selects the
// whole catalog.
func selectTools(args []string) ([]tools.ToolInfo, error) {
	if len(args) == 0 {
		return tools.Tools, nil
	}
	picked := make([]tools.ToolInfo, 0, len(args))
	seen := map[tools.ToolKey]bool{}
	for _, a := range args {
		if strings.EqualFold(strings.TrimSpace(a), "all") {
			return tools.Tools, nil
		}
		key, ok := tools.Normalize(a)
		if !ok {
			return nil, unknownToolError(a)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, tools.Get(key))
	}
	return picked, nil
}

// promptInstall offers the platform's install recipes for t and runs the
// chosen one under a spinner. Reports whether t is installed afterwards.
func promptInstall(ctx context.Context, t tools.ToolInfo) (bool, error) {
	command, err := pickInstaller(t, platform())
	if err != nil {
		return false, err
	}
	if command == "" { // Cancel
		return false, nil
	}
	if err := runInstall(ctx, t, command); err != nil {
		return false, err
	}
	res := tools.Check(t)
	if res.Installed {
		ver := res.Version
		if ver == "" {
			ver = res.Latest
		}
		system.Logger.Info("installed", "tool", t.Key, "version", ver)
	}
	return res.Installed, nil
}

// installDoneMsg carries the result of one install recipe run.
type installDoneMsg struct {
	out string
	err error
}

// installModel shows a spinner while an install recipe runs.
type installModel struct {
	spin  spinner.Model
	label string
	run   tea.Cmd
	done  bool
	out   string
	err   error
}

func newInstallModel(ctx context.Context, label, command string) installModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return installModel{
		spin:  s,
		label: label,
		run: func() tea.Msg {
			out, err := tools.RunInstallCommand(ctx, command)
			return installDoneMsg{out: out, err: err}
		},
	}
}

func (m installModel) Init() tea.Cmd { return tea.Batch(m.spin.Tick, m.run) }

func (m installModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case installDoneMsg:
		m.done = true
		m.out = msg.out
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = context.Canceled
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m installModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spin.View(), m.label)
}

// runInstall executes the recipe with a spinner and surfaces its output on
// failure.
func runInstall(ctx context.Context, t tools.ToolInfo, command string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()
	m := newInstallModel(ctx, fmt.Sprintf("installing %s ...", t.DisplayName), command)
	res, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fin, ok := res.(installModel); ok && fin.err != nil {
		if out := strings.TrimSpace(fin.out); out != "" {
			fmt.Println(out)
		}
		return fmt.Errorf("install failed: %w", fin.err)
	}
	return nil
}
