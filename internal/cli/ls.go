package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"aiswitch/internal/tools"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#03BF87"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

func init() {
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show install status of supported tools",
	Long:  "Shows install state, current version and latest registry version per tool.",
	RunE: func(cmd *cobra.Command, args []string) error {
		width := 0
		for _, t := range tools.Tools {
			if w := runewidth.StringWidth(t.DisplayName); w > width {
				width = w
			}
		}
		for _, t := range tools.Tools {
			res := tools.Check(t)
			name := runewidth.FillRight(t.DisplayName, width)
			if !res.Installed {
				status := "not installed"
				if strings.TrimSpace(res.Err) != "" {
					status += " (" + res.Err + ")"
				}
				fmt.Printf("- %s  %s\n", name, dimStyle.Render(status))
				continue
			}
			ver := strings.TrimSpace(res.Version)
			if ver == "" {
				ver = "?"
			}
			var status string
			switch {
			case res.Latest != "" && tools.VersionLess(ver, res.Latest):
				status = okStyle.Render(ver) + " " + hintStyle.Render("→ "+res.Latest+" available")
			case res.Latest != "":
				status = okStyle.Render(ver) + dimStyle.Render(" (latest "+res.Latest+")")
			default:
				status = okStyle.Render(ver)
			}
			if strings.TrimSpace(res.Source) != "" {
				status += dimStyle.Render(" · via " + res.Source)
			}
			fmt.Printf("- %s  %s\n", name, status)
		}
		return nil
	},
}
