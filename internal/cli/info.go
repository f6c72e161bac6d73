package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"aiswitch/internal/tools"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info [tool]",
	Short: "Show details for a supported tool",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts := tools.Tools
		if len(args) == 1 {
			key, ok := tools.Normalize(args[0])
			if !ok {
				return unknownToolError(args[0])
			}
			ts = []tools.ToolInfo{tools.Get(key)}
		}
		var b strings.Builder
		for _, t := range ts {
			b.WriteString(toolMarkdown(t))
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return err
		}
		out, err := r.Render(b.String())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

// toolMarkdown builds the markdown card for one tool.
func toolMarkdown(t tools.ToolInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.DisplayName)
	if t.About != "" {
		fmt.Fprintf(&b, "%s\n\n", t.About)
	}
	fmt.Fprintf(&b, "- executable: `%s`\n", t.Executable)
	if t.Package != "" {
		fmt.Fprintf(&b, "- npm package: `%s`\n", t.Package)
	}
	if flag, ok := tools.FastFlag(t); ok {
		fmt.Fprintf(&b, "- fast mode: `%s`\n", flag)
	}
	b.WriteString("\n## Install\n\n")
	for _, r := range t.Installers {
		scope := "any platform"
		if len(r.Platforms) > 0 {
			scope = strings.Join(r.Platforms, ", ")
		}
		fmt.Fprintf(&b, "- %s (%s): `%s`\n", r.Label, scope, r.Command)
	}
	b.WriteString("\n")
	return b.String()
}
