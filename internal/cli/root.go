package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aiswitch/internal/system"
)

var (
	fastMode         bool
	dryRun           bool
	platformOverride string
)

var rootCmd = &cobra.Command{
	Use:   "ai-switch [tool] [flags] [-- args...]",
	Short: "ai-switch – resolve, install and launch AI coding CLIs",
	Long: "ai-switch launches one of the supported AI coding CLIs (codex, claude, gemini),\n" +
		"injecting project defaults from .ai-switch.json and forwarding everything after --.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		head := args
		if n := cmd.ArgsLenAtDash(); n >= 0 {
			head = args[:n]
		}
		raw := ""
		if len(head) > 0 {
			raw = head[0]
		}
		return launch(cmd.Context(), raw)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&fastMode, "fast", false, "launch with the tool's fast/unsafe flag (skips its own confirmations)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the command instead of launching it")
	rootCmd.PersistentFlags().StringVar(&platformOverride, "platform", "", "override platform detection (darwin, linux, wsl, windows)")
	_ = rootCmd.PersistentFlags().MarkHidden("platform")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// platform returns the hidden-flag override when set, detection otherwise.
func platform() string {
	if platformOverride != "" {
		return platformOverride
	}
	return system.Platform()
}
