package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"aiswitch/internal/config"
	"aiswitch/internal/system"
	"aiswitch/internal/tools"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or bootstrap the project configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective .ai-switch.json as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg := config.Load(cwd, warnLogger())
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [tool]",
	Short: "Write a starter .ai-switch.json in the current directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(cwd, config.FileName)); err == nil {
			return fmt.Errorf("%s already exists", config.FileName)
		}
		key := tools.ToolCodex
		if len(args) == 1 {
			k, ok := tools.Normalize(args[0])
			if !ok {
				return unknownToolError(args[0])
			}
			key = k
		}
		if err := config.Write(cwd, config.Config{DefaultTool: key}); err != nil {
			return err
		}
		system.Logger.Info("wrote "+config.FileName, "defaultTool", key)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for .ai-switch.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := json.MarshalIndent(config.Schema(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configInitCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
