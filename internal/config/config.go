package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aiswitch/internal/tools"
)

// FileName is the per-project configuration file consumed by the launcher.
const FileName = ".ai-switch.json"

// Config holds validated project configuration. Zero-valued fields mean
// "not configured"; every field that is set has already passed validation,
// so callers never re-validate.
type Config struct {
	DefaultTool  tools.ToolKey `json:"defaultTool,omitempty"`
	DefaultFlags []string      `json:"defaultFlags,omitempty"`
}

// Warner receives non-fatal load diagnostics. A nil Warner drops them.
type Warner interface {
	Warn(message string)
}

// WarnerFunc adapts a function to the Warner interface.
type WarnerFunc func(message string)

func (f WarnerFunc) Warn(message string) { f(message) }

type noopWarner struct{}

func (noopWarner) Warn(string) {}

// Load reads projectDir/.ai-switch.json fresh on every call. A missing file
// is not an error and yields an empty Config. Malformed content is
// recovered field by field: the offending field is dropped with a warning
// and the rest of the document is kept. Unknown keys are ignored silently.
func Load(projectDir string, w Warner) Config {
	if w == nil {
		w = noopWarner{}
	}
	var cfg Config
	b, err := os.ReadFile(filepath.Join(projectDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg
		}
		w.Warn(fmt.Sprintf("Failed to load %s: %v", FileName, err))
		return cfg
	}
	var raw struct {
		DefaultTool  json.RawMessage `json:"defaultTool"`
		DefaultFlags json.RawMessage `json:"defaultFlags"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		w.Warn(fmt.Sprintf("Failed to load %s: %v", FileName, err))
		return cfg
	}
	if len(raw.DefaultTool) > 0 {
		var s string
		// Only a string value is considered at all.
		if json.Unmarshal(raw.DefaultTool, &s) == nil {
			if key, ok := tools.Normalize(s); ok {
				cfg.DefaultTool = key
			} else {
				w.Warn("Ignoring unknown defaultTool: " + s)
			}
		}
	}
	if len(raw.DefaultFlags) > 0 {
		var flags []string
		if json.Unmarshal(raw.DefaultFlags, &flags) == nil && flags != nil {
			cfg.DefaultFlags = flags
		} else {
			w.Warn("Ignoring defaultFlags because it is not an array of strings.")
		}
	}
	return cfg
}

// Write saves cfg to projectDir/.ai-switch.json with stable indentation.
// Only the outer CLI writes config; Load never does.
func Write(projectDir string, cfg Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(projectDir, FileName), append(b, '\n'), 0o644)
}
