package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aiswitch/internal/tools"
)

// recorder collects warnings for assertions.
type recorder struct{ msgs []string }

func (r *recorder) Warn(m string) { r.msgs = append(r.msgs, m) }

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	rec := &recorder{}
	cfg := Load(t.TempDir(), rec)
	if cfg.DefaultTool != "" || cfg.DefaultFlags != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	if len(rec.msgs) != 0 {
		t.Fatalf("missing file must not warn: %v", rec.msgs)
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"defaultTool": "CLAUDE", "defaultFlags": ["--model", "claude-3"]}`)
	rec := &recorder{}
	cfg := Load(dir, rec)
	if cfg.DefaultTool != tools.ToolClaude {
		t.Fatalf("expected defaultTool claude, got %q", cfg.DefaultTool)
	}
	if len(cfg.DefaultFlags) != 2 || cfg.DefaultFlags[0] != "--model" || cfg.DefaultFlags[1] != "claude-3" {
		t.Fatalf("unexpected defaultFlags: %v", cfg.DefaultFlags)
	}
	if len(rec.msgs) != 0 {
		t.Fatalf("valid config must not warn: %v", rec.msgs)
	}
}

func TestLoadUnknownDefaultTool(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"defaultTool": "cursor"}`)
	rec := &recorder{}
	cfg := Load(dir, rec)
	if cfg.DefaultTool != "" {
		t.Fatalf("unknown defaultTool must be omitted, got %q", cfg.DefaultTool)
	}
	if len(rec.msgs) != 1 || !strings.Contains(rec.msgs[0], "Ignoring unknown defaultTool: cursor") {
		t.Fatalf("unexpected warnings: %v", rec.msgs)
	}
}

func TestLoadBadDefaultFlags(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	writeConfig(t, dir, `{"defaultFlags": ["--model", 123]}`)
	cfg := Load(dir, rec)
	if cfg.DefaultFlags != nil {
		t.Fatalf("bad defaultFlags must be omitted, got %v", cfg.DefaultFlags)
	}
	want := "Ignoring defaultFlags because it is not an array of strings."
	if len(rec.msgs) != 1 || rec.msgs[0] != want {
		t.Fatalf("unexpected warnings: %v", rec.msgs)
	}

	// null counts as present-but-wrong-shape too
	rec2 := &recorder{}
	writeConfig(t, dir, `{"defaultFlags": null}`)
	if cfg := Load(dir, rec2); cfg.DefaultFlags != nil {
		t.Fatalf("null defaultFlags must be omitted, got %v", cfg.DefaultFlags)
	}
	if len(rec2.msgs) != 1 || rec2.msgs[0] != want {
		t.Fatalf("unexpected warnings: %v", rec2.msgs)
	}
}

func TestLoadOneBadFieldKeepsTheOther(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"defaultTool": "codex", "defaultFlags": "nope"}`)
	rec := &recorder{}
	cfg := Load(dir, rec)
	if cfg.DefaultTool != tools.ToolCodex {
		t.Fatalf("valid defaultTool must survive, got %q", cfg.DefaultTool)
	}
	if cfg.DefaultFlags != nil || len(rec.msgs) != 1 {
		t.Fatalf("expected dropped flags and one warning, got %v / %v", cfg.DefaultFlags, rec.msgs)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)
	rec := &recorder{}
	cfg := Load(dir, rec)
	if cfg.DefaultTool != "" || cfg.DefaultFlags != nil {
		t.Fatalf("parse failure must yield empty config, got %+v", cfg)
	}
	if len(rec.msgs) != 1 || !strings.Contains(rec.msgs[0], "Failed to load .ai-switch.json") {
		t.Fatalf("unexpected warnings: %v", rec.msgs)
	}
}

func TestLoadNilWarner(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)
	// must not panic; warnings are simply dropped
	if cfg := Load(dir, nil); cfg.DefaultTool != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"defaultTool": "gemini", "somethingElse": {"x": 1}}`)
	rec := &recorder{}
	cfg := Load(dir, rec)
	if cfg.DefaultTool != tools.ToolGemini || len(rec.msgs) != 0 {
		t.Fatalf("unknown keys must be ignored silently: %+v / %v", cfg, rec.msgs)
	}
}

func TestLoadNonStringDefaultTool(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"defaultTool": 42}`)
	rec := &recorder{}
	cfg := Load(dir, rec)
	// only string values are considered; nothing to warn about
	if cfg.DefaultTool != "" || len(rec.msgs) != 0 {
		t.Fatalf("non-string defaultTool must be ignored silently: %+v / %v", cfg, rec.msgs)
	}
}

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	in := Config{DefaultTool: tools.ToolCodex, DefaultFlags: []string{"-m", "gpt-5"}}
	if err := Write(dir, in); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	rec := &recorder{}
	got := Load(dir, rec)
	if got.DefaultTool != in.DefaultTool || len(got.DefaultFlags) != 2 || got.DefaultFlags[1] != "gpt-5" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(rec.msgs) != 0 {
		t.Fatalf("round trip must not warn: %v", rec.msgs)
	}
}
