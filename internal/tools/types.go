package tools

// Tool identifiers and metadata
type ToolKey string

const (
	ToolCodex  ToolKey = "codex"
	ToolClaude ToolKey = "claude"
	ToolGemini ToolKey = "gemini"
)

// InstallRecipe is a labeled shell one-liner that installs a tool. An empty
// Platforms slice means the recipe applies on every platform.
type InstallRecipe struct {
	Label     string
	Command   string
	Platforms []string
}

// ToolInfo describes one supported tool. The full catalog is built once at
// process start and never mutated.
type ToolInfo struct {
	Key         ToolKey
	DisplayName string
	Executable  string   // binary name probed on PATH
	Package     string   // npm package name for fallback detection
	Installers  []InstallRecipe
	FastFlags   []string // fast/unsafe-mode flags, most preferred first
	About       string   // short blurb for the info card
}

// InstallerChoice pairs a display label with the raw install command. The
// terminal Cancel choice carries an empty command.
type InstallerChoice struct {
	Label   string
	Command string
}

// CheckResult reports install-state detection for one tool.
type CheckResult struct {
	Installed bool
	Version   string
	Source    string // which probe produced the version (binary/npm)
	Err       string
	Latest    string // latest version from the npm registry
}
