package tools

// Tools is the static catalog in display order.
var Tools = []ToolInfo{
	{
		Key:         ToolCodex,
		DisplayName: "Codex (@openai/codex)",
		Executable:  "codex",
		Package:     "@openai/codex",
		Installers: []InstallRecipe{
			{Label: "npm", Command: "npm install -g @openai/codex"},
			{Label: "Homebrew", Command: "brew install codex", Platforms: []string{"darwin"}},
		},
		FastFlags: []string{"--dangerously-bypass-approvals-and-sandbox", "--yolo"},
		About:     "OpenAI's terminal coding agent.",
	},
	{
		Key:         ToolClaude,
		DisplayName: "Claude Code (@anthropic-ai/claude-code)",
		Executable:  "claude",
		Package:     "@anthropic-ai/claude-code",
		Installers: []InstallRecipe{
			{Label: "npm", Command: "npm install -g @anthropic-ai/claude-code"},
			{Label: "install script", Command: "curl -fsSL https://claude.ai/install.sh | bash", Platforms: []string{"darwin", "linux"}},
		},
		FastFlags: []string{"--dangerously-skip-permissions"},
		About:     "Anthropic's agentic coding CLI.",
	},
	{
		Key:         ToolGemini,
		DisplayName: "Gemini CLI (@google/gemini-cli)",
		Executable:  "gemini",
		Package:     "@google/gemini-cli",
		Installers: []InstallRecipe{
			{Label: "npm", Command: "npm install -g @google/gemini-cli"},
			{Label: "Homebrew", Command: "brew install gemini-cli", Platforms: []string{"darwin"}},
		},
		FastFlags: []string{"--yolo"},
		About:     "Google's Gemini agent for the terminal.",
	},
}

// byKey indexes the catalog for lookups.
var byKey = func() map[ToolKey]ToolInfo {
	m := make(map[ToolKey]ToolInfo, len(Tools))
	for _, t := range Tools {
		m[t.Key] = t
	}
	return m
}()
