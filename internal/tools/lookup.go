package tools

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Normalize lower-cases raw and checks catalog membership. It reports false
// for empty input or any name that is not a known tool.
func Normalize(raw string) (ToolKey, bool) {
	k := ToolKey(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := byKey[k]; !ok {
		return "", false
	}
	return k, true
}

// Has reports whether raw names a known tool.
func Has(raw string) bool {
	_, ok := Normalize(raw)
	return ok
}

// Get returns the definition for an already-normalized key. Passing an
// unknown key is a caller bug, so it fails loudly.
func Get(key ToolKey) ToolInfo {
	t, ok := byKey[key]
	if !ok {
		panic("tools: unknown tool key: " + string(key))
	}
	return t
}

// Suggest returns catalog keys fuzzy-matching raw, best match first. Used
// for "did you mean" hints on unrecognized tool names.
func Suggest(raw string) []string {
	names := make([]string, len(Tools))
	for i, t := range Tools {
		names[i] = string(t.Key)
	}
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(raw)), names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
