package tools

import (
	"regexp"
	"strconv"
	"strings"
)

var verRe = regexp.MustCompile(`(?i)\bv?(\d+\.\d+\.\d+(?:[\w\.-]+)?)\b`)

// ParseVersion extracts a semver-looking version from tool output,
// preferring the first line.
func ParseVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := verRe.FindStringSubmatch(strings.Split(s, "\n")[0]); len(m) > 1 {
		return m[1]
	}
	if m := verRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

// NormalizeVersion strips whitespace and a leading "v".
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// VersionLess reports a < b under best-effort semver rules. Unparseable
// input compares as not-less so callers never show a bogus upgrade hint.
func VersionLess(a, b string) bool {
	a = NormalizeVersion(a)
	b = NormalizeVersion(b)
	if a == "" || b == "" {
		return false
	}
	ap := numericParts(a)
	bp := numericParts(b)
	for i := 0; i < 3; i++ {
		if ap[i] != bp[i] {
			return ap[i] < bp[i]
		}
	}
	// Equal numeric parts: a pre-release sorts below a plain release.
	return strings.Contains(a, "-") && !strings.Contains(b, "-")
}

// numericParts splits the dotted core of v (before any pre-release suffix)
// into exactly three integers, padding with zeros.
func numericParts(v string) [3]int {
	core := strings.SplitN(v, "-", 2)[0]
	var out [3]int
	for i, p := range strings.Split(core, ".") {
		if i >= 3 {
			break
		}
		// digits-only prefix
		j := 0
		for j < len(p) && p[j] >= '0' && p[j] <= '9' {
			j++
		}
		out[i], _ = strconv.Atoi(p[:j])
	}
	return out
}
