package system

import (
	"regexp"
	"strings"
)

// safeToken matches tokens that read unambiguously without quoting.
var safeToken = regexp.MustCompile(`^[A-Za-z0-9._@%+=:,/-]+$`)

// QuoteArg returns arg as a single POSIX shell word for display. Safe
// tokens pass through; everything else (including the empty string) is
// single-quoted, with embedded single quotes escaped as '\''.
func QuoteArg(arg string) string {
	if safeToken.MatchString(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// FormatCommand renders executable and args as a human-readable command
// line. It exists to echo the command about to run; actual execution always
// uses the argument vector, never this string.
func FormatCommand(executable string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, QuoteArg(executable))
	for _, a := range args {
		parts = append(parts, QuoteArg(a))
	}
	return strings.Join(parts, " ")
}
