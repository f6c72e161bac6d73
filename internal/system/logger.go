package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. Diagnostics go to stderr so that
// stdout stays clean for scripting (dry-run output, config show, schema).
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "ai-switch",
})
