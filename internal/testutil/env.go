package testutil

import (
	"os"
	"testing"
)

// WithEnv sets an environment variable for the duration of the test scope
// and returns a cleanup func restoring the previous value. An empty val
// unsets the variable.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}
