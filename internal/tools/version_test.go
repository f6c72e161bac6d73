package tools

import "testing"

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"codex-cli 0.34.0\nextra", "0.34.0"},
		{"v2.0.1-beta.1", "2.0.1-beta.1"},
		{"no version here", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := ParseVersion(c.in); got != c.want {
			t.Fatalf("ParseVersion(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestVersionLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1.2.3", "1.2.4", true},
		{"1.2.3", "1.10.0", true},
		{"2.0.0", "1.9.9", false},
		{"1.2.3", "1.2.3", false},
		{"v1.2.3", "1.2.3", false},
		{"1.2.3-beta", "1.2.3", true},
		{"", "1.0.0", false},
		{"1.0.0", "", false},
	}
	for _, c := range cases {
		if got := VersionLess(c.a, c.b); got != c.want {
			t.Fatalf("VersionLess(%q, %q) = %v; want %v", c.a, c.b, got, c.want)
		}
	}
}
