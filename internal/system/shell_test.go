package system

import "testing"

func TestQuoteArg(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"--version", "--version"},
		{"a_b.c", "a_b.c"},
		{"@openai/codex", "@openai/codex"},
		{"model=gpt-5,high", "model=gpt-5,high"},
		{"space value", "'space value'"},
		{"mix'ed", `'mix'\''ed'`},
		{"", "''"},
		{"$HOME", "'$HOME'"},
		{"a;b", "'a;b'"},
	}
	for _, c := range cases {
		if got := QuoteArg(c.in); got != c.want {
			t.Fatalf("QuoteArg(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCommand(t *testing.T) {
	if got := FormatCommand("codex", []string{"--version"}); got != "codex --version" {
		t.Fatalf("got %q", got)
	}
	got := FormatCommand("codex", []string{"--model", "space value", "mix'ed"})
	want := `codex --model 'space value' 'mix'\''ed'`
	if got != want {
		t.Fatalf("got %q; want %q", got, want)
	}
	if got := FormatCommand("codex", []string{""}); got != "codex ''" {
		t.Fatalf("got %q; want codex ''", got)
	}
	if got := FormatCommand("codex", nil); got != "codex" {
		t.Fatalf("got %q; want codex", got)
	}
}
