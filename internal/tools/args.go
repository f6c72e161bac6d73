package tools

// PassthroughArgs returns the tokens strictly after the first literal "--"
// in argv, in order. Only the first "--" is a delimiter; any later ones are
// kept verbatim. Without a delimiter the result is empty.
func PassthroughArgs(argv []string) []string {
	for i, a := range argv {
		if a == "--" {
			out := make([]string, len(argv)-i-1)
			copy(out, argv[i+1:])
			return out
		}
	}
	return nil
}
