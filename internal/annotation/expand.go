package annotation

// ExpandName expands a snippet-name pattern into concrete snippet
// names. A pattern containing one bracketed run, e.g. "ex-[12]-a",
// yields one name per bracket character ("ex-1-a", "ex-2-a") with the
// prefix and suffix preserved. A pattern without brackets expands to
// itself.
//
// Lets a single annotation line register against several overlapping
// excerpts at once.
func ExpandName(pattern string) []string {
	start := -1
	for i, r := range pattern {
		if r == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return []string{pattern}
	}

	end := -1
	for i := start + 1; i < len(pattern); i++ {
		if pattern[i] == ']' {
			end = i
			break
		}
	}
	if end < 0 {
		// No closing bracket: treat the pattern as a literal name.
		return []string{pattern}
	}

	prefix := pattern[:start]
	suffix := pattern[end+1:]
	chars := pattern[start+1 : end]

	names := make([]string, 0, len(chars))
	for _, c := range chars {
		names = append(names, prefix+string(c)+suffix)
	}
	return names
}
