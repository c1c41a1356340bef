package protocol

// SplitAtoms splits a reply line into whitespace-delimited atoms.
// A run enclosed in double quotes forms a single atom with the quotes
// stripped, even when it contains spaces. An unterminated quote takes
// the rest of the line.
func SplitAtoms(line string) []string {
	var atoms []string

	i := 0
	for i < len(line) {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}

		if line[i] == '"' {
			i++
			start := i
			for i < len(line) && line[i] != '"' {
				i++
			}
			atoms = append(atoms, line[start:i])
			if i < len(line) {
				i++ // closing quote
			}
			continue
		}

		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		atoms = append(atoms, line[start:i])
	}

	return atoms
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
