package exporter

import "strings"

// FileBaseName derives the deterministic export file name from the two
// chosen variable names: internal whitespace is stripped from each and
// the results concatenated. The same criteria always yield the same
// name; a pre-existing file of that name is overwritten, not guarded.
func FileBaseName(variable1, variable2 string) string {
	return stripWhitespace(variable1) + stripWhitespace(variable2)
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
