package search

import "strings"

// Lines splits contents into lines on "\n", dropping a trailing "\r" from each
// line. A final terminator does not produce an empty trailing line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}
	contents = strings.TrimSuffix(contents, "\n")
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
