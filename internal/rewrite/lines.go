package rewrite

import "strings"

// SplitLines splits content after every '\n' so that joining the result
// reproduces content byte for byte. A trailing line without terminator is
// kept; no empty element is produced for a final newline.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
