// Package textutil contains helpers for laying out help text.
package textutil

import "strings"

// Wrap breaks text into lines no longer than width, splitting on whitespace. A word longer than
// width gets a line of its own. Empty or blank text yields no lines.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
