package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxMessageLines = 2
	minLineWidth    = 10
	truncationMark  = "..."
)

// wrapMessage word-wraps message to maxWidth columns, keeping at most
// maxMessageLines lines and marking a cut with "...".
func wrapMessage(message string, maxWidth int) string {
	if maxWidth < minLineWidth {
		maxWidth = minLineWidth
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return message
	}

	var lines []string
	var line strings.Builder
	truncated := false

	for _, word := range words {
		lineLen := utf8.RuneCountInString(line.String())
		if lineLen > 0 && lineLen+1+utf8.RuneCountInString(word) > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxMessageLines {
				truncated = true
				break
			}
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 && len(lines) < maxMessageLines {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return strings.Join(lines, "\n")
}
