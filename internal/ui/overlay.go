package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rentdesk/rentdesk/internal/theme"
)

// dimBackground strips the colors of every background line, dims it and
// pads it to the full width so overlays can be spliced in.
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		dimmed := theme.DimmedStyle.Render(stripAnsi(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// compositeOverlay renders overlay centered on a dimmed background
func compositeOverlay(background, overlay string, width, height int) string {
	bg := dimBackground(background, width, height)
	fg := strings.Split(overlay, "\n")

	fgWidth := lipgloss.Width(overlay)
	startX := max((width-fgWidth)/2, 0)
	startY := max((height-len(fg))/2, 0)

	pad := theme.DimmedStyle.Render(strings.Repeat(" ", startX))
	for i, line := range fg {
		y := startY + i
		if y >= len(bg) {
			break
		}
		right := max(width-startX-lipgloss.Width(line), 0)
		bg[y] = pad + line + theme.DimmedStyle.Render(strings.Repeat(" ", right))
	}
	return strings.Join(bg, "\n")
}

// bottomAnchoredOverlay renders overlay across the bottom rows of a dimmed
// background
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bg := dimBackground(background, width, height)
	fg := strings.Split(overlay, "\n")

	startY := max(height-len(fg), 0)
	for i, line := range fg {
		y := startY + i
		if y >= len(bg) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bg[y] = line
	}
	return strings.Join(bg, "\n")
}

// overlayTopRight places box in the top-right corner of view without
// dimming it. Used for toasts.
func overlayTopRight(view, box string, width int) string {
	if box == "" {
		return view
	}
	lines := strings.Split(view, "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)
	for len(lines) < len(boxLines) {
		lines = append(lines, "")
	}

	left := max(width-boxWidth, 0)
	for i, b := range boxLines {
		plain := []rune(stripAnsi(lines[i]))
		if len(plain) > left {
			plain = plain[:left]
		}
		prefix := string(plain) + strings.Repeat(" ", left-len(plain))
		lines[i] = prefix + b
	}
	return strings.Join(lines, "\n")
}

// stripAnsi removes ANSI escape sequences
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
