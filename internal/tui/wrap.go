package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks content into display lines no wider than width cells.
// Existing line breaks are kept; long lines break at the last space, or
// mid-word when a word alone is wider than the line.
func wrapText(content string, width int) []string {
	paragraphs := strings.Split(strings.ReplaceAll(content, "\t", "    "), "\n")
	if width <= 0 {
		return paragraphs
	}
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, wrapLine([]rune(strings.TrimRight(p, " ")), width)...)
	}
	return out
}

func wrapLine(runes []rune, width int) []string {
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	line := make([]rune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		r := runes[i]
		if r == ' ' && len(line) == 0 && len(lines) > 0 {
			i++
			continue
		}
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				lines = append(lines, string(line[:lastSpaceIdx]))
				line = append([]rune{}, line[lastSpaceIdx+1:]...)
				lineWidth = runewidth.StringWidth(string(line))
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				lines = append(lines, string(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, r)
		lineWidth += w
		if r == ' ' {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	return append(lines, string(line))
}

func lastSpaceIndex(line []rune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' {
			return i
		}
	}
	return -1
}
