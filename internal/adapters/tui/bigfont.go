package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// glyphHeight is the number of lines of a big-clock glyph.
const glyphHeight = 3

// bigClockMinWidth is the narrowest terminal the big clock is drawn in.
const bigClockMinWidth = 24

// digitMap maps each digit character (0-9) and colon to a 3-line
// box-drawing representation. Digits are 3 cells wide, the colon is 1.
var digitMap = map[rune][glyphHeight]string{
	'0': {"┏━┓", "┃ ┃", "┗━┛"},
	'1': {" ┓ ", " ┃ ", " ┻ "},
	'2': {"┏━┓", "┏━┛", "┗━━"},
	'3': {"┏━┓", " ━┫", "┗━┛"},
	'4': {"╻ ╻", "┗━┫", "  ╹"},
	'5': {"┏━━", "┗━┓", "┗━┛"},
	'6': {"┏━━", "┣━┓", "┗━┛"},
	'7': {"━━┓", "  ┃", "  ╹"},
	'8': {"┏━┓", "┣━┫", "┗━┛"},
	'9': {"┏━┓", "┗━┫", "┗━┛"},
	':': {"▪", " ", "▪"},
}

// bigClockLines takes a clock string like "24:59" and returns its styled
// big-font lines. Falls back to a single styled line if the terminal is
// narrower than bigClockMinWidth.
func bigClockLines(clock string, color lipgloss.Color, width int) []string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < bigClockMinWidth {
		return []string{style.Render(clock)}
	}

	var lines [glyphHeight]string
	for _, ch := range clock {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		for i := range lines {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}

	styled := make([]string, glyphHeight)
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return styled
}
