package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// target identifies what a click on a segment does.
type target int

const (
	targetNone target = iota
	targetMode
	targetToggle
	targetReset
	targetSettings
	targetSwatch
	targetPanel
)

// segment is a rendered piece of a row. Clickable segments carry a target
// and, for modes and swatches, the index into domain.Modes or
// domain.Palette.
type segment struct {
	text   string
	target target
	index  int
}

// row is one line of the frame. A row with a target is clickable along its
// full width.
type row struct {
	segments []segment
	target   target
}

func textRow(s string) row {
	return row{segments: []segment{{text: s}}}
}

func (r row) width() int {
	w := 0
	for _, s := range r.segments {
		w += lipgloss.Width(s.text)
	}
	return w
}

// zone is the screen rectangle of a clickable segment or row, x1 exclusive.
type zone struct {
	target target
	index  int
	x0, x1 int
	y      int
}

// frame is a laid out screen: rendered lines plus the zones clicks resolve
// against. View and mouse handling build the same frame, so what is drawn
// is what is hit.
type frame struct {
	lines []string
	zones []zone
}

// place centers rows in a width×height area. Each row is centered on its
// own; the block is centered vertically.
func place(rows []row, width, height int) frame {
	var f frame

	top := 0
	if height > len(rows) {
		top = (height - len(rows)) / 2
	}
	for i := 0; i < top; i++ {
		f.lines = append(f.lines, "")
	}

	for i, r := range rows {
		y := top + i
		rw := r.width()
		left := 0
		if width > rw {
			left = (width - rw) / 2
		}

		var b strings.Builder
		b.WriteString(strings.Repeat(" ", left))
		x := left
		for _, s := range r.segments {
			w := lipgloss.Width(s.text)
			b.WriteString(s.text)
			if s.target != targetNone {
				f.zones = append(f.zones, zone{target: s.target, index: s.index, x0: x, x1: x + w, y: y})
			}
			x += w
		}
		if r.target != targetNone {
			f.zones = append(f.zones, zone{target: r.target, x0: left, x1: left + rw, y: y})
		}
		f.lines = append(f.lines, b.String())
	}
	return f
}

// hit returns the zone under (x, y). Segment zones are added before their
// row's zone, so the most specific one wins.
func (f frame) hit(x, y int) (zone, bool) {
	for _, z := range f.zones {
		if z.y == y && x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return zone{}, false
}

func (f frame) String() string {
	return strings.Join(f.lines, "\n")
}
