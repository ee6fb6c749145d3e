// Package overlay draws a foreground block over a rendered view, keeping the
// styling of both.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is where the foreground goes.
type Position int

const (
	// Center places the block in the middle of the screen.
	Center Position = iota
	// Bottom places the block horizontally centered, PadY lines above the bottom edge.
	Bottom
)

// Config controls placement.
type Config struct {
	Width    int
	Height   int
	Position Position
	PadY     int
}

// Place renders fg on top of bg. bg is padded to cfg.Height lines; foreground
// lines wider than cfg.Width are cut.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, "")
	}

	x, y := position(cfg, lipgloss.Width(fg), len(fgLines))
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = placeLine(bgLines[row], line, x, cfg.Width)
	}
	return strings.Join(bgLines, "\n")
}

func placeLine(bg, fg string, x, width int) string {
	if width > 0 && x+ansi.StringWidth(fg) > width {
		fg = ansi.Truncate(fg, max(0, width-x), "")
	}
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(fg)
	var right string
	if end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

func position(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(0, x), max(0, y)
}
