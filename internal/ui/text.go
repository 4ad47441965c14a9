package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// RenderText renders a frame as styled text, one line per row.
// Cells without a glyph show the tile character of the map underneath.
// Colors are emitted according to the renderer's color profile.
func RenderText(r *lipgloss.Renderer, f *Frame, tiles TileReader) string {
	var b strings.Builder
	styles := make(map[Cell]lipgloss.Style)

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			cell, _ := f.Cell(x, y)
			glyph := cell.Glyph
			if glyph == ' ' || glyph == 0 {
				glyph = tileRune(tiles, x, y)
				cell.Fg = tcell.ColorDefault
			}

			key := Cell{Fg: cell.Fg, Bg: cell.Bg}
			style, ok := styles[key]
			if !ok {
				style = r.NewStyle()
				if c, ok := hexColor(cell.Fg); ok {
					style = style.Foreground(lipgloss.Color(c))
				}
				if c, ok := hexColor(cell.Bg); ok {
					style = style.Background(lipgloss.Color(c))
				}
				styles[key] = style
			}
			b.WriteString(style.Render(string(glyph)))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func tileRune(tiles TileReader, x, y int) rune {
	if tiles == nil {
		return ' '
	}
	tile, err := tiles.TileAt(x, y)
	if err != nil {
		return ' '
	}
	return tile.Rune()
}

// hexColor formats a tcell color as #RRGGBB.
func hexColor(c tcell.Color) (string, bool) {
	if c == tcell.ColorDefault {
		return "", false
	}
	v := c.Hex()
	if v < 0 {
		return "", false
	}
	return fmt.Sprintf("#%06X", v), true
}
