package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/agent2199/internal/entity"
	"github.com/samdwyer/agent2199/internal/world"
)

// TileReader is the grid capability the composer reads from.
type TileReader interface {
	Width() int
	Height() int
	TileAt(x, y int) (world.Tile, error)
}

// Palette holds the two background colors of the map.
type Palette struct {
	Wall   tcell.Color
	Ground tcell.Color
}

// DefaultPalette returns dark blue walls on a lighter blue ground.
func DefaultPalette() Palette {
	return Palette{
		Wall:   tcell.NewRGBColor(0, 0, 100),
		Ground: tcell.NewRGBColor(50, 50, 150),
	}
}

// Compose draws the entities, in order, and then paints the background of
// every map cell. Entities are drawn before the background pass; the
// background layer does not erase glyphs.
func Compose(f *Frame, tiles TileReader, entities []*entity.Entity, p Palette) error {
	for _, e := range entities {
		f.SetForeground(e.Color)
		if err := f.PutChar(e.X, e.Y, e.Glyph); err != nil {
			return fmt.Errorf("draw %s: %w", e.Name, err)
		}
	}

	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			tile, err := tiles.TileAt(x, y)
			if err != nil {
				return err
			}
			bg := p.Ground
			if tile.BlocksSight() {
				bg = p.Wall
			}
			if err := f.SetBackground(x, y, bg); err != nil {
				return err
			}
		}
	}

	return nil
}
