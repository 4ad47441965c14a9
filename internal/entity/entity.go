// Package entity provides positioned, drawable actors and their movement rule.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/agent2199/internal/world"
)

// TileReader is the grid capability movement depends on.
type TileReader interface {
	TileAt(x, y int) (world.Tile, error)
}

// Entity is an actor that occupies one grid cell.
type Entity struct {
	Name  string      // Identifies the entity in logs and traces
	X, Y  int         // Current position on the grid
	Glyph rune        // Display character
	Color tcell.Color // Foreground color of the glyph
}

// New creates an entity at the given position.
func New(name string, x, y int, glyph rune, color tcell.Color) *Entity {
	return &Entity{
		Name:  name,
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// MoveBy moves the entity by the given delta unless the destination is blocked.
// A blocked destination leaves the position unchanged and returns false with no error.
// A destination outside the grid returns the grid's bounds error.
func (e *Entity) MoveBy(dx, dy int, tiles TileReader) (bool, error) {
	newX := e.X + dx
	newY := e.Y + dy

	tile, err := tiles.TileAt(newX, newY)
	if err != nil {
		return false, err
	}
	if tile.Blocked() {
		return false, nil
	}

	e.X, e.Y = newX, newY
	return true, nil
}

// Position returns the current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}
