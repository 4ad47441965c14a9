package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSize is returned when a grid is created with non-positive dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Grid is a fixed-size rectangle of tiles addressed by (x, y).
type Grid struct {
	width  int
	height int
	tiles  []Tile // row-major, index y*width + x
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(width, height int, fill Tile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = fill
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds returns true if the coordinate addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TileAt returns the tile at the given position. Positions off the grid
// read as Wall along with the error.
func (g *Grid) TileAt(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return Wall(), g.boundsError(x, y)
	}
	return g.tiles[y*g.width+x], nil
}

// SetTile replaces the tile at the given position.
func (g *Grid) SetTile(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.tiles[y*g.width+x] = t
	return nil
}

// Equal reports whether both grids have the same size and identical tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line using Tile.Rune.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf = append(buf, g.tiles[y*g.width+x].Rune())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func (g *Grid) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
}
