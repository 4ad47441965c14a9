// Package world provides the tile grid and the room-and-corridor map generator.
package world

// Tile represents a single map cell. Empty and Wall are the only two kinds;
// the zero value is Empty.
type Tile struct {
	blocked     bool
	blocksSight bool
}

// Empty returns an open floor tile.
func Empty() Tile {
	return Tile{blocked: false, blocksSight: false}
}

// Wall returns a solid wall tile.
func Wall() Tile {
	return Tile{blocked: true, blocksSight: true}
}

// Blocked reports whether movement into the tile is rejected.
func (t Tile) Blocked() bool { return t.blocked }

// BlocksSight reports whether the tile is drawn with the wall color.
func (t Tile) BlocksSight() bool { return t.blocksSight }

// Solid returns true for wall tiles.
func (t Tile) Solid() bool {
	return t.blocked && t.blocksSight
}

// Rune returns the tile's display character for text output.
func (t Tile) Rune() rune {
	if t.Solid() {
		return '#'
	}
	return '.'
}
