package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrOutOfFrame is returned when drawing outside the frame.
var ErrOutOfFrame = errors.New("position outside frame")

// Cell is one character cell of a frame: a glyph layer and a background layer.
type Cell struct {
	Glyph rune
	Fg    tcell.Color
	Bg    tcell.Color
}

// Frame is an off-screen buffer the composer draws into and Present blits.
type Frame struct {
	width  int
	height int
	cells  []Cell
	fg     tcell.Color // current default foreground used by PutChar
}

// NewFrame creates a blank frame of the given size.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	f.Clear()
	return f
}

// Width returns the number of columns.
func (f *Frame) Width() int { return f.width }

// Height returns the number of rows.
func (f *Frame) Height() int { return f.height }

// Clear blanks every cell and resets the default foreground.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Glyph: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
	}
	f.fg = tcell.ColorDefault
}

// SetForeground sets the color used by subsequent PutChar calls.
func (f *Frame) SetForeground(c tcell.Color) {
	f.fg = c
}

// PutChar places a glyph at the position using the current foreground.
// The cell's background is left as it is.
func (f *Frame) PutChar(x, y int, glyph rune) error {
	i, err := f.index(x, y)
	if err != nil {
		return err
	}
	f.cells[i].Glyph = glyph
	f.cells[i].Fg = f.fg
	return nil
}

// SetBackground sets the background color of a cell.
func (f *Frame) SetBackground(x, y int, c tcell.Color) error {
	i, err := f.index(x, y)
	if err != nil {
		return err
	}
	f.cells[i].Bg = c
	return nil
}

// Cell returns the cell at the position.
func (f *Frame) Cell(x, y int) (Cell, bool) {
	i, err := f.index(x, y)
	if err != nil {
		return Cell{}, false
	}
	return f.cells[i], true
}

func (f *Frame) index(x, y int) (int, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfFrame, x, y, f.width, f.height)
	}
	return y*f.width + x, nil
}
