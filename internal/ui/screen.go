// Package ui provides the frame buffer, scene composition and terminal presentation using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// KeyEvent is a single key press as seen by the game.
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Blit places a frame on the screen: destination offset and integer scale.
type Blit struct {
	X, Y  int
	Scale int // Each frame cell covers Scale x Scale screen cells; values below 1 mean 1
}

// Screen wraps tcell.Screen with the operations the game loop needs.
type Screen struct {
	screen     tcell.Screen
	fullscreen bool
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return newScreen(s), nil
}

// newScreen wraps an initialized tcell screen.
func newScreen(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Present copies the frame onto the screen and flushes it to the terminal.
func (s *Screen) Present(f *Frame, dst Blit) {
	scale := dst.Scale
	if scale < 1 {
		scale = 1
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			cell, _ := f.Cell(x, y)
			style := tcell.StyleDefault.Foreground(cell.Fg).Background(cell.Bg)
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					s.screen.SetContent(dst.X+x*scale+sx, dst.Y+y*scale+sy, cell.Glyph, nil, style)
				}
			}
		}
	}

	s.screen.Show()
}

// WaitKey blocks until a key is pressed. It returns false once the screen is
// finalized or Ctrl+C is pressed. Resize events redraw and keep waiting.
func (s *Screen) WaitKey() (KeyEvent, bool) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return KeyEvent{}, false
		case *tcell.EventKey:
			if isInterrupt(ev) {
				return KeyEvent{}, false
			}
			return KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}, true
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// ToggleFullscreen flips the requested fullscreen state and forces a full redraw.
// Terminals own their window, so the state is tracked rather than applied.
func (s *Screen) ToggleFullscreen() {
	s.fullscreen = !s.fullscreen
	s.screen.Sync()
}

// Fullscreen reports the requested fullscreen state.
func (s *Screen) Fullscreen() bool {
	return s.fullscreen
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}
