package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/agent2199/internal/entity"
	"github.com/samdwyer/agent2199/internal/world"
)

func defaultGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.Generate(context.Background(), world.DefaultLayout())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return g
}

func TestComposeBackground(t *testing.T) {
	g := defaultGrid(t)
	f := NewFrame(g.Width(), g.Height())
	p := DefaultPalette()

	if err := Compose(f, g, nil, p); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile, _ := g.TileAt(x, y)
			cell, _ := f.Cell(x, y)
			want := p.Ground
			if tile.BlocksSight() {
				want = p.Wall
			}
			if cell.Bg != want {
				t.Fatalf("Background at (%d,%d) = %v, want %v", x, y, cell.Bg, want)
			}
		}
	}
}

func TestComposeEntities(t *testing.T) {
	g := defaultGrid(t)
	f := NewFrame(g.Width(), g.Height())
	p := DefaultPalette()

	player := entity.New("player", 25, 23, '@', tcell.ColorGreen)
	npc := entity.New("npc", 55, 23, 'Y', tcell.ColorYellow)

	if err := Compose(f, g, []*entity.Entity{player, npc}, p); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	cell, _ := f.Cell(25, 23)
	if cell.Glyph != '@' || cell.Fg != tcell.ColorGreen || cell.Bg != p.Ground {
		t.Errorf("Player cell = %+v, want green '@' on ground", cell)
	}
	cell, _ = f.Cell(55, 23)
	if cell.Glyph != 'Y' || cell.Fg != tcell.ColorYellow {
		t.Errorf("NPC cell = %+v, want yellow 'Y'", cell)
	}
	cell, _ = f.Cell(0, 0)
	if cell.Glyph != ' ' || cell.Bg != p.Wall {
		t.Errorf("Wall cell = %+v, want blank on wall color", cell)
	}
}

func TestComposeStackedEntities(t *testing.T) {
	g := defaultGrid(t)
	f := NewFrame(g.Width(), g.Height())

	first := entity.New("first", 26, 23, 'a', tcell.ColorRed)
	second := entity.New("second", 26, 23, 'b', tcell.ColorBlue)

	if err := Compose(f, g, []*entity.Entity{first, second}, DefaultPalette()); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	// Later entities draw over earlier ones
	cell, _ := f.Cell(26, 23)
	if cell.Glyph != 'b' || cell.Fg != tcell.ColorBlue {
		t.Errorf("Stacked cell = %+v, want blue 'b'", cell)
	}
}

func TestComposeEntityOutsideFrame(t *testing.T) {
	g := defaultGrid(t)
	f := NewFrame(g.Width(), g.Height())
	lost := entity.New("lost", 80, 10, '?', tcell.ColorWhite)

	err := Compose(f, g, []*entity.Entity{lost}, DefaultPalette())
	if !errors.Is(err, ErrOutOfFrame) {
		t.Errorf("Compose error = %v, want ErrOutOfFrame", err)
	}
}
