package entity

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

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

func TestMoveIntoOpenTile(t *testing.T) {
	g := defaultGrid(t)
	e := New("player", 25, 23, '@', tcell.ColorGreen)

	moved, err := e.MoveBy(1, 0, g)
	if err != nil {
		t.Fatalf("MoveBy failed: %v", err)
	}
	if !moved {
		t.Error("Expected move to succeed")
	}
	if x, y := e.Position(); x != 26 || y != 23 {
		t.Errorf("Expected pos (26,23), got (%d,%d)", x, y)
	}
}

func TestMoveIntoWall(t *testing.T) {
	g := defaultGrid(t)
	e := New("npc", 30, 14, 'Y', tcell.ColorYellow)

	moved, err := e.MoveBy(0, -1, g)
	if err != nil {
		t.Fatalf("MoveBy failed: %v", err)
	}
	if moved {
		t.Error("Expected move to fail (wall)")
	}
	if x, y := e.Position(); x != 30 || y != 14 {
		t.Errorf("Expected pos (30,14), got (%d,%d)", x, y)
	}
}

func TestMoveDiagonal(t *testing.T) {
	g := defaultGrid(t)
	e := New("player", 25, 22, '@', tcell.ColorGreen)

	// Both coordinates change together
	moved, err := e.MoveBy(1, 1, g)
	if err != nil || !moved {
		t.Fatalf("MoveBy = (%v, %v), want (true, nil)", moved, err)
	}
	if e.X != 26 || e.Y != 23 {
		t.Errorf("Expected pos (26,23), got (%d,%d)", e.X, e.Y)
	}

	// Room corner: (21,16) up-left is (20,15), the wall ring
	e = New("player", 21, 16, '@', tcell.ColorGreen)
	moved, _ = e.MoveBy(-1, -1, g)
	if moved || e.X != 21 || e.Y != 16 {
		t.Errorf("Diagonal into wall should be rejected, got moved=%v pos (%d,%d)", moved, e.X, e.Y)
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	g, err := world.NewGrid(3, 3, world.Empty())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	e := New("player", 0, 0, '@', tcell.ColorGreen)

	moved, err := e.MoveBy(-1, 0, g)
	if !errors.Is(err, world.ErrOutOfBounds) {
		t.Errorf("MoveBy error = %v, want ErrOutOfBounds", err)
	}
	if moved || e.X != 0 || e.Y != 0 {
		t.Errorf("Out-of-bounds move should leave position unchanged, got (%d,%d)", e.X, e.Y)
	}
}

func TestMoveAlongTunnel(t *testing.T) {
	g := defaultGrid(t)
	e := New("player", 25, 23, '@', tcell.ColorGreen)

	steps := 0
	for {
		moved, err := e.MoveBy(1, 0, g)
		if err != nil {
			t.Fatalf("MoveBy failed: %v", err)
		}
		if !moved {
			break
		}
		steps++
	}

	// Stops against the far wall of the second room (x=60)
	if e.X != 59 || steps != 34 {
		t.Errorf("Expected to stop at x=59 after 34 steps, got x=%d after %d", e.X, steps)
	}
}
