package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/agent2199/internal/telemetry"
)

// ErrEmptyRoom is returned when a layout room has no area.
var ErrEmptyRoom = errors.New("room has no area")

const (
	// Reference map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// Orientation selects the axis a tunnel runs along.
type Orientation int

const (
	// Horizontal tunnels run along x at a fixed y.
	Horizontal Orientation = iota
	// Vertical tunnels run along y at a fixed x.
	Vertical
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Tunnel is a straight corridor. From and To may be given in either order.
type Tunnel struct {
	Orientation Orientation
	From, To    int // Span along the tunnel's axis (inclusive)
	At          int // Fixed coordinate on the other axis
}

// Layout holds the generator inputs for one map.
type Layout struct {
	Width   int
	Height  int
	Rooms   []Rect
	Tunnels []Tunnel
}

// DefaultLayout returns two rooms joined by one horizontal corridor on an 80x45 map.
func DefaultLayout() Layout {
	return Layout{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Rooms: []Rect{
			NewRect(20, 15, 10, 15),
			NewRect(50, 15, 10, 15),
		},
		Tunnels: []Tunnel{
			{Orientation: Horizontal, From: 25, To: 55, At: 23},
		},
	}
}

// Generate builds a solid grid and carves the layout's rooms, then its tunnels.
// The result depends only on the layout.
func Generate(ctx context.Context, layout Layout) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	grid, err := NewGrid(layout.Width, layout.Height, Wall())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for i, room := range layout.Rooms {
		if room.Empty() {
			err := fmt.Errorf("room %d: %w: %+v", i, ErrEmptyRoom, room)
			span.RecordError(err)
			return nil, err
		}
		// Rooms are carved unconditionally; overlaps are only reported.
		for j := 0; j < i; j++ {
			if room.Intersects(layout.Rooms[j]) {
				span.AddEvent("room.overlap", trace.WithAttributes(
					attribute.Int("room.index", i),
					attribute.Int("room.other", j),
				))
			}
		}
		if err := CarveRoom(grid, room); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
	}

	for i, t := range layout.Tunnels {
		if err := CarveTunnel(grid, t); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("tunnel %d: %w", i, err)
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", layout.Width),
		attribute.Int("dungeon.height", layout.Height),
		attribute.Int("dungeon.room_count", len(layout.Rooms)),
		attribute.Int("dungeon.tunnel_count", len(layout.Tunnels)),
		attribute.Int64("dungeon.generation_us", time.Since(startTime).Microseconds()),
	)

	return grid, nil
}

// CarveRoom sets every tile strictly inside the rectangle to floor.
// The bounding ring is left as it was, so rooms keep a wall border.
func CarveRoom(g *Grid, room Rect) error {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			if err := g.SetTile(x, y, Empty()); err != nil {
				return err
			}
		}
	}
	return nil
}

// CarveTunnel carves a tunnel along its orientation.
func CarveTunnel(g *Grid, t Tunnel) error {
	switch t.Orientation {
	case Horizontal:
		return CarveHorizontalTunnel(g, t.From, t.To, t.At)
	case Vertical:
		return CarveVerticalTunnel(g, t.From, t.To, t.At)
	default:
		return fmt.Errorf("unknown tunnel orientation %d", t.Orientation)
	}
}

// CarveHorizontalTunnel carves floor from x1 to x2 inclusive along row y.
func CarveHorizontalTunnel(g *Grid, x1, x2, y int) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if err := g.SetTile(x, y, Empty()); err != nil {
			return err
		}
	}
	return nil
}

// CarveVerticalTunnel carves floor from y1 to y2 inclusive along column x.
func CarveVerticalTunnel(g *Grid, y1, y2, x int) error {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if err := g.SetTile(x, y, Empty()); err != nil {
			return err
		}
	}
	return nil
}
