package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/agent2199/internal/entity"
	"github.com/samdwyer/agent2199/internal/ui"
	"github.com/samdwyer/agent2199/internal/world"
)

// ErrInvalidLevel is returned when a level definition fails validation.
var ErrInvalidLevel = errors.New("invalid level")

// DefaultLevelFile is the embedded reference level.
const DefaultLevelFile = "level.json"

// SizeDef is a width/height pair in cells.
type SizeDef struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PaletteDef holds the map background colors as hex strings.
// An empty color falls back to ui.DefaultPalette.
type PaletteDef struct {
	Wall   string `json:"wall"`   // Background of sight-blocking tiles
	Ground string `json:"ground"` // Background of open tiles
}

// RoomDef describes a room by origin and size.
type RoomDef struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// TunnelDef describes a straight corridor.
type TunnelDef struct {
	Orientation string `json:"orientation"` // "horizontal" or "vertical"
	From        int    `json:"from"`        // Start of the span (either order)
	To          int    `json:"to"`          // End of the span (inclusive)
	At          int    `json:"at"`          // Fixed row (horizontal) or column (vertical)
}

// EntityDef describes an entity placed at session start.
type EntityDef struct {
	Name  string `json:"name"`  // Identifier used in logs
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "@")
	Color string `json:"color"` // Hex color code (e.g., "#00FF00")
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// LevelDef is the structure of a level file. The first entity is the player.
type LevelDef struct {
	Name     string      `json:"name"`
	Map      SizeDef     `json:"map"`
	Screen   SizeDef     `json:"screen"`
	Palette  PaletteDef  `json:"palette"`
	Rooms    []RoomDef   `json:"rooms"`
	Tunnels  []TunnelDef `json:"tunnels"`
	Entities []EntityDef `json:"entities"`
}

// LoadLevel loads and validates the embedded reference level.
func LoadLevel() (LevelDef, error) {
	level, err := Load[LevelDef](DefaultLevelFile)
	if err != nil {
		return level, err
	}
	return level, level.Validate()
}

// LoadLevelFile loads and validates a level from disk.
func LoadLevelFile(path string) (LevelDef, error) {
	level, err := LoadFile[LevelDef](path)
	if err != nil {
		return level, err
	}
	return level, level.Validate()
}

// Validate checks sizes, bounds, colors and glyphs, reporting every problem found.
func (l LevelDef) Validate() error {
	var problems []error
	w, h := l.Map.Width, l.Map.Height

	if w <= 0 || h <= 0 {
		problems = append(problems, fmt.Errorf("map size %dx%d must be positive", w, h))
	}
	if l.Screen.Width != 0 || l.Screen.Height != 0 {
		if l.Screen.Width < w || l.Screen.Height < h {
			problems = append(problems, fmt.Errorf("screen %dx%d smaller than map %dx%d",
				l.Screen.Width, l.Screen.Height, w, h))
		}
	}

	if _, err := l.UIPalette(); err != nil {
		problems = append(problems, err)
	}

	for i, r := range l.Rooms {
		if r.W <= 0 || r.H <= 0 {
			problems = append(problems, fmt.Errorf("room %d: size %dx%d must be positive", i, r.W, r.H))
			continue
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > w || r.Y+r.H > h {
			problems = append(problems, fmt.Errorf("room %d: (%d,%d %dx%d) outside map", i, r.X, r.Y, r.W, r.H))
		}
	}

	for i, t := range l.Tunnels {
		spanMax, atMax := w, h
		switch t.Orientation {
		case "horizontal":
		case "vertical":
			spanMax, atMax = h, w
		default:
			problems = append(problems, fmt.Errorf("tunnel %d: unknown orientation %q", i, t.Orientation))
			continue
		}
		if !within(t.From, spanMax) || !within(t.To, spanMax) || !within(t.At, atMax) {
			problems = append(problems, fmt.Errorf("tunnel %d: outside map", i))
		}
	}

	if len(l.Entities) == 0 {
		problems = append(problems, errors.New("no entities: a player is required"))
	}
	for i, e := range l.Entities {
		if utf8.RuneCountInString(e.Glyph) != 1 {
			problems = append(problems, fmt.Errorf("entity %d (%s): glyph %q must be one character", i, e.Name, e.Glyph))
		}
		if _, err := ParseHexColor(e.Color); err != nil {
			problems = append(problems, fmt.Errorf("entity %d (%s): %w", i, e.Name, err))
		}
		if !within(e.X, w) || !within(e.Y, h) {
			problems = append(problems, fmt.Errorf("entity %d (%s): (%d,%d) outside map", i, e.Name, e.X, e.Y))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidLevel, l.Name, errors.Join(problems...))
	}
	return nil
}

// Layout converts the level into generator inputs.
func (l LevelDef) Layout() world.Layout {
	layout := world.Layout{
		Width:   l.Map.Width,
		Height:  l.Map.Height,
		Rooms:   make([]world.Rect, 0, len(l.Rooms)),
		Tunnels: make([]world.Tunnel, 0, len(l.Tunnels)),
	}
	for _, r := range l.Rooms {
		layout.Rooms = append(layout.Rooms, world.NewRect(r.X, r.Y, r.W, r.H))
	}
	for _, t := range l.Tunnels {
		o := world.Horizontal
		if t.Orientation == "vertical" {
			o = world.Vertical
		}
		layout.Tunnels = append(layout.Tunnels, world.Tunnel{Orientation: o, From: t.From, To: t.To, At: t.At})
	}
	return layout
}

// UIPalette returns the level's background colors.
func (l LevelDef) UIPalette() (ui.Palette, error) {
	p := ui.DefaultPalette()
	if l.Palette.Wall != "" {
		wall, err := ParseHexColor(l.Palette.Wall)
		if err != nil {
			return p, fmt.Errorf("palette wall: %w", err)
		}
		p.Wall = wall
	}
	if l.Palette.Ground != "" {
		ground, err := ParseHexColor(l.Palette.Ground)
		if err != nil {
			return p, fmt.Errorf("palette ground: %w", err)
		}
		p.Ground = ground
	}
	return p, nil
}

// ScreenSize returns the root screen size, which defaults to the map size.
func (l LevelDef) ScreenSize() (width, height int) {
	if l.Screen.Width == 0 && l.Screen.Height == 0 {
		return l.Map.Width, l.Map.Height
	}
	return l.Screen.Width, l.Screen.Height
}

// FitsTerminal reports whether a terminal of the given size can show the
// whole root screen.
func (l LevelDef) FitsTerminal(width, height int) bool {
	w, h := l.ScreenSize()
	return width >= w && height >= h
}

// NewEntities creates the level's entities in file order.
func (l LevelDef) NewEntities() ([]*entity.Entity, error) {
	entities := make([]*entity.Entity, 0, len(l.Entities))
	for _, def := range l.Entities {
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("entity %s: %w", def.Name, err)
		}
		glyph, _ := utf8.DecodeRuneInString(def.Glyph)
		entities = append(entities, entity.New(def.Name, def.X, def.Y, glyph, color))
	}
	return entities, nil
}

func within(v, limit int) bool {
	return v >= 0 && v < limit
}
