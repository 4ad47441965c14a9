package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/agent2199/internal/ui"
)

// CommandKind identifies what a key press asks the game to do.
type CommandKind int

const (
	// CommandNone ignores the key.
	CommandNone CommandKind = iota
	// CommandMove moves the player by DX, DY.
	CommandMove
	// CommandToggleFullscreen is passed straight to the terminal.
	CommandToggleFullscreen
	// CommandQuit exits the loop.
	CommandQuit
)

// String returns a human-readable command name.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandMove:
		return "move"
	case CommandToggleFullscreen:
		return "toggle_fullscreen"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a translated key press.
type Command struct {
	Kind   CommandKind
	DX, DY int
}

// Translate maps a key event to a command.
func Translate(ev ui.KeyEvent) Command {
	switch ev.Key {
	case tcell.KeyUp:
		return Command{Kind: CommandMove, DX: 0, DY: -1}
	case tcell.KeyDown:
		return Command{Kind: CommandMove, DX: 0, DY: 1}
	case tcell.KeyLeft:
		return Command{Kind: CommandMove, DX: -1, DY: 0}
	case tcell.KeyRight:
		return Command{Kind: CommandMove, DX: 1, DY: 0}
	case tcell.KeyEnter:
		if ev.Mod&tcell.ModAlt != 0 {
			return Command{Kind: CommandToggleFullscreen}
		}
	case tcell.KeyEscape:
		return Command{Kind: CommandQuit}
	}
	return Command{Kind: CommandNone}
}
