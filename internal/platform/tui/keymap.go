package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duel-arcade/internal/core"
)

// KeyMap holds the duel's key bindings. Terminals report presses only, so
// each press counts for the next tick and key repeat gives held movement.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	BotFire key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding

	Screenshot key.Binding
}

// DefaultKeyMap returns arrows/WASD to move, space to fire, b to fire for
// the bot, p to pause, r to restart and q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		BotFire: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bot fires"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.BotFire, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.BotFire},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// Map translates a key press into the player it belongs to and a game
// action. Keys that are not bound return ActionNone.
func (k KeyMap) Map(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Player1, core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.Player1, core.ActionUp
	case key.Matches(msg, k.Down):
		return core.Player1, core.ActionDown
	case key.Matches(msg, k.Left):
		return core.Player1, core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.Player1, core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.Player1, core.ActionFire
	case key.Matches(msg, k.BotFire):
		return core.Player2, core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.Player1, core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.Player1, core.ActionRestart
	}
	return core.Player1, core.ActionNone
}
