package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space for the player, B for the bot
	ActionPause          // P, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	actionCount
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// PlayerID identifies one side of the duel.
// Player1 is the human-controlled ship, Player2 is the bot's trigger channel.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// InputFrame is the set of actions one side triggered during a tick.
// The zero value is an empty frame.
type InputFrame uint16

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return 0 }

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	*f |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool { return f == 0 }

// Clear drops every action.
func (f *InputFrame) Clear() { *f = 0 }

// MultiInputFrame holds both sides' input for a single tick.
// The platform fills Player1 from the keyboard and Player2 from the manual
// bot trigger; the simulation consumes it without knowing the source.
type MultiInputFrame struct {
	frames [2]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{}
}

func slot(id PlayerID) (int, bool) {
	i := int(id) - 1
	return i, i >= 0 && i < 2
}

// Player returns the input frame for id; unknown players read as empty.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if i, ok := slot(id); ok {
		return m.frames[i]
	}
	return 0
}

// SetPlayer replaces the input frame for id.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if i, ok := slot(id); ok {
		m.frames[i] = frame
	}
}

// Press marks an action for the given player.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	if i, ok := slot(id); ok {
		m.frames[i].Set(a)
	}
}

// Player1 returns the ship's input.
func (m MultiInputFrame) Player1() InputFrame { return m.frames[0] }

// Player2 returns the bot trigger input.
func (m MultiInputFrame) Player2() InputFrame { return m.frames[1] }

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	m.frames = [2]InputFrame{}
}
