package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duel-arcade/internal/core"
)

// ErrNotStarted is returned by Step before a successful Start.
var ErrNotStarted = errors.New("scene: manager not started")

// Manager drives one scene at a time. The caller owns the frame loop and
// calls Step once per tick; transitions requested during a frame take
// effect at the end of it:
//
//   - Free always runs on the outgoing scene.
//   - Unload runs unless the next ID is Restart.
//   - Restart re-runs Init on the same scene without Load.
//   - Quit ends the loop; Step reports done.
type Manager struct {
	registry *Registry
	log      *log.Logger

	curr, prev, next ID
	scene            Scene
	started          bool
	done             bool
}

// NewManager creates a manager resolving scenes through reg.
func NewManager(reg *Registry, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{registry: reg, log: logger}
}

// Start loads and initializes the first scene. An unregistered ID is a
// configuration error and nothing is started.
func (m *Manager) Start(id ID) error {
	if m.started && !m.done {
		return fmt.Errorf("scene: already running %s", m.curr)
	}
	if !m.registry.Exists(id) {
		return fmt.Errorf("%w: %s (registered: %v)", ErrUnknownScene, id, m.registry.List())
	}
	m.curr, m.prev, m.next = id, id, id
	m.done = false

	if err := m.enter(id); err != nil {
		return err
	}
	m.started = true
	return nil
}

// enter creates, loads and initializes id.
func (m *Manager) enter(id ID) error {
	s, err := m.registry.Create(id)
	if err != nil {
		return err
	}
	if err := s.Load(); err != nil {
		return fmt.Errorf("scene: load %s: %w", id, err)
	}
	s.Init()
	m.scene = s
	m.log.Debug("scene entered", "scene", id)
	return nil
}

// Request schedules a transition at the end of the current frame.
func (m *Manager) Request(id ID) {
	m.next = id
}

// Step updates and draws the current scene, then applies any pending
// transition. done is true once the manager has quit.
func (m *Manager) Step(f core.Frame, r core.Renderer) (done bool, err error) {
	if !m.started {
		return false, ErrNotStarted
	}
	if m.done {
		return true, nil
	}
	m.scene.Update(f)
	m.scene.Draw(r)
	return m.Advance()
}

// Advance applies a pending transition, if any.
func (m *Manager) Advance() (done bool, err error) {
	if !m.started || m.done {
		return m.done, nil
	}
	if m.next == m.curr {
		return false, nil
	}

	m.scene.Free()
	if m.next != Restart {
		m.scene.Unload()
	}
	m.log.Debug("scene left", "scene", m.curr, "next", m.next)

	m.prev, m.curr = m.curr, m.next

	switch m.curr {
	case Quit:
		m.scene = nil
		m.done = true
		return true, nil
	case Restart:
		m.curr, m.next = m.prev, m.prev
		m.scene.Init()
		m.log.Debug("scene restarted", "scene", m.curr)
		return false, nil
	default:
		if err := m.enter(m.curr); err != nil {
			m.scene = nil
			m.done = true
			return true, err
		}
		return false, nil
	}
}

// Stop quits the current scene, releasing its resources.
func (m *Manager) Stop() {
	m.Request(Quit)
	_, _ = m.Advance()
}

// Current returns the running scene's ID.
func (m *Manager) Current() ID {
	return m.curr
}

// Scene returns the running scene, or nil when stopped.
func (m *Manager) Scene() Scene {
	return m.scene
}

// Done reports whether the manager has quit.
func (m *Manager) Done() bool {
	return m.done
}
