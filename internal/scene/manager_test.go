package scene

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// fakeScene appends every lifecycle call to a shared journal.
type fakeScene struct {
	journal *[]string
	loadErr error
}

func (s *fakeScene) Load() error { *s.journal = append(*s.journal, "load"); return s.loadErr }
func (s *fakeScene) Init() { *s.journal = append(*s.journal, "init") }
func (s *fakeScene) Update(core.Frame) { *s.journal = append(*s.journal, "update") }
func (s *fakeScene) Draw(core.Renderer) { *s.journal = append(*s.journal, "draw") }
func (s *fakeScene) Free() { *s.journal = append(*s.journal, "free") }
func (s *fakeScene) Unload() { *s.journal = append(*s.journal, "unload") }

type nopRenderer struct{}

func (nopRenderer) DrawMesh(math2d.Matrix, core.MeshHandle) {}
func (nopRenderer) DrawIcon(math2d.Vector, core.MeshHandle) {}

func newTestManager(journal *[]string, loadErr error) *Manager {
	reg := NewRegistry()
	reg.Register(Duel, func() Scene { return &fakeScene{journal: journal, loadErr: loadErr} })
	return NewManager(reg, nil)
}

func TestManagerLifecycle(t *testing.T) {
	var journal []string
	m := newTestManager(&journal, nil)

	if _, err := m.Step(core.Frame{}, nopRenderer{}); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if err := m.Start(Duel); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if done, err := m.Step(core.Frame{}, nopRenderer{}); done || err != nil {
		t.Fatalf("Step = %v, %v", done, err)
	}

	m.Request(Restart)
	if done, _ := m.Step(core.Frame{}, nopRenderer{}); done {
		t.Fatal("restart should not end the loop")
	}
	if m.Current() != Duel {
		t.Errorf("restart should return to duel, got %s", m.Current())
	}

	m.Request(Quit)
	done, err := m.Step(core.Frame{}, nopRenderer{})
	if !done || err != nil {
		t.Fatalf("quit Step = %v, %v", done, err)
	}
	if m.Scene() != nil || !m.Done() {
		t.Error("manager should be stopped")
	}

	expected := []string{
		"load", "init",
		"update", "draw",
		"update", "draw", "free", "init", // restart: no unload/load
		"update", "draw", "free", "unload",
	}
	if !reflect.DeepEqual(journal, expected) {
		t.Errorf("journal = %v\nexpected %v", journal, expected)
	}
}

func TestManagerUnknownScene(t *testing.T) {
	m := NewManager(NewRegistry(), nil)
	if err := m.Start(Duel); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("expected ErrUnknownScene, got %v", err)
	}
	if m.Scene() != nil {
		t.Error("nothing should be running")
	}

	var journal []string
	m = newTestManager(&journal, nil)
	err := m.Start(Restart)
	if !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("expected ErrUnknownScene for a control id, got %v", err)
	}
	if !strings.Contains(err.Error(), "registered: [duel]") {
		t.Errorf("error should list registered scenes: %v", err)
	}
	if len(journal) != 0 || m.Scene() != nil {
		t.Errorf("rejected Start must not touch any scene: %v", journal)
	}
	if err := m.Start(Duel); err != nil {
		t.Errorf("Start(Duel) after a rejected id: %v", err)
	}
}

func TestManagerLoadFailure(t *testing.T) {
	var journal []string
	boom := errors.New("boom")
	m := newTestManager(&journal, boom)
	if err := m.Start(Duel); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if len(journal) != 1 {
		t.Errorf("Init must not run after a failed Load: %v", journal)
	}
}

func TestManagerStop(t *testing.T) {
	var journal []string
	m := newTestManager(&journal, nil)
	if err := m.Start(Duel); err != nil {
		t.Fatal(err)
	}
	m.Stop()
	if !m.Done() {
		t.Fatal("Stop should quit")
	}
	if journal[len(journal)-1] != "unload" {
		t.Errorf("Stop should unload, journal %v", journal)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg.Exists(Duel) {
		t.Fatal("new registry should be empty")
	}
	reg.Register(Duel, func() Scene { return &fakeScene{journal: new([]string)} })
	if !reg.Exists(Duel) || len(reg.List()) != 1 {
		t.Error("Duel should be registered")
	}

	assertPanics(t, func() { reg.Register(Duel, nil) })
	assertPanics(t, func() { reg.Register(Quit, nil) })
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("duel"); err != nil || id != Duel {
		t.Errorf("ParseID(duel) = %v, %v", id, err)
	}
	if _, err := ParseID("asteroids"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	f()
}
