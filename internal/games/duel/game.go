// Package duel implements the fuzzy duel: a player ship and a bot
// exchanging fire across a fixed viewport. The Game value owns the entity
// pool, both sides' combat counters and the bot's pilot; it is driven one
// frame at a time through the scene lifecycle.
package duel

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duel-arcade/internal/config"
	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/entity"
	"github.com/vovakirdan/duel-arcade/internal/math2d"
	"github.com/vovakirdan/duel-arcade/internal/scene"
)

var _ scene.Scene = (*Game)(nil)

// Mesh names for the HUD icons, alongside the entity kind names.
const (
	MeshLives = "lives"
	MeshAmmo  = "ammo"
)

// Game is the simulation context. Nothing in it is global, so several
// games can run side by side.
type Game struct {
	cfg    config.DuelConfig
	log    *log.Logger
	loader core.MeshLoader

	// Load/Unload
	shapes    *entity.ShapeRegistry
	livesIcon core.MeshHandle
	ammoIcon  core.MeshHandle
	pool      *entity.Pool

	// Init/Free
	ship       entity.Handle
	bot        entity.Handle
	combat     Combat
	pilot      *Pilot
	difficulty *config.DifficultyManager

	frames  int
	elapsed float64
	paused  bool
	over    bool
	winner  core.PlayerID
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.DuelConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithMeshLoader sets the backend that creates meshes at Load.
func WithMeshLoader(l core.MeshLoader) Option {
	return func(g *Game) { g.loader = l }
}

// New creates an unloaded game.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultDuelConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.loader == nil {
		g.loader = &handleLoader{}
	}
	return g
}

// Load validates the configuration, creates the shape templates and HUD
// meshes and allocates the entity pool.
func (g *Game) Load() error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	shapes, err := entity.LoadShapes(g.loader)
	if err != nil {
		return err
	}
	lives, err := g.loader.CreateMesh(MeshLives)
	if err != nil {
		shapes.Unload(g.loader)
		return fmt.Errorf("duel: cannot create %s mesh: %w", MeshLives, err)
	}
	ammo, err := g.loader.CreateMesh(MeshAmmo)
	if err != nil {
		g.loader.FreeMesh(lives)
		shapes.Unload(g.loader)
		return fmt.Errorf("duel: cannot create %s mesh: %w", MeshAmmo, err)
	}

	g.shapes = shapes
	g.livesIcon = lives
	g.ammoIcon = ammo
	g.pool = entity.NewPool(g.cfg.Pool.Capacity, shapes)
	g.combat = NewCombat(g.cfg.Combat)
	g.pilot = NewPilot(g.cfg)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.log.Debug("loaded", "capacity", g.pool.Cap())
	return nil
}

// Init resets the pool and combat state and spawns both ships.
// It must follow a successful Load.
func (g *Game) Init() {
	g.pool.Clear()
	g.combat.Reset()
	g.frames = 0
	g.elapsed = 0
	g.paused = false
	g.over = false
	g.winner = 0

	size := g.cfg.Ship.Size
	g.ship = g.spawnShip(entity.KindShip, math2d.Vec(0, g.cfg.Ship.PlayerStart), math.Pi/2, size)
	g.bot = g.spawnShip(entity.KindBot, math2d.Vec(0, g.cfg.Ship.BotStart), -math.Pi/2, size)
	g.pilot.Reset(g.cfg.Ship.BotStart)
}

func (g *Game) spawnShip(kind entity.Kind, pos math2d.Vector, angle, size float64) entity.Handle {
	h, err := g.pool.Create(kind)
	if err != nil {
		// Load validated the capacity, so this means a broken pool.
		g.log.Error("cannot spawn", "kind", kind, "err", err)
		return entity.Nil
	}
	g.pool.AttachTransform(h, pos, angle, size, size)
	return h
}

// Update runs one frame. It satisfies the scene contract; Step also
// returns what happened.
func (g *Game) Update(f core.Frame) {
	g.Step(f)
}

// Free destroys every entity.
func (g *Game) Free() {
	if g.pool != nil {
		g.pool.Clear()
	}
	g.ship, g.bot = entity.Nil, entity.Nil
}

// Unload releases the meshes and the pool.
func (g *Game) Unload() {
	if g.shapes != nil {
		g.shapes.Unload(g.loader)
		g.loader.FreeMesh(g.livesIcon)
		g.loader.FreeMesh(g.ammoIcon)
	}
	g.shapes = nil
	g.pool = nil
}

// State returns the match summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.combat.Player.Score,
		OpponentScore: g.combat.Bot.Score,
		GameOver:      g.over,
		Paused:        g.paused,
		Winner:        g.winner,
	}
}

// Combat returns a copy of both sides' counters.
func (g *Game) Combat() Combat {
	return g.combat
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.DuelConfig {
	return g.cfg
}

// Bounds returns the viewport described by the configuration.
func (g *Game) Bounds() math2d.Bounds {
	return math2d.CenteredBounds(g.cfg.Field.Width, g.cfg.Field.Height)
}

// Pool exposes the entity pool for read-only inspection.
func (g *Game) Pool() *entity.Pool {
	return g.pool
}

// Ship returns the player ship's handle.
func (g *Game) Ship() entity.Handle {
	return g.ship
}

// Bot returns the bot's handle.
func (g *Game) Bot() entity.Handle {
	return g.bot
}

// Frames returns the number of simulated (unpaused) frames since Init.
func (g *Game) Frames() int {
	return g.frames
}

// Elapsed returns simulated seconds since Init.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Paused reports whether updates are suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// handleLoader hands out sequential handles when no backend is attached.
type handleLoader struct {
	next core.MeshHandle
}

func (l *handleLoader) CreateMesh(string) (core.MeshHandle, error) {
	l.next++
	return l.next, nil
}

func (l *handleLoader) FreeMesh(core.MeshHandle) {}
