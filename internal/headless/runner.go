package headless

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/games/duel"
)

// DefaultMaxFrames caps a run whose match never ends (ten minutes at 60 Hz).
const DefaultMaxFrames = 60 * 60 * 10

// Result is the outcome of a headless run.
type Result struct {
	Report  duel.Report // every frame's report, accumulated
	State   core.GameState
	Combat  duel.Combat
	Frames  int
	Elapsed float64 // simulated seconds
}

// Runner drives one game at a fixed time step.
type Runner struct {
	game       *duel.Game
	cfg        core.RuntimeConfig
	maxFrames  int
	fireChance float64
	log        *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithMaxFrames stops the run after n frames even if the match goes on.
func WithMaxFrames(n int) Option {
	return func(r *Runner) { r.maxFrames = n }
}

// WithFireChance sets the autopilot's per-frame trigger probability.
func WithFireChance(p float64) Option {
	return func(r *Runner) { r.fireChance = p }
}

// WithLogger sets the runner's logger. The game keeps its own.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// New creates a runner for game. cfg supplies the tick rate and the
// autopilot seed.
func New(game *duel.Game, cfg core.RuntimeConfig, opts ...Option) *Runner {
	r := &Runner{
		game:       game,
		cfg:        cfg,
		maxFrames:  DefaultMaxFrames,
		fireChance: DefaultFireChance,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = log.New(io.Discard)
	}
	if r.maxFrames <= 0 {
		r.maxFrames = DefaultMaxFrames
	}
	return r
}

// Run loads the game, plays until the match ends, the frame limit is
// reached or ctx is cancelled, and unloads it again. On cancellation the
// partial result is returned with ctx's error.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if err := r.game.Load(); err != nil {
		return Result{}, err
	}
	defer r.game.Unload()
	r.game.Init()
	defer r.game.Free()

	pilot := NewAutopilot(r.cfg.Seed, r.fireChance)
	dt := r.cfg.FrameTime()
	bounds := r.game.Bounds()
	r.log.Debug("simulation started", "seed", r.cfg.Seed, "dt", dt, "max_frames", r.maxFrames)

	var res Result
	var err error
	for res.Frames < r.maxFrames {
		if err = ctx.Err(); err != nil {
			break
		}

		input := core.NewMultiInputFrame()
		input.SetPlayer(core.Player1, pilot.Next())
		res.Report.Add(r.game.Step(core.Frame{DT: dt, Bounds: bounds, Input: input}))
		res.Frames++

		if r.game.State().GameOver {
			break
		}
	}

	res.State = r.game.State()
	res.Combat = r.game.Combat()
	res.Elapsed = r.game.Elapsed()
	r.log.Info("simulation finished",
		"frames", res.Frames,
		"player", res.State.Score,
		"bot", res.State.OpponentScore,
		"hits", res.Report.Hits,
		"dropped", res.Report.DroppedSpawns,
		"fallbacks", res.Report.FuzzyFallbacks)
	return res, err
}
