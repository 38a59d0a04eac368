package headless

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/duel-arcade/internal/config"
	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/games/duel"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestAutopilotDeterministic(t *testing.T) {
	a := NewAutopilot(42, 0.5)
	b := NewAutopilot(42, 0.5)

	for i := range 500 {
		fa, fb := a.Next(), b.Next()
		if fa != fb {
			t.Fatalf("frame %d: %b != %b", i, fa, fb)
		}
	}
}

func TestAutopilotHoldsDirection(t *testing.T) {
	a := NewAutopilot(7, 0)

	changes := 0
	var prev core.InputFrame
	for i := range maxHold * 10 {
		in := a.Next()
		if in.Has(core.ActionFire) {
			t.Fatalf("frame %d: fired with zero fire chance", i)
		}
		if i > 0 && in != prev {
			changes++
		}
		prev = in
	}
	// Every direction is held at least minHold frames.
	if limit := maxHold * 10 / minHold; changes > limit {
		t.Errorf("direction changed %d times, want at most %d", changes, limit)
	}
}

func TestAutopilotReset(t *testing.T) {
	a := NewAutopilot(3, 0.3)
	var first []core.InputFrame
	for range 100 {
		first = append(first, a.Next())
	}

	a.Reset(3)
	for i := range 100 {
		if got := a.Next(); got != first[i] {
			t.Fatalf("frame %d differs after Reset", i)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() Result {
		g := duel.New()
		res, err := New(g, runtimeConfig(1234), WithMaxFrames(1200)).Run(context.Background())
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return res
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs with the same seed differ:\n%+v\n%+v", a, b)
	}
}

func TestRunStopsAtFrameLimit(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Gameplay.WinScore = 0

	res, err := New(duel.New(duel.WithConfig(cfg)), runtimeConfig(1), WithMaxFrames(90)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Frames != 90 {
		t.Errorf("Frames = %d, want 90", res.Frames)
	}
	if res.State.GameOver {
		t.Error("endless match reported game over")
	}
	if res.Elapsed < 1.49 || res.Elapsed > 1.51 {
		t.Errorf("Elapsed = %v, want 1.5", res.Elapsed)
	}
}

func TestRunEndsWithMatch(t *testing.T) {
	res, err := New(duel.New(), runtimeConfig(99), WithMaxFrames(3000), WithFireChance(1)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Frames != 3000 && !res.State.GameOver {
		t.Errorf("run stopped after %d frames without game over", res.Frames)
	}
	if res.Report.Spawns == 0 {
		t.Error("autopilot never fired")
	}
	if got := len(res.Report.KOs); got != res.State.Score+res.State.OpponentScore {
		t.Errorf("KOs = %d, scores = %d+%d", got, res.State.Score, res.State.OpponentScore)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(duel.New(), runtimeConfig(1)).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res.Frames != 0 {
		t.Errorf("Frames = %d, want 0", res.Frames)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Pool.Capacity = 0

	_, err := New(duel.New(duel.WithConfig(cfg)), runtimeConfig(1)).Run(context.Background())
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
