package duel

import (
	"errors"
	"math"

	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/entity"
	"github.com/vovakirdan/duel-arcade/internal/fuzzy"
	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// Step advances the simulation by one frame:
//
//  1. reload timers
//  2. player movement and trigger
//  3. reload checks, then the bot's trigger
//  4. position integration
//  5. one pass over the pool: off-screen bullets, hits on the bot and
//     its steering, hits on the ship
//  6. transform matrices
//
// A pause toggle in the player's input is handled before anything else.
// Paused or finished games do not advance.
func (g *Game) Step(f core.Frame) Report {
	var r Report

	p1 := f.Input.Player1()
	if p1.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused || g.over {
		return r
	}

	g.frames++
	g.elapsed += f.DT
	g.combat.Tick(f.DT)

	g.movePlayer(p1, f.Bounds)
	if p1.Has(core.ActionFire) {
		g.fire(&g.combat.Player, g.ship, entity.KindPlayerBullet, &r)
	}

	g.combat.Reload()
	auto := g.autoTrigger(f.DT) // runs every frame so its cooldown keeps time
	if f.Input.Player2().Has(core.ActionFire) || auto {
		g.fire(&g.combat.Bot, g.bot, entity.KindBotBullet, &r)
	}

	g.integrate(f.DT)
	g.resolve(f.Bounds, &r)
	g.rebuild()
	g.checkMatchEnd()
	return r
}

// movePlayer applies held directions, keeping the ship inside the
// viewport and on its own half.
func (g *Game) movePlayer(in core.InputFrame, bounds math2d.Bounds) {
	t := g.pool.Transform(g.ship)
	if t == nil {
		return
	}

	step := g.cfg.Player.Step
	pos := t.Position
	if in.Has(core.ActionUp) {
		pos.Y += step
	}
	if in.Has(core.ActionDown) {
		pos.Y -= step
	}
	if in.Has(core.ActionLeft) {
		pos.X -= step
	}
	if in.Has(core.ActionRight) {
		pos.X += step
	}

	half := g.cfg.Ship.Size / 2
	pos = bounds.Shrink(half, half).Clamp(pos)
	pos.Y = min(pos.Y, -g.cfg.Ship.Size)
	t.Position = pos
}

// fire spawns a bullet from shooter's position along its heading. A full
// pool drops the shot without spending ammo.
func (g *Game) fire(side *Side, shooter entity.Handle, kind entity.Kind, r *Report) {
	if !side.CanFire() {
		return
	}
	st := g.pool.Transform(shooter)
	if st == nil {
		return
	}

	h, err := g.pool.Create(kind)
	if err != nil {
		r.DroppedSpawns++
		g.log.Warn("spawn dropped", "kind", kind, "live", g.pool.Len(), "err", err)
		return
	}

	scale := g.cfg.Bullets.Scale
	g.pool.AttachTransform(h, st.Position, st.Angle, scale, scale)
	g.pool.AttachPhysics(h, math2d.FromAngle(st.Angle).Scale(g.cfg.Bullets.Speed))
	side.Spend()
	r.Spawns++
}

// autoTrigger asks the pilot whether the bot pulls its own trigger.
func (g *Game) autoTrigger(dt float64) bool {
	bt, st := g.pool.Transform(g.bot), g.pool.Transform(g.ship)
	if bt == nil || st == nil {
		return false
	}
	offset := fuzzy.FindPlayer(st.Position.Sub(bt.Position), math2d.FromAngle(bt.Angle))
	interval := g.difficulty.FireInterval(g.cfg.Bot.FireInterval, g.combat.Player.Score, g.frames)
	return g.pilot.Trigger(dt, offset, interval, g.combat.Bot.CanFire())
}

func (g *Game) integrate(dt float64) {
	for h := range g.pool.All() {
		t, p := g.pool.Transform(h), g.pool.Physics(h)
		if t == nil || p == nil {
			continue
		}
		t.Position = p.Velocity.ScaleAdd(dt, t.Position)
	}
}

// resolve is the combined interaction pass, in slot order.
func (g *Game) resolve(bounds math2d.Bounds, r *Report) {
	for h := range g.pool.All() {
		kind, ok := g.pool.Kind(h)
		if !ok {
			continue
		}
		t := g.pool.Transform(h)
		if t == nil {
			continue
		}

		switch {
		case kind.IsBullet():
			if !bounds.Contains(t.Position) {
				g.pool.Destroy(h)
				r.Despawns++
			}
		case kind == entity.KindBot:
			g.resolveHits(h, entity.KindPlayerBullet, &g.combat.Bot, &g.combat.Player, core.Player1, r)
			g.steerBot(r)
		case kind == entity.KindShip:
			g.resolveHits(h, entity.KindBotBullet, &g.combat.Player, &g.combat.Bot, core.Player2, r)
		}
	}
}

// resolveHits tests every bullet of kind against target's box.
func (g *Game) resolveHits(target entity.Handle, kind entity.Kind, victim, scorer *Side, scorerID core.PlayerID, r *Report) {
	t := g.pool.Transform(target)
	if t == nil {
		return
	}
	for b := range g.pool.All() {
		if k, _ := g.pool.Kind(b); k != kind {
			continue
		}
		bt := g.pool.Transform(b)
		if bt == nil || !math2d.PointInRect(bt.Position, t.Position, t.ScaleX, t.ScaleY) {
			continue
		}

		g.pool.Destroy(b)
		r.Hits++
		if !victim.ApplyHit(g.cfg.Combat) {
			continue
		}

		scorer.Score++
		ko := KO{
			Scorer:      scorerID,
			PlayerScore: g.combat.Player.Score,
			BotScore:    g.combat.Bot.Score,
			Frame:       g.frames,
		}
		r.KOs = append(r.KOs, ko)
		g.log.Info("knockout", "scorer", scorerName(scorerID), "player", ko.PlayerScore, "bot", ko.BotScore)
	}
}

// steerBot moves the bot one frame toward the pilot's target.
func (g *Game) steerBot(r *Report) {
	bt, st := g.pool.Transform(g.bot), g.pool.Transform(g.ship)
	if bt == nil || st == nil {
		return
	}

	step := g.difficulty.BotStep(g.cfg.Bot.Step, g.combat.Player.Score, g.frames)
	pos, err := g.pilot.Steer(bt.Position, st.Position, bt.Angle, g.combat.Bot, step)
	if errors.Is(err, fuzzy.ErrNoRuleFired) {
		r.FuzzyFallbacks++
		g.log.Debug("fuzzy fallback", "health", g.combat.Bot.Health, "ammo", g.combat.Bot.Ammo,
			"player_y", math.Abs(st.Position.Y), "held", g.pilot.TargetY())
	}
	bt.Position = pos
}

func (g *Game) rebuild() {
	for h := range g.pool.All() {
		if t := g.pool.Transform(h); t != nil {
			t.Rebuild()
		}
	}
}

func (g *Game) checkMatchEnd() {
	win := g.cfg.Gameplay.WinScore
	if win <= 0 {
		return
	}
	switch {
	case g.combat.Player.Score >= win:
		g.winner = core.Player1
	case g.combat.Bot.Score >= win:
		g.winner = core.Player2
	default:
		return
	}
	g.over = true
	g.log.Info("match over", "winner", scorerName(g.winner),
		"player", g.combat.Player.Score, "bot", g.combat.Bot.Score, "frames", g.frames)
}

func scorerName(id core.PlayerID) string {
	if id == core.Player2 {
		return "bot"
	}
	return "player"
}
