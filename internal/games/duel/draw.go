package duel

import (
	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// HUD icon layout, in world units relative to the owning ship.
const (
	livesOffsetX = -22.0
	livesSpacing = 15.0
	livesOffsetY = 40.0 // below the ship, above the bot
	ammoOffsetX  = 40.0 // right of the ship, left of the bot
	ammoOffsetY  = 25.0
	ammoSpacing  = 12.0
)

// Draw hands every active entity's matrix and mesh to r, then the
// lives and ammo icons of both sides. It does not mutate the game.
func (g *Game) Draw(r core.Renderer) {
	if g.pool == nil {
		return
	}
	for h := range g.pool.All() {
		t, s := g.pool.Transform(h), g.pool.Sprite(h)
		if t == nil || s == nil || s.Shape == nil {
			continue
		}
		r.DrawMesh(t.Matrix, s.Shape.Mesh)
	}

	if t := g.pool.Transform(g.ship); t != nil {
		g.drawHUD(r, t.Position, g.combat.Player, -1)
	}
	if t := g.pool.Transform(g.bot); t != nil {
		g.drawHUD(r, t.Position, g.combat.Bot, 1)
	}
}

// drawHUD places side's icons around pos. dir is -1 for the ship (lives
// underneath, ammo on the right) and 1 for the bot (mirrored).
func (g *Game) drawHUD(r core.Renderer, pos math2d.Vector, side Side, dir float64) {
	for i := range side.Lives {
		r.DrawIcon(math2d.Vec(
			pos.X+livesOffsetX+float64(i)*livesSpacing,
			pos.Y+dir*livesOffsetY,
		), g.livesIcon)
	}
	for i := range side.Ammo {
		r.DrawIcon(math2d.Vec(
			pos.X-dir*ammoOffsetX,
			pos.Y+ammoOffsetY-float64(i)*ammoSpacing,
		), g.ammoIcon)
	}
}
