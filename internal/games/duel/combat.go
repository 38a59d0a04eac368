package duel

import (
	"math"

	"github.com/vovakirdan/duel-arcade/internal/config"
)

// Side is one combatant's counters.
type Side struct {
	Health float64
	Ammo   int
	Lives  int
	Reload float64 // seconds since the magazine last emptied
	Score  int     // KOs inflicted on the opponent
}

func newSide(rules config.DuelCombat) Side {
	return Side{
		Health: rules.MaxHealth,
		Ammo:   rules.MaxAmmo,
		Lives:  rules.MaxLives,
	}
}

// LivesFor derives the life counter from health:
// min(maxLives, floor(health/healthPerLife)+1).
func LivesFor(health float64, rules config.DuelCombat) int {
	return min(rules.MaxLives, int(math.Floor(health/rules.HealthPerLife))+1)
}

// ApplyHit records one bullet hit. Lives are taken from the health
// before the damage lands. When health drops below zero the side is
// restored to full and ApplyHit reports a knockout; the caller credits
// the opponent.
func (s *Side) ApplyHit(rules config.DuelCombat) (ko bool) {
	s.Lives = LivesFor(s.Health, rules)
	s.Health -= rules.Damage
	if s.Health < 0 {
		s.Health = rules.MaxHealth
		s.Lives = rules.MaxLives
		return true
	}
	return false
}

// Tick advances the reload timer.
func (s *Side) Tick(dt float64) {
	s.Reload += dt
}

// CanFire reports whether a round is chambered.
func (s *Side) CanFire() bool {
	return s.Ammo > 0
}

// Spend consumes one round. Emptying the magazine restarts the reload timer.
func (s *Side) Spend() {
	if s.Ammo <= 0 {
		return
	}
	s.Ammo--
	if s.Ammo == 0 {
		s.Reload = 0
	}
}

// TryReload refills an empty magazine once the cooldown has elapsed.
func (s *Side) TryReload(rules config.DuelCombat) bool {
	if s.Ammo != 0 || s.Reload < rules.ReloadSecs {
		return false
	}
	s.Ammo = rules.MaxAmmo
	return true
}

// Combat holds both sides and the rules they play by.
type Combat struct {
	Player Side
	Bot    Side

	rules config.DuelCombat
}

// NewCombat returns both sides at full strength.
func NewCombat(rules config.DuelCombat) Combat {
	return Combat{
		Player: newSide(rules),
		Bot:    newSide(rules),
		rules:  rules,
	}
}

// Reset restores both sides, scores included.
func (c *Combat) Reset() {
	c.Player = newSide(c.rules)
	c.Bot = newSide(c.rules)
}

// Tick advances both reload timers.
func (c *Combat) Tick(dt float64) {
	c.Player.Tick(dt)
	c.Bot.Tick(dt)
}

// Reload runs the refill check for both sides.
func (c *Combat) Reload() {
	c.Player.TryReload(c.rules)
	c.Bot.TryReload(c.rules)
}
