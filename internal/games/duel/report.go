package duel

import "github.com/vovakirdan/duel-arcade/internal/core"

// KO is a knockout: one side's health crossed below zero.
type KO struct {
	Scorer      core.PlayerID
	PlayerScore int
	BotScore    int
	Frame       int
}

// Report summarizes what one Step did.
type Report struct {
	Hits           int
	KOs            []KO
	Spawns         int
	Despawns       int // bullets that left the viewport
	DroppedSpawns  int // spawns refused by a full pool
	FuzzyFallbacks int // frames the controller held its previous output
}

// Add accumulates o into r.
func (r *Report) Add(o Report) {
	r.Hits += o.Hits
	r.KOs = append(r.KOs, o.KOs...)
	r.Spawns += o.Spawns
	r.Despawns += o.Despawns
	r.DroppedSpawns += o.DroppedSpawns
	r.FuzzyFallbacks += o.FuzzyFallbacks
}

// Empty reports whether nothing happened.
func (r Report) Empty() bool {
	return r.Hits == 0 && len(r.KOs) == 0 && r.Spawns == 0 &&
		r.Despawns == 0 && r.DroppedSpawns == 0 && r.FuzzyFallbacks == 0
}
