package fuzzy

import (
	"errors"
	"math"

	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// ErrNoRuleFired is returned when no rule has a non-zero firing strength
// (or an input is not finite). The accompanying value is the held output.
var ErrNoRuleFired = errors.New("fuzzy: no rule fired")

// Output selects one of the three output sets.
type Output int

const (
	Offensive Output = iota
	Neutral
	Defensive
)

func (o Output) String() string {
	switch o {
	case Offensive:
		return "offensive"
	case Neutral:
		return "neutral"
	case Defensive:
		return "defensive"
	default:
		return "unknown"
	}
}

// Input sets.
var (
	HealthSets = [3]Set{
		{Name: "low", Left: 0, Peak: 0, Right: 50},
		{Name: "medium", Left: 25, Peak: 50, Right: 75},
		{Name: "high", Left: 50, Peak: 100, Right: 100},
	}
	AmmoSets = [2]Set{
		{Name: "low", Left: 0, Peak: 0, Right: 3.5},
		{Name: "high", Left: 1.5, Peak: 5, Right: 5},
	}
	PositionSets = [3]Set{
		{Name: "near", Left: 0, Peak: 0, Right: 200},
		{Name: "mid", Left: 100, Peak: 175, Right: 250},
		{Name: "far", Left: 150, Peak: 300, Right: 300},
	}
)

// OutputSets is indexed by Output.
var OutputSets = [3]Set{
	Offensive: {Name: "offensive", Left: 0, Peak: 0, Right: 150},
	Neutral:   {Name: "neutral", Left: 100, Peak: 175, Right: 250},
	Defensive: {Name: "defensive", Left: 150, Peak: 300, Right: 300},
}

// RuleCount is the size of the health x ammo x position grid.
const RuleCount = len(HealthSets) * len(AmmoSets) * len(PositionSets)

// Rules maps rule index h*6 + a*3 + p to its output set. The table is
// tuned by hand and kept literal.
var Rules = [RuleCount]Output{
	Defensive, Neutral, Neutral,   // health low, ammo low
	Defensive, Neutral, Neutral,   // health low, ammo high
	Defensive, Defensive, Neutral, // health medium, ammo low
	Neutral, Neutral, Offensive,   // health medium, ammo high
	Neutral, Neutral, Offensive,   // health high, ammo low
	Offensive, Neutral, Offensive, // health high, ammo high
}

// RuleIndex returns the flat index of a (health, ammo, position) triple.
func RuleIndex(h, a, p int) int {
	return h*len(AmmoSets)*len(PositionSets) + a*len(PositionSets) + p
}

// Rule is one evaluated rule.
type Rule struct {
	Output Output
	Firing float64 // min of the three memberships
	Value  float64 // Sugeno linear output
}

// Controller computes the bot's target height. It remembers its last
// output so it can hold it when no rule fires.
type Controller struct {
	lo, hi float64
	last   float64
	rules  [RuleCount]Rule
}

// NewController returns a controller clamping its output to [lo, hi].
// initial is the value held until the first successful inference.
func NewController(lo, hi, initial float64) *Controller {
	return &Controller{lo: lo, hi: hi, last: initial}
}

// Range returns the clamp interval.
func (c *Controller) Range() (lo, hi float64) {
	return c.lo, c.hi
}

// Last returns the most recent output (or the held initial value).
func (c *Controller) Last() float64 {
	return c.last
}

// Reset forgets previous inferences and holds v.
func (c *Controller) Reset(v float64) {
	c.last = v
	c.rules = [RuleCount]Rule{}
}

// Rules returns the rule evaluations from the last call to TargetY.
func (c *Controller) Rules() [RuleCount]Rule {
	return c.rules
}

// TargetY infers the bot's target height from its health, its ammo and
// the player's absolute height. The result is the firing-weighted mean of
// all rule outputs, clamped to the controller's range. When nothing fires
// the previous output is returned along with ErrNoRuleFired.
func (c *Controller) TargetY(health, ammo, playerPos float64) (float64, error) {
	if !finite(health) || !finite(ammo) || !finite(playerPos) {
		return c.last, ErrNoRuleFired
	}

	var num, den float64
	for h, hs := range HealthSets {
		hd := hs.Degree(health)
		for a, as := range AmmoSets {
			ad := as.Degree(ammo)
			for p, ps := range PositionSets {
				i := RuleIndex(h, a, p)
				out := Rules[i]
				o := OutputSets[out]

				alpha := ratio(o.Span(), hs.Span())
				beta := ratio(o.Span(), as.Span())
				gamma := ratio(o.Span(), ps.Span())
				constant := o.Peak - alpha*hs.Peak - beta*as.Peak - gamma*ps.Peak

				r := Rule{
					Output: out,
					Firing: min(hd, ad, ps.Degree(playerPos)),
					Value:  alpha*health + beta*ammo + gamma*playerPos + constant,
				}
				c.rules[i] = r

				num += r.Firing * r.Value
				den += r.Firing
			}
		}
	}

	if den == 0 {
		return c.last, ErrNoRuleFired
	}

	c.last = math2d.Clamp(num/den, c.lo, c.hi)
	return c.last, nil
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
