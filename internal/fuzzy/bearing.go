package fuzzy

import (
	"math"

	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// FindPlayer returns the signed lateral offset between where the bot is
// facing and where the player is. dir points from the bot to the player,
// facing is the bot's heading. The unsigned angle between them is negated
// when facing lies on the counter-clockwise side of dir, and the result is
// sin(angle) * |dir|. A zero-length vector yields 0.
func FindPlayer(dir, facing math2d.Vector) float64 {
	dl, fl := dir.Len(), facing.Len()
	if dl == 0 || fl == 0 {
		return 0
	}

	cos := math2d.Clamp(dir.Dot(facing)/(dl*fl), -1, 1)
	angle := math.Acos(cos)
	if dir.Perp().Dot(facing) > 0 {
		angle = -angle
	}
	return math.Sin(angle) * dl
}
