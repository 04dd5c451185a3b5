package engine

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/egl2k/league-sim/internal/league"
)

// neutralDifficulty is the midpoint of the 1-10 difficulty scale; a game at
// this value neither boosts nor dampens scores.
const neutralDifficulty = 5

// BaseSkill derives a player's deterministic skill rating from their tier.
// Each tier maps to a distinct band and the exact value inside the band comes
// from a PRNG seeded by the player's identity, so two engines always agree on
// a player's base skill. Leaders (tier 0) sit below tier 2 but above tier 3.
func BaseSkill(p league.Player) int {
	r := rand.New(rand.NewSource(identitySeed(p.ID)))
	switch p.Tier {
	case 0:
		return 70 + r.Intn(10)
	case 1:
		return 92 + r.Intn(6)
	case 2:
		return 80 + r.Intn(8)
	default:
		return 64 + r.Intn(7)
	}
}

func identitySeed(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}

// PlayerScore simulates one performance of a player on a game:
// base skill, scaled by the game's difficulty (centered so difficulty 5 is
// neutral) and weight (default 1), perturbed by a fresh noise draw in
// [0.85, 1.15) and rounded.
func (e *Engine) PlayerScore(p league.Player, g league.Game) int {
	base := float64(BaseSkill(p))

	difficulty := g.Difficulty
	if difficulty == 0 {
		difficulty = neutralDifficulty
	}
	modifier := 1 + float64(difficulty-neutralDifficulty)/20

	weight := g.Weight
	if weight == 0 {
		weight = 1
	}

	noise := 0.85 + e.rng.Float64()*0.3
	return int(math.Round(base * modifier * weight * noise))
}
