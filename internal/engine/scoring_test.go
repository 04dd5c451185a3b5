package engine_test

import (
	"math/rand"
	"testing"

	"github.com/egl2k/league-sim/internal/engine"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/stretchr/testify/assert"
)

func TestBaseSkill_IsDeterministicPerPlayer(t *testing.T) {
	p := league.Player{ID: "player-abc", Tier: 2}
	first := engine.BaseSkill(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.BaseSkill(p), "base skill must be stable across calls")
	}
}

func TestBaseSkill_TierBands(t *testing.T) {
	tests := []struct {
		tier     int
		min, max int
	}{
		{0, 70, 79},
		{1, 92, 97},
		{2, 80, 87},
		{3, 64, 70},
	}
	for _, tc := range tests {
		for i := 0; i < 50; i++ {
			p := league.Player{ID: randomID(i), Tier: tc.tier}
			skill := engine.BaseSkill(p)
			assert.GreaterOrEqual(t, skill, tc.min, "tier %d", tc.tier)
			assert.LessOrEqual(t, skill, tc.max, "tier %d", tc.tier)
		}
	}
}

func randomID(i int) string {
	return string(rune('a'+i%26)) + string(rune('a'+(i/26)%26))
}

func TestPlayerScore_NoiseIsBounded(t *testing.T) {
	e := engine.New(rand.New(rand.NewSource(7)))
	p := league.Player{ID: "bounded", Tier: 1}
	g := neutralGame()
	base := float64(engine.BaseSkill(p))

	for i := 0; i < 200; i++ {
		score := float64(e.PlayerScore(p, g))
		assert.GreaterOrEqual(t, score, base*0.85-1)
		assert.LessOrEqual(t, score, base*1.15+1)
	}
}

func TestPlayerScore_DifficultyAndWeightDefaults(t *testing.T) {
	// A zero-valued difficulty is treated as neutral and a zero weight as 1,
	// so a fully zero game behaves like the neutral game.
	e := newDeterministicEngine()
	p := league.Player{ID: "defaulted", Tier: 2}

	zeroed := e.PlayerScore(p, league.Game{ID: "zeroed"})
	neutral := e.PlayerScore(p, neutralGame())
	assert.Equal(t, neutral, zeroed)
}

func TestPlayerScore_DifficultyScales(t *testing.T) {
	e := newDeterministicEngine()
	p := league.Player{ID: "scaling", Tier: 1}

	easy := e.PlayerScore(p, league.Game{ID: "g", Difficulty: 1, Weight: 1})
	neutral := e.PlayerScore(p, league.Game{ID: "g", Difficulty: 5, Weight: 1})
	hard := e.PlayerScore(p, league.Game{ID: "g", Difficulty: 10, Weight: 1})

	assert.Less(t, easy, neutral)
	assert.Greater(t, hard, neutral)
}

func TestPlayerScore_WeightMultiplies(t *testing.T) {
	e := newDeterministicEngine()
	p := league.Player{ID: "weighted", Tier: 2}

	single := e.PlayerScore(p, league.Game{ID: "g", Difficulty: 5, Weight: 1})
	double := e.PlayerScore(p, league.Game{ID: "g", Difficulty: 5, Weight: 2})
	assert.InDelta(t, single*2, double, 1)
}
