package engine_test

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/egl2k/league-sim/internal/engine"
	"github.com/egl2k/league-sim/internal/league"
)

// zeroSource is a rand.Source that always yields zero. An engine built on it
// always takes the top-ranked draft candidate, always draws the minimum
// noise factor, and shuffles deterministically, which makes simulation
// outcomes a pure function of base skill.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func newDeterministicEngine() *engine.Engine {
	return engine.New(rand.New(zeroSource{}))
}

func strPtr(s string) *string { return &s }

// distinctSkillPlayers returns n players of the given tier whose minimum-noise
// scores (round(baseSkill * 0.85)) are pairwise distinct, so matches between
// them under a zero source can never tie. Candidate IDs are probed until
// enough distinct values turn up.
func distinctSkillPlayers(tier, n int, idPrefix string) []league.Player {
	seen := make(map[int]bool)
	var out []league.Player
	for i := 0; len(out) < n; i++ {
		if i > 10000 {
			panic("could not find enough distinct-skill players")
		}
		p := league.Player{
			ID:          fmt.Sprintf("%s-%d", idPrefix, i),
			DisplayName: fmt.Sprintf("%s %d", idPrefix, i),
			Tier:        tier,
			JoinDate:    "2023-01-01",
		}
		key := int(math.Round(float64(engine.BaseSkill(p)) * 0.85))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// neutralGame is a catalog of exactly one game at the neutral difficulty
// midpoint with default weight.
func neutralGame() league.Game {
	return league.Game{ID: "game-1", Title: "Neutral Game", Difficulty: 5, Weight: 1}
}
