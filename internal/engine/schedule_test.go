package engine_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/egl2k/league-sim/internal/engine"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTeams(n int) []league.Team {
	teams := make([]league.Team, n)
	for i := range teams {
		teams[i] = league.Team{ID: fmt.Sprintf("team-%d", i), Name: fmt.Sprintf("Team %d", i)}
	}
	return teams
}

func pairKey(p league.Pairing) string {
	if p.TeamA < p.TeamB {
		return p.TeamA + "|" + p.TeamB
	}
	return p.TeamB + "|" + p.TeamA
}

func TestGenerateSchedule_Constraints(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := engine.New(rand.New(rand.NewSource(seed)))
		teams := makeTeams(10)
		weeks := e.GenerateSchedule(teams, 5)
		require.Len(t, weeks, 5)

		seenPairs := make(map[string]bool)
		matchCount := make(map[string]int)
		for _, w := range weeks {
			inWeek := make(map[string]bool)
			for _, m := range w.Matches {
				assert.False(t, inWeek[m.TeamA], "seed %d: team %s plays twice in week %d", seed, m.TeamA, w.Week)
				assert.False(t, inWeek[m.TeamB], "seed %d: team %s plays twice in week %d", seed, m.TeamB, w.Week)
				inWeek[m.TeamA] = true
				inWeek[m.TeamB] = true

				key := pairKey(m)
				assert.False(t, seenPairs[key], "seed %d: pair %s scheduled twice", seed, key)
				seenPairs[key] = true

				matchCount[m.TeamA]++
				matchCount[m.TeamB]++
			}
		}
		for team, count := range matchCount {
			assert.LessOrEqual(t, count, 4, "seed %d: team %s exceeds match cap", seed, team)
		}
	}
}

func TestGenerateSchedule_ByesAreComplement(t *testing.T) {
	e := engine.New(rand.New(rand.NewSource(3)))
	teams := makeTeams(10)
	weeks := e.GenerateSchedule(teams, 5)

	for _, w := range weeks {
		playing := make(map[string]bool)
		for _, m := range w.Matches {
			playing[m.TeamA] = true
			playing[m.TeamB] = true
		}
		for _, bye := range w.Byes {
			assert.False(t, playing[bye], "bye team %s has a match in week %d", bye, w.Week)
		}
		assert.Len(t, w.Byes, len(teams)-len(playing), "week %d byes must be the non-playing teams", w.Week)
	}
}

func TestGenerateSchedule_FourTeamsThreeWeeks(t *testing.T) {
	// 4 teams over 3 weeks: at most 2 matches per team and each of the 6
	// possible pairs at most once across the whole schedule.
	for seed := int64(0); seed < 20; seed++ {
		e := engine.New(rand.New(rand.NewSource(seed)))
		weeks := e.GenerateSchedule(makeTeams(4), 3)
		require.Len(t, weeks, 3)

		seenPairs := make(map[string]bool)
		matchCount := make(map[string]int)
		for _, w := range weeks {
			for _, m := range w.Matches {
				key := pairKey(m)
				assert.False(t, seenPairs[key], "seed %d: duplicate pair %s", seed, key)
				seenPairs[key] = true
				matchCount[m.TeamA]++
				matchCount[m.TeamB]++
			}
		}
		assert.LessOrEqual(t, len(seenPairs), 6)
		for team, count := range matchCount {
			assert.LessOrEqual(t, count, 2, "seed %d: team %s", seed, team)
		}
	}
}

func TestGenerateSchedule_OddTeamCountDegradesQuietly(t *testing.T) {
	e := engine.New(rand.New(rand.NewSource(11)))
	weeks := e.GenerateSchedule(makeTeams(5), 4)
	require.Len(t, weeks, 4)

	// With an odd team count at least one team sits out every week.
	for _, w := range weeks {
		assert.NotEmpty(t, w.Byes, "week %d", w.Week)
	}
}
