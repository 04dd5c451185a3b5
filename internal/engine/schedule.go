package engine

import (
	"github.com/egl2k/league-sim/internal/league"
)

// GenerateSchedule builds a weekCount-week pairing plan: every team plays at
// most once per week, meets each opponent at most once across the season, and
// is capped at weekCount-1 matches so at least one bye remains.
//
// The algorithm enumerates all unordered pairs, shuffles them, and greedily
// places each into the first week that fits. A pair that fits nowhere is
// silently dropped, so with odd team counts or unlucky shuffles some teams
// can end up with extra byes. Best effort, not a combinatorial design.
func (e *Engine) GenerateSchedule(teams []league.Team, weekCount int) []league.ScheduleWeek {
	teamIDs := make([]string, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
	}

	var pairs []league.Pairing
	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			pairs = append(pairs, league.Pairing{TeamA: teamIDs[i], TeamB: teamIDs[j]})
		}
	}
	e.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	weeks := make([]league.ScheduleWeek, weekCount)
	for i := range weeks {
		weeks[i].Week = i + 1
	}

	matchCount := make(map[string]int)
	busy := make([]map[string]bool, weekCount)
	for i := range busy {
		busy[i] = make(map[string]bool)
	}

	for _, pair := range pairs {
		if matchCount[pair.TeamA] >= weekCount-1 || matchCount[pair.TeamB] >= weekCount-1 {
			continue
		}
		for w := range weeks {
			if busy[w][pair.TeamA] || busy[w][pair.TeamB] {
				continue
			}
			weeks[w].Matches = append(weeks[w].Matches, pair)
			busy[w][pair.TeamA] = true
			busy[w][pair.TeamB] = true
			matchCount[pair.TeamA]++
			matchCount[pair.TeamB]++
			break
		}
	}

	for w := range weeks {
		for _, id := range teamIDs {
			if !busy[w][id] {
				weeks[w].Byes = append(weeks[w].Byes, id)
			}
		}
	}
	return weeks
}
