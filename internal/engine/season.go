package engine

import (
	"fmt"
	"sort"

	"github.com/egl2k/league-sim/internal/league"
)

// directSeeds is how many ranked teams skip the play-in round.
const directSeeds = 6

// RankTeams sorts the current standings by wins descending, tiebroken by
// points-for descending.
func RankTeams(st *league.State) []league.TeamRecord {
	records := make([]league.TeamRecord, 0, len(st.Standings))
	for teamID, entry := range st.Standings {
		records = append(records, league.TeamRecord{
			TeamID:    teamID,
			Wins:      entry.Wins,
			Ties:      entry.Ties,
			PointsFor: entry.PointsFor,
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Wins != records[j].Wins {
			return records[i].Wins > records[j].Wins
		}
		if records[i].PointsFor != records[j].PointsFor {
			return records[i].PointsFor > records[j].PointsFor
		}
		return records[i].TeamID < records[j].TeamID
	})
	return records
}

// RunFullSeason simulates every remaining scheduled week in order, ranks the
// final standings, resolves the play-in and elimination bracket, and derives
// awards. It returns the completed state, the ranked standings and the
// awards.
func (e *Engine) RunFullSeason(st *league.State) (*league.State, []league.TeamRecord, league.Awards, error) {
	if len(st.Schedule) == 0 {
		return nil, nil, league.Awards{}, fmt.Errorf("no schedule generated: %w", ErrInvalidReference)
	}
	if len(st.Games) == 0 {
		return nil, nil, league.Awards{}, fmt.Errorf("game catalog is empty: %w", ErrInvalidReference)
	}

	state := st.Clone()
	for wi := range state.Schedule {
		if _, err := e.simulateWeekInPlace(state, wi); err != nil {
			return nil, nil, league.Awards{}, err
		}
	}

	records := RankTeams(state)

	ranked := make([]string, len(records))
	for i, r := range records {
		ranked[i] = r.TeamID
	}

	playoffs := &league.Playoffs{}

	var field []string
	if len(ranked) > directSeeds && len(ranked)-directSeeds == 4 {
		// Seeds 7-10 play in: 7v10 and 8v9. A drawn play-in advances no one.
		playIn := ranked[directSeeds:]
		m1 := e.playoffMatch(state, playIn[0], playIn[3])
		m2 := e.playoffMatch(state, playIn[1], playIn[2])
		playoffs.PlayIn = []league.MatchResult{m1, m2}

		field = append(field, ranked[:directSeeds]...)
		for _, m := range playoffs.PlayIn {
			if m.WinnerID != nil {
				field = append(field, *m.WinnerID)
			}
		}
		if len(field) > 8 {
			field = field[:8]
		}
	} else {
		// Any other remainder skips the play-in and takes the top 8.
		field = ranked
		if len(field) > 8 {
			field = field[:8]
		}
	}

	playoffs.Rounds, playoffs.Champion = e.runBracket(state, field)
	state.Playoffs = playoffs

	awards := e.computeAwards(state)
	state.Awards = &awards

	return state, records, awards, nil
}

// runBracket reduces the seeded field with a fold pairing (seed i against
// seed last-i) until at most one team remains. A tied match advances neither
// side, so a round can shrink below half or empty the field entirely.
func (e *Engine) runBracket(st *league.State, field []string) ([]league.BracketRound, *string) {
	remaining := append([]string(nil), field...)
	var rounds []league.BracketRound

	for len(remaining) > 1 {
		var matches []league.MatchResult
		var survivors []string
		for i := 0; i < len(remaining)/2; i++ {
			m := e.playoffMatch(st, remaining[i], remaining[len(remaining)-1-i])
			matches = append(matches, m)
			if m.WinnerID != nil {
				survivors = append(survivors, *m.WinnerID)
			}
		}
		rounds = append(rounds, league.BracketRound{Matches: matches, Survivors: survivors})
		remaining = survivors
	}

	if len(remaining) == 1 {
		champion := remaining[0]
		return rounds, &champion
	}
	return rounds, nil
}

// playoffMatch scores a single-elimination match: one random game, both
// sides scored with the team-max rule.
func (e *Engine) playoffMatch(st *league.State, teamAID, teamBID string) league.MatchResult {
	game := st.Games[e.rng.Intn(len(st.Games))]

	scoreA, scoreB := 0, 0
	if teamA := st.TeamByID(teamAID); teamA != nil {
		scoreA = e.teamScore(st, teamA, game)
	}
	if teamB := st.TeamByID(teamBID); teamB != nil {
		scoreB = e.teamScore(st, teamB, game)
	}

	var winner *string
	if scoreA > scoreB {
		id := teamAID
		winner = &id
	} else if scoreB > scoreA {
		id := teamBID
		winner = &id
	}

	return league.MatchResult{
		TeamA:    teamAID,
		TeamB:    teamBID,
		GameID:   game.ID,
		ScoreA:   scoreA,
		ScoreB:   scoreB,
		WinnerID: winner,
	}
}

// computeAwards derives season awards. MVP is the player with the highest
// tier-derived base skill, a coarse proxy rather than a performance-weighted
// statistic; the champion is copied from the bracket when one exists.
func (e *Engine) computeAwards(st *league.State) league.Awards {
	var awards league.Awards

	bestSkill := -1
	for _, p := range st.Players {
		if skill := BaseSkill(p); skill > bestSkill {
			bestSkill = skill
			id := p.ID
			awards.MVP = &id
		}
	}

	if st.Playoffs != nil && st.Playoffs.Champion != nil {
		champion := *st.Playoffs.Champion
		awards.Champion = &champion
	}
	return awards
}
