package engine

import (
	"fmt"

	"github.com/egl2k/league-sim/internal/league"
)

// OneOffResult is the outcome of an ad hoc 1v1 simulation.
type OneOffResult struct {
	Game     league.Game   `json:"game"`
	PlayerA  PlayerShowing `json:"playerA"`
	PlayerB  PlayerShowing `json:"playerB"`
	WinnerID *string       `json:"winner"`
}

// PlayerShowing is one side of a 1v1 result.
type PlayerShowing struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// SimulateOneOff pits two players against each other on one game. All three
// identifiers must resolve.
func (e *Engine) SimulateOneOff(st *league.State, playerAID, playerBID, gameID string) (OneOffResult, error) {
	a := st.PlayerByID(playerAID)
	b := st.PlayerByID(playerBID)
	g := st.GameByID(gameID)
	if a == nil || b == nil || g == nil {
		return OneOffResult{}, fmt.Errorf("1v1 ids %q, %q, %q: %w", playerAID, playerBID, gameID, ErrInvalidReference)
	}

	scoreA := e.PlayerScore(*a, *g)
	scoreB := e.PlayerScore(*b, *g)

	var winner *string
	if scoreA > scoreB {
		winner = &a.ID
	} else if scoreB > scoreA {
		winner = &b.ID
	}

	return OneOffResult{
		Game:     *g,
		PlayerA:  PlayerShowing{ID: a.ID, Name: a.DisplayName, Score: scoreA},
		PlayerB:  PlayerShowing{ID: b.ID, Name: b.DisplayName, Score: scoreB},
		WinnerID: winner,
	}, nil
}

// SimulateWeek plays every match scheduled in the given week and updates
// standings. Each match independently draws one random game from the catalog
// and scores both sides with the team-max rule. It returns the updated state
// and the per-match results; an out-of-range index is an error, not a crash.
func (e *Engine) SimulateWeek(st *league.State, weekIndex int) (*league.State, []league.MatchResult, error) {
	if weekIndex < 0 || weekIndex >= len(st.Schedule) {
		return nil, nil, fmt.Errorf("week index %d: %w", weekIndex, ErrInvalidReference)
	}
	if len(st.Games) == 0 {
		return nil, nil, fmt.Errorf("game catalog is empty: %w", ErrInvalidReference)
	}

	state := st.Clone()
	results, err := e.simulateWeekInPlace(state, weekIndex)
	if err != nil {
		return nil, nil, err
	}
	return state, results, nil
}

// simulateWeekInPlace mutates the given state directly. RunFullSeason uses
// it to iterate weeks over a single working copy.
func (e *Engine) simulateWeekInPlace(state *league.State, weekIndex int) ([]league.MatchResult, error) {
	week := state.Schedule[weekIndex]

	if state.Standings == nil {
		state.Standings = make(map[string]*league.StandingsEntry)
	}
	for _, t := range state.Teams {
		if state.Standings[t.ID] == nil {
			state.Standings[t.ID] = &league.StandingsEntry{}
		}
	}

	var results []league.MatchResult
	for _, match := range week.Matches {
		game := state.Games[e.rng.Intn(len(state.Games))]

		teamA := state.TeamByID(match.TeamA)
		teamB := state.TeamByID(match.TeamB)
		if teamA == nil || teamB == nil {
			return nil, fmt.Errorf("scheduled teams %q, %q: %w", match.TeamA, match.TeamB, ErrInvalidReference)
		}

		scoreA := e.teamScore(state, teamA, game)
		scoreB := e.teamScore(state, teamB, game)

		entryA := state.Standings[match.TeamA]
		entryB := state.Standings[match.TeamB]

		var winner *string
		switch {
		case scoreA > scoreB:
			entryA.Wins++
			entryB.Losses++
			id := match.TeamA
			winner = &id
		case scoreB > scoreA:
			entryB.Wins++
			entryA.Losses++
			id := match.TeamB
			winner = &id
		default:
			entryA.Ties++
			entryB.Ties++
		}
		entryA.PointsFor += scoreA
		entryA.PointsAgainst += scoreB
		entryB.PointsFor += scoreB
		entryB.PointsAgainst += scoreA

		results = append(results, league.MatchResult{
			TeamA:    match.TeamA,
			TeamB:    match.TeamB,
			GameID:   game.ID,
			ScoreA:   scoreA,
			ScoreB:   scoreB,
			WinnerID: winner,
		})
	}
	return results, nil
}

// teamScore is the best single roster performance on the game; an empty
// roster scores 0.
func (e *Engine) teamScore(st *league.State, team *league.Team, game league.Game) int {
	best := 0
	for _, pid := range team.Roster {
		p := st.PlayerByID(pid)
		if p == nil {
			continue
		}
		if s := e.PlayerScore(*p, game); s > best {
			best = s
		}
	}
	return best
}
