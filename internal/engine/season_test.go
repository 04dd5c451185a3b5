package engine_test

import (
	"fmt"
	"testing"

	"github.com/egl2k/league-sim/internal/engine"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenTeamLeague builds a 10-team league where every roster is a single
// player whose minimum-noise score is unique league-wide, so no playoff
// match under a zero source can tie.
func tenTeamLeague(t *testing.T) *league.State {
	t.Helper()

	players := distinctSkillPlayers(1, 4, "t1")
	players = append(players, distinctSkillPlayers(2, 4, "t2")...)
	players = append(players, distinctSkillPlayers(3, 2, "t3")...)
	require.Len(t, players, 10)

	st := &league.State{
		ID:    "playoff-league",
		Stage: league.StageRegularSeason,
		Games: []league.Game{neutralGame()},
	}
	for i, p := range players {
		teamID := fmt.Sprintf("team-%d", i)
		p.TeamID = &teamID
		st.Players = append(st.Players, p)
		st.Teams = append(st.Teams, league.Team{
			ID:       teamID,
			Name:     fmt.Sprintf("Team %d", i),
			LeaderID: p.ID,
			Roster:   []string{p.ID},
		})
	}
	return st
}

func TestRankTeams(t *testing.T) {
	st := &league.State{
		Standings: map[string]*league.StandingsEntry{
			"low":    {Wins: 1, PointsFor: 500},
			"high":   {Wins: 3, PointsFor: 100},
			"mid-a":  {Wins: 2, PointsFor: 250},
			"mid-b":  {Wins: 2, PointsFor: 200},
		},
	}
	records := engine.RankTeams(st)
	require.Len(t, records, 4)
	assert.Equal(t, "high", records[0].TeamID)
	assert.Equal(t, "mid-a", records[1].TeamID, "points-for breaks the tie")
	assert.Equal(t, "mid-b", records[2].TeamID)
	assert.Equal(t, "low", records[3].TeamID)
}

func TestRunFullSeason_TenTeamsPlayInAndBracket(t *testing.T) {
	// Scenario: 10 teams leave exactly 4 below the direct seeds, so the
	// play-in produces 2 matches and the bracket runs 3 rounds to a champion
	// when no ties occur.
	e := newDeterministicEngine()
	st := tenTeamLeague(t)
	st.Schedule = e.GenerateSchedule(st.Teams, 5)

	final, records, awards, err := e.RunFullSeason(st)
	require.NoError(t, err)
	require.Len(t, records, 10)

	require.NotNil(t, final.Playoffs)
	playoffs := final.Playoffs

	require.Len(t, playoffs.PlayIn, 2, "exactly two play-in matches")
	for _, m := range playoffs.PlayIn {
		require.NotNil(t, m.WinnerID, "distinct skills cannot tie")
	}

	require.Len(t, playoffs.Rounds, 3, "quarter, semi, final")
	assert.Len(t, playoffs.Rounds[0].Survivors, 4)
	assert.Len(t, playoffs.Rounds[1].Survivors, 2)
	assert.Len(t, playoffs.Rounds[2].Survivors, 1)

	require.NotNil(t, playoffs.Champion)
	assert.Equal(t, playoffs.Rounds[2].Survivors[0], *playoffs.Champion)
	require.NotNil(t, awards.Champion)
	assert.Equal(t, *playoffs.Champion, *awards.Champion)
	assert.Equal(t, league.Awards{MVP: awards.MVP, Champion: awards.Champion}, *final.Awards)
}

func TestRunFullSeason_RoundsHalve(t *testing.T) {
	e := newDeterministicEngine()
	st := tenTeamLeague(t)
	st.Schedule = e.GenerateSchedule(st.Teams, 5)

	final, _, _, err := e.RunFullSeason(st)
	require.NoError(t, err)

	prev := 8
	for _, round := range final.Playoffs.Rounds {
		assert.LessOrEqual(t, len(round.Survivors), prev/2)
		prev = len(round.Survivors)
	}
}

func TestRunFullSeason_FallbackTopEightWithoutPlayIn(t *testing.T) {
	// 8 teams leave 2 below the direct seeds, which is not a play-in shape:
	// the bracket just takes the top 8.
	e := newDeterministicEngine()
	st := tenTeamLeague(t)
	st.Teams = st.Teams[:8]
	st.Players = st.Players[:8]
	st.Schedule = e.GenerateSchedule(st.Teams, 5)

	final, _, _, err := e.RunFullSeason(st)
	require.NoError(t, err)
	assert.Empty(t, final.Playoffs.PlayIn)
	require.NotEmpty(t, final.Playoffs.Rounds)
	assert.Len(t, final.Playoffs.Rounds[0].Matches, 4)
}

func TestRunFullSeason_MVPIsHighestBaseSkill(t *testing.T) {
	e := newDeterministicEngine()
	st := tenTeamLeague(t)
	st.Schedule = e.GenerateSchedule(st.Teams, 5)

	_, _, awards, err := e.RunFullSeason(st)
	require.NoError(t, err)
	require.NotNil(t, awards.MVP)

	best := -1
	for _, p := range st.Players {
		if s := engine.BaseSkill(p); s > best {
			best = s
		}
	}
	mvp := st.PlayerByID(*awards.MVP)
	require.NotNil(t, mvp)
	assert.Equal(t, best, engine.BaseSkill(*mvp))
}

func TestRunFullSeason_AllTiesYieldNoChampion(t *testing.T) {
	// Two teams with empty rosters can only trade 0-0 ties: the bracket
	// round resolves nothing and no champion emerges.
	e := newDeterministicEngine()
	st := &league.State{
		ID:    "tie-league",
		Stage: league.StageRegularSeason,
		Teams: []league.Team{
			{ID: "team-a", Name: "Alpha", LeaderID: "x"},
			{ID: "team-b", Name: "Bravo", LeaderID: "y"},
		},
		Games: []league.Game{neutralGame()},
		Schedule: []league.ScheduleWeek{
			{Week: 1, Matches: []league.Pairing{{TeamA: "team-a", TeamB: "team-b"}}},
		},
	}

	final, _, awards, err := e.RunFullSeason(st)
	require.NoError(t, err)
	assert.Nil(t, final.Playoffs.Champion)
	assert.Nil(t, awards.Champion)
	require.Len(t, final.Playoffs.Rounds, 1)
	assert.Empty(t, final.Playoffs.Rounds[0].Survivors)
}

func TestRunFullSeason_RequiresSchedule(t *testing.T) {
	e := newDeterministicEngine()
	st := tenTeamLeague(t)

	_, _, _, err := e.RunFullSeason(st)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidReference)
}
