package league

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Stage tracks a league's progress through the season lifecycle.
// Transitions are owned by the service layer, not the engine.
type Stage string

const (
	StageDraft         Stage = "draft"
	StageRegularSeason Stage = "regular_season"
	StagePlayoffs      Stage = "playoffs"
	StageComplete      Stage = "complete"
)

// Player is a league participant. Tier 0 marks a team leader; leaders are
// anchored to their team and never enter the draft pool. Tiers 1-3 are
// draftable, tier 1 being the strongest band.
type Player struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Tier        int     `json:"tier"`
	TeamID      *string `json:"teamId"`
	JoinDate    string  `json:"joinDate"` // YYYY-MM-DD, draft round 3 ordering key
}

// Team holds display metadata, a leader reference and the drafted roster.
// The roster is an ordered list of player IDs and excludes the leader.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	LeaderID string   `json:"leaderId"`
	Roster   []string `json:"roster"`
}

// Game is a title in the catalog. Difficulty 5 is neutral; a zero Weight is
// treated as 1 by the scoring model.
type Game struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Difficulty int     `json:"difficulty"`
	Weight     float64 `json:"weight,omitempty"`
}

// DraftPick records one slot in the pick log. PlayerID is nil when a team had
// no legal candidate, with Reason explaining why.
type DraftPick struct {
	TeamID   string  `json:"teamId"`
	PlayerID *string `json:"playerId"`
	Round    int     `json:"round"`
	Reason   string  `json:"reason,omitempty"`
}

// DraftState carries the shuffled team order shared by rounds 1 and 2, plus
// the accumulated pick log. The order is generated once and persisted so
// repeated draft runs stay order-stable.
type DraftState struct {
	Order []string    `json:"order"`
	Picks []DraftPick `json:"picks"`
}

// Pairing is an unordered pair of team IDs scheduled to meet.
type Pairing struct {
	TeamA string `json:"teamA"`
	TeamB string `json:"teamB"`
}

// ScheduleWeek is one week of the season plan: the matches to play and the
// teams sitting out.
type ScheduleWeek struct {
	Week    int       `json:"week"`
	Matches []Pairing `json:"matches"`
	Byes    []string  `json:"byes"`
}

// StandingsEntry is a team's season record. Entries are created lazily with
// zero values the first time a team is touched by the standings engine.
type StandingsEntry struct {
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Ties          int `json:"ties"`
	PointsFor     int `json:"pointsFor"`
	PointsAgainst int `json:"pointsAgainst"`
}

// MatchResult is the outcome of a simulated team-vs-team match. WinnerID is
// nil on a tie.
type MatchResult struct {
	TeamA    string  `json:"teamA"`
	TeamB    string  `json:"teamB"`
	GameID   string  `json:"gameId"`
	ScoreA   int     `json:"scoreA"`
	ScoreB   int     `json:"scoreB"`
	WinnerID *string `json:"winner"`
}

// BracketRound is one elimination round: the matches played and the teams
// that advanced, in seed order.
type BracketRound struct {
	Matches   []MatchResult `json:"matches"`
	Survivors []string      `json:"survivors"`
}

// Playoffs holds the play-in results (zero or two matches) and the
// elimination rounds down to a champion, when one exists.
type Playoffs struct {
	PlayIn   []MatchResult  `json:"playInResults"`
	Rounds   []BracketRound `json:"rounds"`
	Champion *string        `json:"champion"`
}

// TeamRecord is one row of the ranked standings table.
type TeamRecord struct {
	TeamID    string `json:"teamId"`
	Wins      int    `json:"wins"`
	Ties      int    `json:"ties"`
	PointsFor int    `json:"pointsFor"`
}

// Awards are derived once from final season state, never accumulated.
type Awards struct {
	MVP      *string `json:"mvp"`
	Champion *string `json:"champion"`
}

// State is the full league document. Every engine operation consumes a State
// and returns a new one; the HTTP layer owns the single mutable cell.
type State struct {
	ID        string                     `json:"id"`
	Stage     Stage                      `json:"stage"`
	Players   []Player                   `json:"players"`
	Teams     []Team                     `json:"teams"`
	Games     []Game                     `json:"games"`
	Draft     DraftState                 `json:"draft"`
	Schedule  []ScheduleWeek             `json:"schedule"`
	Standings map[string]*StandingsEntry `json:"standings"`
	Playoffs  *Playoffs                  `json:"playoffs"`
	Awards    *Awards                    `json:"awards"`
}

// PlayerByID returns a pointer into the state's player slice, or nil.
func (s *State) PlayerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// TeamByID returns a pointer into the state's team slice, or nil.
func (s *State) TeamByID(id string) *Team {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

// GameByID returns a pointer into the state's game slice, or nil.
func (s *State) GameByID(id string) *Game {
	for i := range s.Games {
		if s.Games[i].ID == id {
			return &s.Games[i]
		}
	}
	return nil
}
