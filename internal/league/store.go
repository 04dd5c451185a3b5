package league

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// Load reads players, teams, games and the league row and assembles the full
// state. When no league row exists yet, a fresh one is created in the draft
// stage so callers always get a usable state back.
func (s *store) Load() (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players, err := s.listPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	teams, err := s.listTeams()
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	games, err := s.listGames()
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}

	state := &State{
		Players: players,
		Teams:   teams,
		Games:   games,
	}

	var draftJSON, scheduleJSON, standingsJSON, playoffsJSON, awardsJSON sql.NullString
	row := s.db.QueryRow(`SELECT id, stage, draft_json, schedule_json, standings_json, playoffs_json, awards_json FROM league LIMIT 1`)
	err = row.Scan(&state.ID, &state.Stage, &draftJSON, &scheduleJSON, &standingsJSON, &playoffsJSON, &awardsJSON)
	if err == sql.ErrNoRows {
		state.ID = uuid.NewString()
		state.Stage = StageDraft
		log.Info("No league row found, starting a fresh league", "leagueID", state.ID)
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load league row: %w", err)
	}

	if err := unmarshalInto(draftJSON, &state.Draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft state: %w", err)
	}
	if err := unmarshalInto(scheduleJSON, &state.Schedule); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	if err := unmarshalInto(standingsJSON, &state.Standings); err != nil {
		return nil, fmt.Errorf("failed to decode standings: %w", err)
	}
	if err := unmarshalInto(playoffsJSON, &state.Playoffs); err != nil {
		return nil, fmt.Errorf("failed to decode playoffs: %w", err)
	}
	if err := unmarshalInto(awardsJSON, &state.Awards); err != nil {
		return nil, fmt.Errorf("failed to decode awards: %w", err)
	}
	return state, nil
}

func unmarshalInto(col sql.NullString, dst any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}

// Save writes the full state back in one transaction: player team
// assignments, team rosters and the serialized league document.
func (s *store) Save(state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	// Teams go first: players carry a foreign key to their team.
	if err := upsertTeamsTx(tx, state.Teams); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save teams: %w", err)
	}
	if err := upsertPlayersTx(tx, state.Players); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save players: %w", err)
	}
	if err := upsertGamesTx(tx, state.Games); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save games: %w", err)
	}

	draftJSON, err := json.Marshal(state.Draft)
	if err != nil {
		tx.Rollback()
		return err
	}
	scheduleJSON, err := json.Marshal(state.Schedule)
	if err != nil {
		tx.Rollback()
		return err
	}
	standingsJSON, err := json.Marshal(state.Standings)
	if err != nil {
		tx.Rollback()
		return err
	}
	playoffsJSON, err := json.Marshal(state.Playoffs)
	if err != nil {
		tx.Rollback()
		return err
	}
	awardsJSON, err := json.Marshal(state.Awards)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO league (id, stage, draft_json, schedule_json, standings_json, playoffs_json, awards_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			stage = excluded.stage,
			draft_json = excluded.draft_json,
			schedule_json = excluded.schedule_json,
			standings_json = excluded.standings_json,
			playoffs_json = excluded.playoffs_json,
			awards_json = excluded.awards_json;
	`, state.ID, state.Stage, string(draftJSON), string(scheduleJSON), string(standingsJSON), string(playoffsJSON), string(awardsJSON))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save league row: %w", err)
	}

	return tx.Commit()
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listPlayers()
}

func (s *store) listPlayers() ([]Player, error) {
	rows, err := s.db.Query(`SELECT id, name, tier, team_id, join_date FROM players ORDER BY join_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var teamID sql.NullString
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Tier, &teamID, &p.JoinDate); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		if teamID.Valid {
			p.TeamID = &teamID.String
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) ListTeams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listTeams()
}

func (s *store) listTeams() ([]Team, error) {
	rows, err := s.db.Query(`SELECT id, name, leader_id, roster_json FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		var rosterJSON sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.LeaderID, &rosterJSON); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		if rosterJSON.Valid && rosterJSON.String != "" {
			if err := json.Unmarshal([]byte(rosterJSON.String), &t.Roster); err != nil {
				log.Error("Failed to decode roster", "teamID", t.ID, "error", err)
			}
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *store) ListGames() ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listGames()
}

func (s *store) listGames() ([]Game, error) {
	rows, err := s.db.Query(`SELECT id, title, difficulty, weight FROM games ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Title, &g.Difficulty, &g.Weight); err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (s *store) UpsertPlayers(players []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := upsertPlayersTx(tx, players); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func upsertPlayersTx(tx *sql.Tx, players []Player) error {
	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, tier, team_id, join_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			tier = excluded.tier,
			team_id = excluded.team_id,
			join_date = excluded.join_date;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		var teamID any
		if p.TeamID != nil {
			teamID = *p.TeamID
		}
		if _, err := stmt.Exec(p.ID, p.DisplayName, p.Tier, teamID, p.JoinDate); err != nil {
			return err
		}
	}
	return nil
}

func (s *store) UpsertTeams(teams []Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := upsertTeamsTx(tx, teams); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func upsertTeamsTx(tx *sql.Tx, teams []Team) error {
	stmt, err := tx.Prepare(`
		INSERT INTO teams (id, name, leader_id, roster_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			leader_id = excluded.leader_id,
			roster_json = excluded.roster_json;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range teams {
		rosterJSON, err := json.Marshal(t.Roster)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(t.ID, t.Name, t.LeaderID, string(rosterJSON)); err != nil {
			return err
		}
	}
	return nil
}

func (s *store) UpsertGames(games []Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := upsertGamesTx(tx, games); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func upsertGamesTx(tx *sql.Tx, games []Game) error {
	stmt, err := tx.Prepare(`
		INSERT INTO games (id, title, difficulty, weight)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			difficulty = excluded.difficulty,
			weight = excluded.weight;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range games {
		if _, err := stmt.Exec(g.ID, g.Title, g.Difficulty, g.Weight); err != nil {
			return err
		}
	}
	return nil
}

// Clear wipes all league data. Used by the /clear endpoint and tests.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"league", "players", "teams", "games"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
		}
	}
}
