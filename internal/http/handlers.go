package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/egl2k/league-sim/internal/engine"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/egl2k/league-sim/internal/pubsub"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// respondJSON is a helper to write a JSON response body.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// engineErrorStatus maps engine failures to HTTP status codes. A dangling
// reference is the caller's fault; anything else is ours.
func engineErrorStatus(err error) int {
	if errors.Is(err, engine.ErrInvalidReference) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Store.Clear()

		fresh, err := s.Store.Load()
		if err != nil {
			http.Error(w, "Failed to reset league state", http.StatusInternalServerError)
			log.Error("Failed to load fresh state after clear", "error", err)
			return
		}

		s.mu.Lock()
		s.state = fresh
		s.draft = nil
		s.mu.Unlock()

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.ListTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.Store.ListGames()
		if err != nil {
			http.Error(w, "Failed to get games", http.StatusInternalServerError)
			log.Error("Failed to get games from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, games)
	}
}

// LeagueStateHandler returns the full in-memory league document.
func (s *Server) LeagueStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		snapshot := s.state.Clone()
		s.mu.Unlock()
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// SaveLeagueHandler replaces the league's players, teams and games from the
// request body. This is the seeding entry point for a fresh league.
func (s *Server) SaveLeagueHandler() http.HandlerFunc {
	type payload struct {
		Players []league.Player `json:"players"`
		Teams   []league.Team   `json:"teams"`
		Games   []league.Game   `json:"games"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var body payload
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Error("Failed to decode league payload", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		next := s.state.Clone()
		if body.Players != nil {
			next.Players = body.Players
		}
		if body.Teams != nil {
			next.Teams = body.Teams
		}
		if body.Games != nil {
			next.Games = body.Games
		}

		if isDryRun {
			log.Info("[Dry Run] Would have saved league", "players", len(next.Players), "teams", len(next.Teams), "games", len(next.Games))
			respondJSON(w, http.StatusOK, next)
			return
		}

		if err := s.Store.Save(next); err != nil {
			http.Error(w, "Failed to save league", http.StatusInternalServerError)
			log.Error("Failed to save league", "error", err)
			return
		}
		s.state = next
		log.Info("League saved", "players", len(next.Players), "teams", len(next.Teams), "games", len(next.Games))
		respondJSON(w, http.StatusOK, next)
	}
}

// StandingsHandler ranks the current season table on demand.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		snapshot := s.state.Clone()
		s.mu.Unlock()

		records := engine.RankTeams(snapshot)
		respondJSON(w, http.StatusOK, records)
	}
}

func (s *Server) AwardsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		awards := s.state.Awards
		s.mu.Unlock()

		if awards == nil {
			http.Error(w, "No awards yet, the season has not completed", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, awards)
	}
}

// GenerateDraftOrderHandler shuffles and persists the team order shared by
// draft rounds 1 and 2.
func (s *Server) GenerateDraftOrderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.state.Stage != league.StageDraft {
			http.Error(w, "Draft order can only be generated during the draft stage", http.StatusConflict)
			return
		}

		next := s.state.Clone()
		next.Draft.Order = s.Engine.GenerateDraftOrder(next)

		if !isDryRun {
			if err := s.Store.Save(next); err != nil {
				http.Error(w, "Failed to save draft order", http.StatusInternalServerError)
				log.Error("Failed to save draft order", "error", err)
				return
			}
			s.state = next
		} else {
			log.Info("[Dry Run] Would have saved draft order", "order", next.Draft.Order)
		}

		respondJSON(w, http.StatusOK, next.Draft.Order)
	}
}

// RunDraftHandler runs all three draft rounds automatically and moves the
// league into the regular season.
func (s *Server) RunDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userTeamID := r.URL.Query().Get("team")
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.state.Stage != league.StageDraft {
			http.Error(w, "The draft has already been completed", http.StatusConflict)
			return
		}

		s.Metrics.IncDraftRuns()
		next, picks := s.Engine.RunDraft(s.state, userTeamID)
		next.Stage = league.StageRegularSeason

		if err := s.finalizeDraft(next, picks, isDryRun); err != nil {
			http.Error(w, "Failed to save draft result", http.StatusInternalServerError)
			return
		}

		respondJSON(w, http.StatusOK, picks)
	}
}

// StartDraftHandler begins an interactive draft session. The response is
// either the first suspension point for the user's team, or the complete
// pick log when no suspension ever happens.
func (s *Server) StartDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userTeamID := r.URL.Query().Get("team")
		if userTeamID == "" {
			http.Error(w, "Query parameter 'team' is required", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.state.Stage != league.StageDraft {
			http.Error(w, "The draft has already been completed", http.StatusConflict)
			return
		}

		sess := s.Engine.NewDraftSession(s.state, userTeamID)
		if ev := sess.Advance(); ev != nil {
			s.draft = sess
			respondJSON(w, http.StatusOK, ev)
			return
		}

		// The user's team never came on the clock, so the draft is done.
		s.Metrics.IncDraftRuns()
		next, picks := sess.Result()
		next.Stage = league.StageRegularSeason
		if err := s.finalizeDraft(next, picks, isDryRun); err != nil {
			http.Error(w, "Failed to save draft result", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, picks)
	}
}

// DraftPickHandler resumes a suspended draft session with the user's choice.
func (s *Server) DraftPickHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("player")
		if playerID == "" {
			http.Error(w, "Query parameter 'player' is required", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.draft == nil {
			http.Error(w, "No draft session in progress", http.StatusConflict)
			return
		}

		if err := s.draft.Resume(playerID); err != nil {
			log.Warn("Rejected draft pick", "player", playerID, "error", err)
			http.Error(w, err.Error(), engineErrorStatus(err))
			return
		}

		if ev := s.draft.Advance(); ev != nil {
			respondJSON(w, http.StatusOK, ev)
			return
		}

		s.Metrics.IncDraftRuns()
		next, picks := s.draft.Result()
		next.Stage = league.StageRegularSeason
		s.draft = nil
		if err := s.finalizeDraft(next, picks, isDryRun); err != nil {
			http.Error(w, "Failed to save draft result", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, picks)
	}
}

// finalizeDraft persists the drafted state and fans out notifications.
// Callers must hold s.mu.
func (s *Server) finalizeDraft(next *league.State, picks []league.DraftPick, isDryRun bool) error {
	if isDryRun {
		log.Info("[Dry Run] Would have saved drafted league", "picks", len(picks))
	} else {
		if err := s.Store.Save(next); err != nil {
			log.Error("Failed to save drafted league", "error", err)
			return err
		}
		s.state = next

		if err := s.Pubsub.SendMessage(pubsub.TopicDraftCompleted, picks); err != nil {
			log.Error("Failed to publish draft completion", "error", err)
		}
	}

	if err := s.Notifier.SendDraftSummary(next, isDryRun); err != nil {
		log.Error("Failed to send draft summary", "error", err)
	}
	log.Info("Draft completed", "picks", len(picks))
	return nil
}

// SimulateOneOffHandler runs an ad hoc 1v1 between two players on one game.
// It never touches persisted state.
func (s *Server) SimulateOneOffHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerA := r.URL.Query().Get("playerA")
		playerB := r.URL.Query().Get("playerB")
		gameID := r.URL.Query().Get("game")

		s.mu.Lock()
		snapshot := s.state.Clone()
		s.mu.Unlock()

		result, err := s.Engine.SimulateOneOff(snapshot, playerA, playerB, gameID)
		if err != nil {
			log.Warn("1v1 simulation rejected", "error", err)
			http.Error(w, err.Error(), engineErrorStatus(err))
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// GenerateScheduleHandler builds the season plan for the drafted teams.
func (s *Server) GenerateScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		weeks := s.Cfg.SeasonWeeks
		if raw := r.URL.Query().Get("weeks"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "Query parameter 'weeks' must be a positive integer", http.StatusBadRequest)
				return
			}
			weeks = parsed
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.state.Stage != league.StageRegularSeason {
			http.Error(w, "A schedule can only be generated after the draft", http.StatusConflict)
			return
		}

		next := s.state.Clone()
		next.Schedule = s.Engine.GenerateSchedule(next.Teams, weeks)
		// A new plan restarts the season record.
		next.Standings = make(map[string]*league.StandingsEntry)

		if isDryRun {
			log.Info("[Dry Run] Would have saved schedule", "weeks", len(next.Schedule))
		} else {
			if err := s.Store.Save(next); err != nil {
				http.Error(w, "Failed to save schedule", http.StatusInternalServerError)
				log.Error("Failed to save schedule", "error", err)
				return
			}
			s.state = next
		}

		respondJSON(w, http.StatusOK, next.Schedule)
	}
}

// SimulateWeekHandler plays one scheduled week and updates standings.
func (s *Server) SimulateWeekHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("week")
		week, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Query parameter 'week' must be an integer", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.state.Stage != league.StageRegularSeason {
			http.Error(w, "Weeks can only be simulated during the regular season", http.StatusConflict)
			return
		}

		start := time.Now()
		next, results, err := s.Engine.SimulateWeek(s.state, week)
		if err != nil {
			log.Warn("Week simulation rejected", "week", week, "error", err)
			http.Error(w, err.Error(), engineErrorStatus(err))
			return
		}
		s.Metrics.ObserveSimulationDuration(time.Since(start).Seconds())
		s.Metrics.IncWeeksSimulated()
		s.Metrics.AddMatchesSimulated(len(results))

		if isDryRun {
			log.Info("[Dry Run] Would have saved simulated week", "week", week, "matches", len(results))
		} else {
			if err := s.Store.Save(next); err != nil {
				http.Error(w, "Failed to save week results", http.StatusInternalServerError)
				log.Error("Failed to save week results", "error", err)
				return
			}
			s.state = next

			if err := s.Pubsub.SendMessage(pubsub.TopicWeekSimulated, results); err != nil {
				log.Error("Failed to publish week results", "error", err)
			}
		}

		if err := s.Notifier.SendWeekResults(next, week, results, isDryRun); err != nil {
			log.Error("Failed to send week results", "error", err)
		}

		log.Info("Week simulated", "week", week, "matches", len(results))
		respondJSON(w, http.StatusOK, results)
	}
}

// RunSeasonHandler simulates every remaining week, runs the playoffs and
// derives awards, completing the league.
func (s *Server) RunSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.state.Stage != league.StageRegularSeason {
			http.Error(w, "A season can only be run during the regular season", http.StatusConflict)
			return
		}

		start := time.Now()
		next, records, awards, err := s.Engine.RunFullSeason(s.state)
		if err != nil {
			log.Warn("Season run rejected", "error", err)
			http.Error(w, err.Error(), engineErrorStatus(err))
			return
		}
		next.Stage = league.StageComplete
		s.Metrics.ObserveSimulationDuration(time.Since(start).Seconds())
		s.Metrics.IncSeasonsCompleted()

		if isDryRun {
			log.Info("[Dry Run] Would have saved completed season")
		} else {
			if err := s.Store.Save(next); err != nil {
				http.Error(w, "Failed to save season", http.StatusInternalServerError)
				log.Error("Failed to save season", "error", err)
				return
			}
			s.state = next

			if err := s.Pubsub.SendMessage(pubsub.TopicSeasonComplete, awards); err != nil {
				log.Error("Failed to publish season completion", "error", err)
			}
		}

		if err := s.Notifier.SendSeasonReport(next, isDryRun); err != nil {
			log.Error("Failed to send season report", "error", err)
		}

		log.Info("Season complete", "champion", awards.Champion, "mvp", awards.MVP)
		respondJSON(w, http.StatusOK, struct {
			Standings []league.TeamRecord `json:"standings"`
			Playoffs  *league.Playoffs    `json:"playoffs"`
			Awards    league.Awards       `json:"awards"`
		}{records, next.Playoffs, awards})
	}
}
