package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/egl2k/league-sim/internal/league"
)

// noCandidateReason tags a null pick for a team whose tier slots were already
// full, or whose round pool was exhausted. Not an error condition.
const noCandidateReason = "no-available-candidate"

// PickEventKind tags the outcome of one draft slot.
type PickEventKind string

const (
	// PickAuto means the engine chose a player for the team.
	PickAuto PickEventKind = "auto_picked"
	// PickAwaitingChoice means an interactive session is suspended until the
	// user's team submits a choice via Resume.
	PickAwaitingChoice PickEventKind = "awaiting_choice"
	// PickNoCandidate means the team had no legal pick this round.
	PickNoCandidate PickEventKind = "no_candidate"
)

// PickEvent describes one draft slot as the session advances.
type PickEvent struct {
	Kind       PickEventKind `json:"kind"`
	TeamID     string        `json:"teamId"`
	Round      int           `json:"round"`
	PlayerID   string        `json:"playerId,omitempty"`
	Candidates []string      `json:"candidates,omitempty"`
}

type draftRound struct {
	num          int
	order        []string
	allowedTiers []int
}

// DraftSession walks the three draft rounds team by team. Automated
// sessions pick for every team; interactive sessions suspend whenever the
// user's team is on the clock and resume from the same cursor once a choice
// arrives.
type DraftSession struct {
	engine      *Engine
	state       *league.State
	userTeamID  string
	interactive bool
	rounds      []draftRound
	ri, ti      int
	picks       []league.DraftPick
}

// GenerateDraftOrder returns a fresh uniformly shuffled team order for
// rounds 1 and 2. The caller decides whether to persist it.
func (e *Engine) GenerateDraftOrder(st *league.State) []string {
	ids := make([]string, len(st.Teams))
	for i, t := range st.Teams {
		ids[i] = t.ID
	}
	return e.shuffledCopy(ids)
}

// RunDraft runs all three rounds automatically and returns the updated state
// plus the pick log for this run. The user team, if any, is drafted for with
// the same algorithm as every other team.
func (e *Engine) RunDraft(st *league.State, userTeamID string) (*league.State, []league.DraftPick) {
	sess := e.newDraftSession(st, userTeamID, false)
	sess.Advance()
	return sess.Result()
}

// NewDraftSession starts an interactive draft: Advance suspends when
// userTeamID is on the clock, and Resume continues with the user's choice.
func (e *Engine) NewDraftSession(st *league.State, userTeamID string) *DraftSession {
	return e.newDraftSession(st, userTeamID, true)
}

func (e *Engine) newDraftSession(st *league.State, userTeamID string, interactive bool) *DraftSession {
	state := st.Clone()

	order12 := state.Draft.Order
	if len(order12) == 0 {
		order12 = e.GenerateDraftOrder(state)
		state.Draft.Order = order12
	}

	return &DraftSession{
		engine:      e,
		state:       state,
		userTeamID:  userTeamID,
		interactive: interactive,
		rounds: []draftRound{
			{num: 1, order: order12, allowedTiers: []int{1, 2, 3}},
			{num: 2, order: order12, allowedTiers: []int{2, 3}},
			{num: 3, order: roundThreeOrder(state), allowedTiers: []int{3}},
		},
	}
}

// Advance runs the session forward through automatic picks. It returns a
// pending event when the user's team must choose, or nil once the draft is
// complete.
func (s *DraftSession) Advance() *PickEvent {
	for !s.done() {
		round := s.rounds[s.ri]
		teamID := round.order[s.ti]
		team := s.state.TeamByID(teamID)
		if team == nil {
			// Orders can reference a team removed since the order was
			// persisted; skip the slot rather than fail the whole draft.
			s.step()
			continue
		}

		candidates := draftCandidates(s.state, team, round.allowedTiers)
		if len(candidates) == 0 {
			s.picks = append(s.picks, league.DraftPick{
				TeamID: teamID,
				Round:  round.num,
				Reason: noCandidateReason,
			})
			s.step()
			continue
		}

		if s.interactive && teamID == s.userTeamID {
			ids := make([]string, len(candidates))
			for i, c := range candidates {
				ids[i] = c.ID
			}
			return &PickEvent{
				Kind:       PickAwaitingChoice,
				TeamID:     teamID,
				Round:      round.num,
				Candidates: ids,
			}
		}

		chosen := s.engine.choosePick(candidates)
		s.apply(team, chosen, round.num)
		s.step()
	}
	return nil
}

// Resume applies the user's chosen player to the suspended slot and returns.
// The caller drives the session onward with another Advance.
func (s *DraftSession) Resume(playerID string) error {
	if s.done() {
		return fmt.Errorf("draft already complete")
	}
	round := s.rounds[s.ri]
	teamID := round.order[s.ti]
	if !s.interactive || teamID != s.userTeamID {
		return fmt.Errorf("team %s is on the clock, not awaiting a user choice", teamID)
	}
	team := s.state.TeamByID(teamID)
	candidates := draftCandidates(s.state, team, round.allowedTiers)
	for _, c := range candidates {
		if c.ID == playerID {
			s.apply(team, c, round.num)
			s.step()
			return nil
		}
	}
	return fmt.Errorf("player %q is not a legal pick for team %s: %w", playerID, teamID, ErrInvalidReference)
}

// Result returns the drafted state and this run's pick log. The pick log is
// also appended to the state's accumulated draft record.
func (s *DraftSession) Result() (*league.State, []league.DraftPick) {
	s.state.Draft.Picks = append(s.state.Draft.Picks, s.picks...)
	return s.state, s.picks
}

func (s *DraftSession) done() bool {
	return s.ri >= len(s.rounds)
}

func (s *DraftSession) step() {
	s.ti++
	if s.ti >= len(s.rounds[s.ri].order) {
		s.ti = 0
		s.ri++
	}
}

func (s *DraftSession) apply(team *league.Team, p *league.Player, round int) {
	teamID := team.ID
	p.TeamID = &teamID
	team.Roster = append(team.Roster, p.ID)
	playerID := p.ID
	s.picks = append(s.picks, league.DraftPick{
		TeamID:   teamID,
		PlayerID: &playerID,
		Round:    round,
	})
}

// draftCandidates returns every unassigned player whose tier is in the
// round's allowed set and not already represented on the team's roster,
// ranked by base skill descending.
func draftCandidates(st *league.State, team *league.Team, allowedTiers []int) []*league.Player {
	rosterTiers := make(map[int]bool)
	for _, pid := range team.Roster {
		if p := st.PlayerByID(pid); p != nil && p.Tier != 0 {
			rosterTiers[p.Tier] = true
		}
	}

	allowed := make(map[int]bool, len(allowedTiers))
	for _, t := range allowedTiers {
		allowed[t] = true
	}

	var candidates []*league.Player
	for i := range st.Players {
		p := &st.Players[i]
		if p.TeamID != nil || !allowed[p.Tier] || rosterTiers[p.Tier] {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := BaseSkill(*candidates[i]), BaseSkill(*candidates[j])
		if a != b {
			return a > b
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates
}

// choosePick takes the top-ranked candidate 75% of the time, otherwise one
// uniformly among the top three (or fewer).
func (e *Engine) choosePick(candidates []*league.Player) *league.Player {
	if e.rng.Float64() < 0.75 {
		return candidates[0]
	}
	topK := len(candidates)
	if topK > 3 {
		topK = 3
	}
	return candidates[e.rng.Intn(topK)]
}

// roundThreeOrder sorts teams by their leader's join date ascending. Teams
// whose leader cannot be resolved sort last.
func roundThreeOrder(st *league.State) []string {
	farFuture := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

	type entry struct {
		id   string
		join time.Time
	}
	entries := make([]entry, len(st.Teams))
	for i, t := range st.Teams {
		join := farFuture
		if leader := st.PlayerByID(t.LeaderID); leader != nil {
			if parsed, err := time.Parse("2006-01-02", leader.JoinDate); err == nil {
				join = parsed
			}
		}
		entries[i] = entry{id: t.ID, join: join}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].join.Before(entries[j].join)
	})

	order := make([]string, len(entries))
	for i, e := range entries {
		order[i] = e.id
	}
	return order
}
