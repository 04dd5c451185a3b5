package league

// Clone returns a deep copy of the state. Engine operations clone at the
// boundary so a failed operation never leaves the shared state half-mutated.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{
		ID:    s.ID,
		Stage: s.Stage,
	}

	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		cp := p
		if p.TeamID != nil {
			tid := *p.TeamID
			cp.TeamID = &tid
		}
		out.Players[i] = cp
	}

	out.Teams = make([]Team, len(s.Teams))
	for i, t := range s.Teams {
		ct := t
		ct.Roster = append([]string(nil), t.Roster...)
		out.Teams[i] = ct
	}

	out.Games = append([]Game(nil), s.Games...)

	out.Draft = DraftState{
		Order: append([]string(nil), s.Draft.Order...),
		Picks: clonePicks(s.Draft.Picks),
	}

	out.Schedule = make([]ScheduleWeek, len(s.Schedule))
	for i, w := range s.Schedule {
		cw := w
		cw.Matches = append([]Pairing(nil), w.Matches...)
		cw.Byes = append([]string(nil), w.Byes...)
		out.Schedule[i] = cw
	}

	if s.Standings != nil {
		out.Standings = make(map[string]*StandingsEntry, len(s.Standings))
		for id, e := range s.Standings {
			ce := *e
			out.Standings[id] = &ce
		}
	}

	out.Playoffs = s.Playoffs.clone()

	if s.Awards != nil {
		ca := Awards{
			MVP:      cloneStringPtr(s.Awards.MVP),
			Champion: cloneStringPtr(s.Awards.Champion),
		}
		out.Awards = &ca
	}

	return out
}

func (p *Playoffs) clone() *Playoffs {
	if p == nil {
		return nil
	}
	out := &Playoffs{
		PlayIn:   cloneResults(p.PlayIn),
		Champion: cloneStringPtr(p.Champion),
	}
	out.Rounds = make([]BracketRound, len(p.Rounds))
	for i, r := range p.Rounds {
		out.Rounds[i] = BracketRound{
			Matches:   cloneResults(r.Matches),
			Survivors: append([]string(nil), r.Survivors...),
		}
	}
	return out
}

func clonePicks(picks []DraftPick) []DraftPick {
	if picks == nil {
		return nil
	}
	out := make([]DraftPick, len(picks))
	for i, p := range picks {
		cp := p
		cp.PlayerID = cloneStringPtr(p.PlayerID)
		out[i] = cp
	}
	return out
}

func cloneResults(results []MatchResult) []MatchResult {
	if results == nil {
		return nil
	}
	out := make([]MatchResult, len(results))
	for i, r := range results {
		cr := r
		cr.WinnerID = cloneStringPtr(r.WinnerID)
		out[i] = cr
	}
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
