package league

// LeagueStore defines the interface for persisting and reading league data.
type LeagueStore interface {
	// Load assembles the full league state from the database. A missing
	// league row yields a fresh state in the draft stage.
	Load() (*State, error)
	// Save writes the full league state back, replacing what is stored.
	Save(state *State) error
	ListPlayers() ([]Player, error)
	ListTeams() ([]Team, error)
	ListGames() ([]Game, error)
	UpsertPlayers(players []Player) error
	UpsertTeams(teams []Team) error
	UpsertGames(games []Game) error
	Clear()
}
