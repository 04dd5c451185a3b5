package league

import (
	"sync"

	"github.com/google/uuid"
)

// MockStore is an in-memory LeagueStore for tests.
type MockStore struct {
	mu    sync.Mutex
	state *State

	LoadCalls int
	SaveCalls int
	LoadErr   error
	SaveErr   error
}

var _ LeagueStore = (*MockStore)(nil)

// NewMock creates a mock store, optionally pre-seeded with a state.
func NewMock(state *State) *MockStore {
	return &MockStore{state: state}
}

func (m *MockStore) Load() (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.state == nil {
		m.state = &State{ID: uuid.NewString(), Stage: StageDraft}
	}
	return m.state.Clone(), nil
}

func (m *MockStore) Save(state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.state = state.Clone()
	return nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	return append([]Player(nil), m.state.Players...), nil
}

func (m *MockStore) ListTeams() ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	return append([]Team(nil), m.state.Teams...), nil
}

func (m *MockStore) ListGames() ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	return append([]Game(nil), m.state.Games...), nil
}

func (m *MockStore) UpsertPlayers(players []Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		m.state = &State{}
	}
	m.state.Players = append(m.state.Players, players...)
	return nil
}

func (m *MockStore) UpsertTeams(teams []Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		m.state = &State{}
	}
	m.state.Teams = append(m.state.Teams, teams...)
	return nil
}

func (m *MockStore) UpsertGames(games []Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		m.state = &State{}
	}
	m.state.Games = append(m.state.Games, games...)
	return nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
}
