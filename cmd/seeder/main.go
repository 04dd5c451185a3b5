package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/egl2k/league-sim/internal/database"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var teamNames = []string{
	"Vipers", "Rhinos", "Sentinels", "Wolfpack", "Titans",
	"Phantoms", "Comets", "Marauders", "Glaciers", "Outlaws",
}

var leaderNames = []string{
	"Ada", "Grace", "Linus", "Marta", "Noor",
	"Otto", "Priya", "Quinn", "Sven", "Tessa",
}

var gameCatalog = []league.Game{
	{Title: "Quickdraw", Difficulty: 4, Weight: 1.0},
	{Title: "Overclock", Difficulty: 8, Weight: 1.2},
	{Title: "Gridlock", Difficulty: 5, Weight: 1.0},
	{Title: "Freefall", Difficulty: 7, Weight: 0.9},
	{Title: "Lowball", Difficulty: 2, Weight: 0.8},
	{Title: "Deadline", Difficulty: 9, Weight: 1.5},
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "league.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := league.New(db)
	state, err := store.Load()
	if err != nil {
		log.Fatalf("Failed to load league state: %s", err)
	}
	if len(state.Teams) > 0 {
		log.Fatalf("The league already has %d teams, refusing to reseed. Run the server's /clear endpoint first.", len(state.Teams))
	}

	// One team per leader. Leaders are tier 0 and stay anchored to their
	// team; they never enter the draft pool.
	for i, name := range teamNames {
		teamID := uuid.NewString()
		leaderID := uuid.NewString()
		state.Teams = append(state.Teams, league.Team{
			ID:       teamID,
			Name:     name,
			LeaderID: leaderID,
		})
		tid := teamID
		state.Players = append(state.Players, league.Player{
			ID:          leaderID,
			DisplayName: leaderNames[i],
			Tier:        0,
			TeamID:      &tid,
			JoinDate:    fmt.Sprintf("2023-%02d-01", i%12+1),
		})
	}

	// A free agent pool big enough for every team to fill all three draft
	// slots, with a little slack per tier.
	for tier := 1; tier <= 3; tier++ {
		for i := 0; i < len(teamNames)+2; i++ {
			state.Players = append(state.Players, league.Player{
				ID:          uuid.NewString(),
				DisplayName: fmt.Sprintf("T%d Prospect %02d", tier, i+1),
				Tier:        tier,
				JoinDate:    fmt.Sprintf("2024-%02d-%02d", i%12+1, tier*7),
			})
		}
	}

	for _, g := range gameCatalog {
		g.ID = uuid.NewString()
		state.Games = append(state.Games, g)
	}

	if err := store.Save(state); err != nil {
		log.Fatalf("Failed to save seeded league: %s", err)
	}

	log.Info("Seeded league",
		"leagueID", state.ID,
		"teams", len(state.Teams),
		"players", len(state.Players),
		"games", len(state.Games),
	)
}
