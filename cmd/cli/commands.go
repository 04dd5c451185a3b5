package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	draftTeam  string
	pickPlayer string
	weekCount  int
	weekIndex  int
	oneOffA    string
	oneOffB    string
	oneOffGame string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(leagueCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(awardsCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(clearCmd)

	rootCmd.AddCommand(draftOrderCmd)

	draftCmd.Flags().StringVar(&draftTeam, "team", "", "Your team ID; omitted means every pick is automatic")
	rootCmd.AddCommand(draftCmd)

	draftStartCmd.Flags().StringVar(&draftTeam, "team", "", "Your team ID (required)")
	draftStartCmd.MarkFlagRequired("team")
	rootCmd.AddCommand(draftStartCmd)

	draftPickCmd.Flags().StringVar(&pickPlayer, "player", "", "The player to draft (required)")
	draftPickCmd.MarkFlagRequired("player")
	rootCmd.AddCommand(draftPickCmd)

	scheduleCmd.Flags().IntVar(&weekCount, "weeks", 0, "Number of season weeks; 0 uses the server default")
	rootCmd.AddCommand(scheduleCmd)

	simulateWeekCmd.Flags().IntVar(&weekIndex, "week", 0, "Zero-based week index to simulate")
	rootCmd.AddCommand(simulateWeekCmd)

	rootCmd.AddCommand(seasonCmd)

	oneOffCmd.Flags().StringVar(&oneOffA, "player-a", "", "First player ID (required)")
	oneOffCmd.Flags().StringVar(&oneOffB, "player-b", "", "Second player ID (required)")
	oneOffCmd.Flags().StringVar(&oneOffGame, "game", "", "Game ID (required)")
	oneOffCmd.MarkFlagRequired("player-a")
	oneOffCmd.MarkFlagRequired("player-b")
	oneOffCmd.MarkFlagRequired("game")
	rootCmd.AddCommand(oneOffCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the league store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players", nil)
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams in the league store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams", nil)
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the game catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/games", nil)
	},
}

var leagueCmd = &cobra.Command{
	Use:   "league",
	Short: "Show the full league document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/league", nil)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the ranked season table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings", nil)
	},
}

var awardsCmd = &cobra.Command{
	Use:   "awards",
	Short: "Show the MVP and champion once the season is complete",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/awards", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe the league store and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/clear", nil)
	},
}

var draftOrderCmd = &cobra.Command{
	Use:   "draft-order",
	Short: "Shuffle and persist the draft order for rounds 1 and 2",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/draft/generate-order", nil)
	},
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Run all three draft rounds automatically",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if draftTeam != "" {
			params.Set("team", draftTeam)
		}
		return performPostRequest("/draft/run-full", params)
	},
}

var draftStartCmd = &cobra.Command{
	Use:   "draft-start",
	Short: "Begin an interactive draft for your team",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("team", draftTeam)
		return performPostRequest("/draft/start", params)
	},
}

var draftPickCmd = &cobra.Command{
	Use:   "draft-pick",
	Short: "Submit your pick for a suspended draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("player", pickPlayer)
		return performPostRequest("/draft/pick", params)
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate the season schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if weekCount > 0 {
			params.Set("weeks", strconv.Itoa(weekCount))
		}
		return performPostRequest("/schedule/generate", params)
	},
}

var simulateWeekCmd = &cobra.Command{
	Use:   "simulate-week",
	Short: "Simulate one scheduled week",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("week", strconv.Itoa(weekIndex))
		return performPostRequest("/schedule/simulate-week", params)
	},
}

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Run the remaining season, playoffs and awards in one shot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/season/run-full", nil)
	},
}

var oneOffCmd = &cobra.Command{
	Use:   "simulate-1v1",
	Short: "Pit two players against each other on one game",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("playerA", oneOffA)
		params.Set("playerB", oneOffB)
		params.Set("game", oneOffGame)
		return performPostRequest("/simulate/1v1", params)
	},
}

func buildURL(endpoint string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	if dryRun {
		params.Set("dry_run", "true")
	}
	u := host + endpoint
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func performGetRequest(endpoint string, params url.Values) error {
	url := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, params url.Values) error {
	url := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
