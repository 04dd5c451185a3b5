package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/egl2k/league-sim/internal/metrics"
	"github.com/egl2k/league-sim/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending league announcements to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendDraftSummary(st *league.State, dryRun bool) error {
	msg := s.formatDraftSummary(st)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendWeekResults(st *league.State, week int, results []league.MatchResult, dryRun bool) error {
	msg := s.formatWeekResults(st, week, results)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendStandings(st *league.State, records []league.TeamRecord, dryRun bool) error {
	msg := s.formatStandings(st, records)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendSeasonReport(st *league.State, dryRun bool) error {
	msg := s.formatSeasonReport(st)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatDraftSummary creates the Slack message announcing the drafted rosters using Block Kit.
func (s *Notifier) formatDraftSummary(st *league.State) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Draft complete! 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	for _, team := range st.Teams {
		var lines []string
		for _, playerID := range team.Roster {
			if p := st.PlayerByID(playerID); p != nil {
				lines = append(lines, fmt.Sprintf("• %s (tier %d)", p.DisplayName, p.Tier))
			}
		}
		rosterText := fmt.Sprintf("%s\n%s", team.Name, strings.Join(lines, "\n"))
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", rosterText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatWeekResults creates the Slack message for a simulated week using Block Kit.
func (s *Notifier) formatWeekResults(st *league.State, week int, results []league.MatchResult) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🎮 Week %d results 🎮", week+1), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, res := range results {
		line := fmt.Sprintf("%s %d - %d %s", s.teamName(st, res.TeamA), res.ScoreA, res.ScoreB, s.teamName(st, res.TeamB))
		if game := st.GameByID(res.GameID); game != nil {
			line += fmt.Sprintf(" (%s)", game.Title)
		}
		if res.WinnerID == nil {
			line += " - draw"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "No matches were played this week.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates the Slack message for the current table using Block Kit.
func (s *Notifier) formatStandings(st *league.State, records []league.TeamRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📊 League standings 📊", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for i, rec := range records {
		lines = append(lines, fmt.Sprintf("%d. %s - %dW %dT, %d pts for", i+1, s.teamName(st, rec.TeamID), rec.Wins, rec.Ties, rec.PointsFor))
	}
	if len(lines) == 0 {
		lines = append(lines, "No games have been played yet.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatSeasonReport creates the Slack message announcing the champion and MVP using Block Kit.
func (s *Notifier) formatSeasonReport(st *league.State) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏅 Season complete! 🏅", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	if st.Awards != nil {
		if st.Awards.Champion != nil {
			lines = append(lines, fmt.Sprintf("Champions: %s", s.teamName(st, *st.Awards.Champion)))
		}
		if st.Awards.MVP != nil {
			if p := st.PlayerByID(*st.Awards.MVP); p != nil {
				lines = append(lines, fmt.Sprintf("MVP: %s", p.DisplayName))
			}
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "The playoffs ended without a champion.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) teamName(st *league.State, teamID string) string {
	if team := st.TeamByID(teamID); team != nil {
		return team.Name
	}
	return teamID
}
