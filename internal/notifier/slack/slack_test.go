package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/egl2k/league-sim/internal/league"
	"github.com/egl2k/league-sim/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func testState() *league.State {
	champion := "t1"
	mvp := "p1"
	return &league.State{
		ID:    "league-1",
		Stage: league.StageComplete,
		Players: []league.Player{
			{ID: "p1", DisplayName: "Ada", Tier: 1},
			{ID: "p2", DisplayName: "Grace", Tier: 2},
		},
		Teams: []league.Team{
			{ID: "t1", Name: "Vipers", LeaderID: "p1", Roster: []string{"p1"}},
			{ID: "t2", Name: "Rhinos", LeaderID: "p2", Roster: []string{"p2"}},
		},
		Games:  []league.Game{{ID: "g1", Title: "Quickdraw", Difficulty: 5, Weight: 1.0}},
		Awards: &league.Awards{MVP: &mvp, Champion: &champion},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.NotifSentCount)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSentCount)
	assert.Equal(t, 0, metrics.NotifFailedCount)
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.NotifSentCount)
	assert.Equal(t, 1, metrics.NotifFailedCount)
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendSeasonReport_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendSeasonReport(testState(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendSeasonReport")
}

func TestFormatWeekResults(t *testing.T) {
	st := testState()
	winner := "t1"
	results := []league.MatchResult{
		{TeamA: "t1", TeamB: "t2", GameID: "g1", ScoreA: 90, ScoreB: 80, WinnerID: &winner},
	}

	client := &Notifier{channelID: "C123"}
	msg := client.formatWeekResults(st, 0, results)
	require.Len(t, msg.Blocks.BlockSet, 2, "Expected 2 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "Expected first block to be a HeaderBlock")
	assert.Contains(t, header.Text.Text, "Week 1")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "Expected second block to be a SectionBlock")
	assert.Contains(t, section.Text.Text, "Vipers 90 - 80 Rhinos")
	assert.Contains(t, section.Text.Text, "Quickdraw")
	assert.NotContains(t, section.Text.Text, "- draw")
}

func TestFormatWeekResults_Draw(t *testing.T) {
	st := testState()
	results := []league.MatchResult{
		{TeamA: "t1", TeamB: "t2", GameID: "g1", ScoreA: 85, ScoreB: 85, WinnerID: nil},
	}

	client := &Notifier{channelID: "C123"}
	msg := client.formatWeekResults(st, 2, results)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "draw")
}

func TestFormatStandings(t *testing.T) {
	st := testState()
	records := []league.TeamRecord{
		{TeamID: "t1", Wins: 3, Ties: 1, PointsFor: 420},
		{TeamID: "t2", Wins: 1, Ties: 0, PointsFor: 310},
	}

	client := &Notifier{channelID: "C123"}
	msg := client.formatStandings(st, records)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "1. Vipers - 3W 1T, 420 pts for")
	assert.Contains(t, section.Text.Text, "2. Rhinos")
}

func TestFormatSeasonReport(t *testing.T) {
	st := testState()

	client := &Notifier{channelID: "C123"}
	msg := client.formatSeasonReport(st)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Champions: Vipers")
	assert.Contains(t, section.Text.Text, "MVP: Ada")
}

func TestFormatSeasonReport_NoChampion(t *testing.T) {
	st := testState()
	st.Awards = &league.Awards{}

	client := &Notifier{channelID: "C123"}
	msg := client.formatSeasonReport(st)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "without a champion")
}

func TestFormatDraftSummary(t *testing.T) {
	st := testState()

	client := &Notifier{channelID: "C123"}
	msg := client.formatDraftSummary(st)
	// Header plus one section per team.
	require.Len(t, msg.Blocks.BlockSet, 3)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Vipers")
	assert.Contains(t, section.Text.Text, "Ada (tier 1)")
}
