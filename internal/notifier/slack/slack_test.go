package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/amanijl/courtside/internal/metrics"
	"github.com/amanijl/courtside/internal/ranking"
	"github.com/amanijl/courtside/internal/roster"
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

func TestSendMessage_DryRun(t *testing.T) {
	m := metrics.NewMockMetrics()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	n := NewNotifierWithAPI(nil, "C123", m)

	err := n.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, m.SlackNotifSentCount)
}

func TestSendResultRecorded_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	m := metrics.NewMockMetrics()
	n := NewNotifierWithAPI(api, "C123", m)

	err := n.SendResultRecorded(roster.Player{Name: "Bobby Floyd", Wins: 4, Losses: 2}, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, m.SlackNotifSentCount)
	assert.Equal(t, 0, m.SlackNotifFailedCount)
}

func TestSendStandings_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	m := metrics.NewMockMetrics()
	n := NewNotifierWithAPI(api, "C123", m)

	err := n.SendStandings([]ranking.RankedPlayer{}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, m.SlackNotifSentCount)
	assert.Equal(t, 1, m.SlackNotifFailedCount)
}

func TestFormatStandings(t *testing.T) {
	n := NewNotifierWithAPI(nil, "C123", metrics.NewMockMetrics())

	msg := n.formatStandings([]ranking.RankedPlayer{
		{Player: roster.Player{Name: "Scott Ely", Wins: 10, Losses: 2}, Standing: 1, WinPct: "83.3", GamesBehind: "--"},
		{Player: roster.Player{Name: "KC Crowder", Wins: 7, Losses: 5}, Standing: 2, WinPct: "58.3", GamesBehind: "3.0"},
	})

	// Header block plus one section per ranked player.
	require.Len(t, msg.Blocks.BlockSet, 3)
}

func TestFormatStandingsEmpty(t *testing.T) {
	n := NewNotifierWithAPI(nil, "C123", metrics.NewMockMetrics())

	msg := n.formatStandings(nil)
	require.Len(t, msg.Blocks.BlockSet, 2)
}
