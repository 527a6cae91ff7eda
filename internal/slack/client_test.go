package slack_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	internalslack "github.com/mauv0809/elo-ladder/internal/slack"

	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ notifier.Notifier = (*internalslack.SlackClient)(nil)

func testResult() *ladder.MatchResult {
	return &ladder.MatchResult{
		MatchID:    "m1",
		Mode:       ladder.Solo,
		Kind:       ladder.KindDuel,
		RecordedAt: time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC),
		Players: []ladder.Outcome{
			{Name: "alice", Won: true, PreRating: 1000, NewRating: 1016, Delta: 16, Wins: 1},
			{Name: "bob", Won: false, PreRating: 1000, NewRating: 984, Delta: -16, Losses: 1},
		},
	}
}

func TestSlackClient_SendMatchResult(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))
		assert.Equal(t, "C123", vals.Get("channel"))

		var blocks slack.Blocks
		err := json.Unmarshal([]byte(vals.Get("blocks")), &blocks)
		require.NoError(t, err)

		require.Len(t, blocks.BlockSet, 3)

		header := blocks.BlockSet[0].(*slack.HeaderBlock)
		assert.Contains(t, header.Text.Text, "Duel recorded (1s)")

		section := blocks.BlockSet[1].(*slack.SectionBlock)
		require.Len(t, section.Fields, 2)
		assert.Contains(t, section.Fields[0].Text, "alice: 1000 → 1016 (+16.0)")
		assert.Contains(t, section.Fields[1].Text, "bob: 1000 → 984 (-16.0)")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	metr := metrics.NewMock()
	client := internalslack.NewClientWithAPI(api, "C123", metr)

	err := client.SendMatchResult(testResult(), false)
	require.NoError(t, err)

	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, metr.SlackNotifSent())
	assert.Equal(t, 0, metr.SlackNotifFailed())
}

func TestSlackClient_SendLadder(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))

		var blocks slack.Blocks
		require.NoError(t, json.Unmarshal([]byte(vals.Get("blocks")), &blocks))
		require.Len(t, blocks.BlockSet, 2)

		section := blocks.BlockSet[1].(*slack.SectionBlock)
		assert.Contains(t, section.Text.Text, "🥇 1. alice: 1016 (1W / 0L)")
		assert.Contains(t, section.Text.Text, "🥈 2. bob: 984 (0W / 1L)")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	metr := metrics.NewMock()
	client := internalslack.NewClientWithAPI(api, "C123", metr)

	err := client.SendLadder(ladder.Solo, []ladder.PlayerRecord{
		{Name: "alice", Rating: 1016, Wins: 1},
		{Name: "bob", Rating: 984, Losses: 1},
	}, false)
	require.NoError(t, err)

	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, metr.SlackNotifSent())
}

func TestSlackClient_SendMatchResult_APIError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": false, "error": "channel_not_found"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	metr := metrics.NewMock()
	client := internalslack.NewClientWithAPI(api, "C123", metr)

	err := client.SendMatchResult(testResult(), false)
	assert.Error(t, err)
	assert.Equal(t, 0, metr.SlackNotifSent())
	assert.Equal(t, 1, metr.SlackNotifFailed())
}

func TestSlackClient_SendMatchResult_DryRun(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	metr := metrics.NewMock()
	client := internalslack.NewClientWithAPI(api, "C123", metr)

	err := client.SendMatchResult(testResult(), true)
	require.NoError(t, err)

	assert.False(t, handlerCalled, "Expected http handler NOT to be called in dry run")
	assert.Equal(t, 0, metr.SlackNotifSent(), "Metrics should not be incremented in dry run")
}

func TestSlackClient_NotConfigured(t *testing.T) {
	client := internalslack.NewClientWithAPI(nil, "", nil)
	err := client.SendMatchResult(testResult(), false)
	assert.ErrorIs(t, err, internalslack.ErrNotConfigured)
}
