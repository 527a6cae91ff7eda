package slack

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/slack-go/slack"
)

// ErrNotConfigured is returned when no token or channel has been set.
var ErrNotConfigured = errors.New("slack client or channel ID is not configured")

// NewClient creates a new Slack client wrapper.
func NewClient(token, channelID string, metrics metrics.Metrics) *SlackClient {
	return NewClientWithAPI(slack.New(token), channelID, metrics)
}

// NewClientWithAPI creates a new Slack client with a custom API client. Used for testing.
func NewClientWithAPI(api *slack.Client, channelID string, metrics metrics.Metrics) *SlackClient {
	return &SlackClient{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// SendMatchResult posts a recorded match and every participant's rating change.
func (c *SlackClient) SendMatchResult(result *ladder.MatchResult, dryRun bool) error {
	return c.send(ResultNotification, c.FormatMatchResult(result), dryRun, "matchID", result.MatchID)
}

// SendLadder posts the standings of one mode.
func (c *SlackClient) SendLadder(mode ladder.Mode, players []ladder.PlayerRecord, dryRun bool) error {
	return c.send(LadderNotification, c.FormatLadder(mode, players), dryRun, "mode", mode)
}

func (c *SlackClient) send(notificationType NotificationType, msg slack.Message, dryRun bool, keyvals ...any) error {
	if c.api == nil || c.channelID == "" {
		log.Warn("Slack client or channel ID is not configured. Skipping notification.")
		return ErrNotConfigured
	}

	if dryRun {
		log.Info("Dry run mode: Slack notification not sent.", append([]any{"notificationType", notificationType, "msg", msg}, keyvals...)...)
		return nil
	}

	_, _, err := c.api.PostMessage(c.channelID, slack.MsgOptionBlocks(msg.Blocks.BlockSet...))
	if err != nil {
		log.Error("Failed to send Slack message", append([]any{"error", err, "notificationType", notificationType}, keyvals...)...)
		if c.metrics != nil {
			c.metrics.IncSlackNotifFailed()
		}
		return err
	}
	if c.metrics != nil {
		c.metrics.IncSlackNotifSent()
	}
	return nil
}
