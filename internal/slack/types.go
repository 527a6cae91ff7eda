package slack

import (
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/slack-go/slack"
)

// SlackClient is a wrapper around the official slack-go client. It posts
// ladder announcements to a single channel.
type SlackClient struct {
	api       *slack.Client
	channelID string
	metrics   metrics.Metrics
}

// NotificationType defines the type of slack message to be sent.
type NotificationType int

const (
	ResultNotification NotificationType = iota
	LadderNotification
)

func (t NotificationType) String() string {
	switch t {
	case ResultNotification:
		return "result"
	case LadderNotification:
		return "ladder"
	}
	return "unknown"
}
