package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventMatchRecorded is published after a match result is committed.
	EventMatchRecorded EventType = "match-recorded"
	// EventSubmitMatch carries a match result to be recorded asynchronously.
	EventSubmitMatch EventType = "submit-match"
)
