package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// Topic names for the engine events published by the service layer.
const (
	TopicDraftCompleted = "draft-completed"
	TopicWeekSimulated  = "week-simulated"
	TopicSeasonComplete = "season-complete"
)
