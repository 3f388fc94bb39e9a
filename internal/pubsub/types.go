package pubsub

import "cloud.google.com/go/pubsub"

// TopicMatchScored receives an event for every finalized match.
const TopicMatchScored = "match-scored"

type client struct {
	client   *pubsub.Client
	teardown func()
}
