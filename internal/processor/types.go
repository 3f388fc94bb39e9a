package processor

import (
	"github.com/sahadan/halisaha/internal/fields"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/metrics"
	"github.com/sahadan/halisaha/internal/notifier"
	"github.com/sahadan/halisaha/internal/pubsub"
	"github.com/sahadan/halisaha/internal/users"
)

// MatchStore is the slice of the match store the processor needs.
type MatchStore interface {
	Get(id string) (*matches.Match, error)
	SetResult(matchID string, result matches.Result) error
}

// UserStore is the slice of the user store the processor needs.
type UserStore interface {
	List() ([]users.User, error)
	ApplyResult(playerID string, outcome users.Outcome, points int, tags []string) error
}

// FieldStore resolves venue names for notifications.
type FieldStore interface {
	Get(id string) (*fields.Field, error)
}

// Processor finalizes matches: it checks the lifecycle guard, folds the
// outcome into every assigned player's stats, fixes the result on the
// match and fans out notifications.
type Processor struct {
	matches  MatchStore
	users    UserStore
	fields   FieldStore
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}

// MatchScoredEvent is published to the match-scored topic after a match
// is finalized.
type MatchScoredEvent struct {
	MatchID   string         `msgpack:"match_id"`
	ShortCode string         `msgpack:"short_code"`
	Result    matches.Result `msgpack:"result"`
	TeamA     []string       `msgpack:"team_a"`
	TeamB     []string       `msgpack:"team_b"`
}
