package notifier

import (
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/users"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendResultNotification announces a scored match. names maps player
	// ids to usernames for display; fieldName is the resolved venue.
	SendResultNotification(match *matches.Match, fieldName string, names map[string]string, dryRun bool) error
	// SendLeaderboard posts the current standings, ordered by points.
	SendLeaderboard(players []users.User, dryRun bool) error
}
