package notifier

import (
	"sync"

	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/users"
)

// Mock is a Notifier implementation for testing. It records calls and
// is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendResultNotificationFunc func(match *matches.Match, fieldName string, names map[string]string, dryRun bool) error
	SendLeaderboardFunc        func(players []users.User, dryRun bool) error

	ResultNotificationCalls []*matches.Match
	LeaderboardCalls        [][]users.User
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendResultNotification(match *matches.Match, fieldName string, names map[string]string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResultNotificationCalls = append(m.ResultNotificationCalls, match)
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, fieldName, names, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(players []users.User, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeaderboardCalls = append(m.LeaderboardCalls, players)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(players, dryRun)
	}
	return nil
}
