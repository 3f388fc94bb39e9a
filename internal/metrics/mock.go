package metrics

import "sync"

// Mock is a Metrics implementation that just counts calls. Safe for
// concurrent use.
type Mock struct {
	mu sync.Mutex

	UsersRegisteredCalls  int
	MatchesCreatedCalls   int
	MatchesScoredCalls    int
	RegistrationsCalls    int
	ScoringDurations      []float64
	SlackNotifSentCalls   int
	SlackNotifFailedCalls int
	StartupTimes          []float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncUsersRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UsersRegisteredCalls++
}

func (m *Mock) IncMatchesCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesCreatedCalls++
}

func (m *Mock) IncMatchesScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesScoredCalls++
}

func (m *Mock) IncRegistrations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegistrationsCalls++
}

func (m *Mock) ObserveScoringDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScoringDurations = append(m.ScoringDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCalls++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCalls++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
