package metrics

// Metrics defines the counters the rest of the application records.
type Metrics interface {
	IncUsersRegistered()
	IncMatchesCreated()
	IncMatchesScored()
	IncRegistrations()
	ObserveScoringDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
