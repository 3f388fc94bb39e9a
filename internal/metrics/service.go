package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halisaha_users_registered_total",
			Help: "The total number of player accounts created.",
		}),
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halisaha_matches_created_total",
			Help: "The total number of matches created by coaches.",
		}),
		MatchesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halisaha_matches_scored_total",
			Help: "The total number of matches scored and finalized.",
		}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halisaha_registrations_total",
			Help: "The total number of player registration upserts.",
		}),
		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "halisaha_scoring_duration_seconds",
			Help:    "The duration of individual match scoring passes.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halisaha_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halisaha_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "halisaha_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.UsersRegistered,
		s.MatchesCreated,
		s.MatchesScored,
		s.Registrations,
		s.ScoringDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncUsersRegistered() {
	s.UsersRegistered.Inc()
}

func (s *Service) IncMatchesCreated() {
	s.MatchesCreated.Inc()
}

func (s *Service) IncMatchesScored() {
	s.MatchesScored.Inc()
}

func (s *Service) IncRegistrations() {
	s.Registrations.Inc()
}

func (s *Service) ObserveScoringDuration(duration float64) {
	s.ScoringDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
