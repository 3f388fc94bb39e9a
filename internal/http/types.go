package http

import (
	"net/http"

	"github.com/sahadan/halisaha/internal/config"
	"github.com/sahadan/halisaha/internal/fields"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/metrics"
	"github.com/sahadan/halisaha/internal/notifier"
	"github.com/sahadan/halisaha/internal/processor"
	"github.com/sahadan/halisaha/internal/users"
)

type Server struct {
	Users          users.UserStore
	Fields         fields.FieldStore
	Matches        matches.MatchStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
}

// MatchView is the enriched read-side projection of a match: the field
// and coach are resolved to full records and registrations carry the
// registrant's username.
type MatchView struct {
	matches.Match
	Field         *fields.Field      `json:"field"`
	Coach         *users.User        `json:"coach"`
	Registrations []RegistrationView `json:"registrations"`
	Squad         matches.Squad      `json:"squad"`
}

type RegistrationView struct {
	matches.PlayerRegistration
	Username string `json:"username"`
}
