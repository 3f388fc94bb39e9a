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

func NewServer(userStore users.UserStore, fieldStore fields.FieldStore, matchStore matches.MatchStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor) *Server {
	server := &Server{
		Users:          userStore,
		Fields:         fieldStore,
		Matches:        matchStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /api/register", Chain(s.RegisterHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/login", Chain(s.LoginHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/users", Chain(s.ListUsersHandler(), paramsMiddleware))
	s.Router.Handle("PUT /api/users/profile", Chain(s.UpdateProfileHandler(), paramsMiddleware))
	s.Router.Handle("PUT /api/users/{id}/promote", Chain(s.PromoteHandler(), paramsMiddleware))

	s.Router.Handle("GET /api/fields", Chain(s.ListFieldsHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/fields", Chain(s.CreateFieldHandler(), paramsMiddleware))

	s.Router.Handle("POST /api/matches", Chain(s.CreateMatchHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/matches/search/{shortCode}", Chain(s.SearchMatchHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/matches/{id}", Chain(s.GetMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/matches/{id}/register", Chain(s.RegisterPlayerHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/matches/{id}/assign", Chain(s.AssignPlayerHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/matches/{id}/score", Chain(s.ScoreMatchHandler(), paramsMiddleware))

	s.Router.Handle("GET /api/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
