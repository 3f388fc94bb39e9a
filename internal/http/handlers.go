package http

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/users"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondOK(w, map[string]string{"status": "ok"})
	}
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username     string `json:"username"`
			Password     string `json:"password"`
			Phone        string `json:"phone"`
			BirthDate    string `json:"birthDate"`
			FavoriteTeam string `json:"favoriteTeam"`
			City         string `json:"city"`
			District     string `json:"district"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Username == "" || body.Password == "" || body.Phone == "" || body.BirthDate == "" ||
			body.FavoriteTeam == "" || body.City == "" || body.District == "" {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		user, err := s.Users.Register(users.RegisterInput{
			Username:     body.Username,
			Password:     body.Password,
			Phone:        body.Phone,
			BirthDate:    body.BirthDate,
			FavoriteTeam: body.FavoriteTeam,
			City:         body.City,
			District:     body.District,
		})
		if err != nil {
			respondStoreError(w, err)
			return
		}

		s.Metrics.IncUsersRegistered()
		log.Info("User registered", "username", user.Username)
		respondOK(w, user)
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Username == "" || body.Password == "" {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		// The admin account is provisioned lazily so a fresh database can
		// be logged into right away.
		if err := s.Users.EnsureSeed(); err != nil {
			respondStoreError(w, err)
			return
		}

		user, err := s.Users.Authenticate(body.Username, body.Password)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		log.Info("User logged in", "username", user.Username, "role", user.Role)
		respondOK(w, user)
	}
}

func (s *Server) ListUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.Users.List()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, map[string]any{"items": list})
	}
}

func (s *Server) UpdateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID           string `json:"id"`
			Phone        string `json:"phone"`
			BirthDate    string `json:"birthDate"`
			FavoriteTeam string `json:"favoriteTeam"`
			Height       *int   `json:"height"`
			Weight       *int   `json:"weight"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.ID == "" {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		user, err := s.Users.UpdateProfile(users.ProfileUpdate{
			ID:           body.ID,
			Phone:        body.Phone,
			BirthDate:    body.BirthDate,
			FavoriteTeam: body.FavoriteTeam,
			Height:       body.Height,
			Weight:       body.Weight,
		})
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, user)
	}
}

func (s *Server) PromoteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.Users.Promote(r.PathValue("id"))
		if err != nil {
			respondStoreError(w, err)
			return
		}
		log.Info("User promoted to coach", "username", user.Username)
		respondOK(w, user)
	}
}

func (s *Server) ListFieldsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.Fields.List()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, map[string]any{"items": list})
	}
}

func (s *Server) CreateFieldHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name     string `json:"name"`
			City     string `json:"city"`
			District string `json:"district"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Name == "" || body.City == "" || body.District == "" {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		field, err := s.Fields.Create(body.Name, body.City, body.District)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, field)
	}
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Date            string `json:"date"`
			Time            string `json:"time"`
			FieldID         string `json:"fieldId"`
			CoachID         string `json:"coachId"`
			MainTeamSize    int    `json:"mainTeamSize"`
			CustomFieldName string `json:"customFieldName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Date == "" || body.Time == "" || body.FieldID == "" || body.CoachID == "" {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if body.MainTeamSize < 5 || body.MainTeamSize > 8 {
			respondError(w, http.StatusBadRequest, "mainTeamSize must be between 5 and 8")
			return
		}
		if body.FieldID == matches.CustomFieldID && body.CustomFieldName == "" {
			respondError(w, http.StatusBadRequest, "Custom field name is required when fieldId is CUSTOM")
			return
		}

		match, err := s.Matches.Create(matches.CreateInput{
			Date:            body.Date,
			Time:            body.Time,
			FieldID:         body.FieldID,
			CoachID:         body.CoachID,
			MainTeamSize:    body.MainTeamSize,
			CustomFieldName: body.CustomFieldName,
		})
		if err != nil {
			respondStoreError(w, err)
			return
		}

		s.Metrics.IncMatchesCreated()
		log.Info("Match created", "matchID", match.ID, "shortCode", match.ShortCode)
		respondOK(w, match)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.Matches.List()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		views, err := s.enrichMatches(list)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, map[string]any{"items": views})
	}
}

func (s *Server) SearchMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := s.Matches.FindByShortCode(r.PathValue("shortCode"))
		if err != nil {
			respondStoreError(w, err)
			return
		}
		view, err := s.enrichMatch(match)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, view)
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := s.Matches.Get(r.PathValue("id"))
		if err != nil {
			respondStoreError(w, err)
			return
		}
		view, err := s.enrichMatch(match)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, view)
	}
}

func (s *Server) RegisterPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlayerID string `json:"playerId"`
			Status   string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.PlayerID == "" || body.Status == "" {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if !matches.ValidRegistrationStatus(body.Status) {
			respondError(w, http.StatusBadRequest, "Invalid registration status")
			return
		}

		match, err := s.Matches.Register(r.PathValue("id"), body.PlayerID, body.Status)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		s.Metrics.IncRegistrations()
		respondOK(w, match)
	}
}

func (s *Server) AssignPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlayerID string `json:"playerId"`
			Team     string `json:"team"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.PlayerID == "" || body.Team == "" {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		team := matches.Team(body.Team)
		if team != matches.TeamA && team != matches.TeamB && team != matches.TeamNone {
			respondError(w, http.StatusBadRequest, "Invalid team")
			return
		}

		match, err := s.Matches.Assign(r.PathValue("id"), body.PlayerID, team)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, match)
	}
}

func (s *Server) ScoreMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Result        string                 `json:"result"`
			PlayerUpdates []matches.PlayerUpdate `json:"playerUpdates"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		result := matches.Result(body.Result)
		if result != matches.ResultTeamAWin && result != matches.ResultTeamBWin && result != matches.ResultDraw {
			respondError(w, http.StatusBadRequest, "Invalid result")
			return
		}

		match, err := s.Processor.Score(r.PathValue("id"), result, body.PlayerUpdates, isDryRunFromContext(r))
		if err != nil {
			respondStoreError(w, err)
			return
		}

		log.Info("Match scored", "matchID", match.ID, "result", match.Result)
		respondOK(w, map[string]string{"message": "Match scored successfully"})
	}
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.Users.List()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Stats.Points > list[j].Stats.Points
		})

		// Optionally push the standings to the configured channel.
		if r.URL.Query().Get("notify") == "true" {
			if err := s.Notifier.SendLeaderboard(list, isDryRunFromContext(r)); err != nil {
				log.Error("Failed to send leaderboard notification", "error", err)
			}
		}

		respondOK(w, map[string]any{"items": list})
	}
}
