package http

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/sahadan/halisaha/internal/fields"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/users"
)

// unknownUsername is shown for registrations whose user record is gone.
const unknownUsername = "Bilinmeyen"

// enrichMatch builds the read-side projection for a single match.
func (s *Server) enrichMatch(match *matches.Match) (MatchView, error) {
	byID, err := s.usersByID()
	if err != nil {
		return MatchView{}, err
	}
	return s.enrichWith(match, byID), nil
}

// enrichMatches builds projections for a match list, resolving users once.
func (s *Server) enrichMatches(list []matches.Match) ([]MatchView, error) {
	byID, err := s.usersByID()
	if err != nil {
		return nil, err
	}
	views := make([]MatchView, 0, len(list))
	for i := range list {
		views = append(views, s.enrichWith(&list[i], byID))
	}
	return views, nil
}

func (s *Server) usersByID() (map[string]users.User, error) {
	all, err := s.Users.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]users.User, len(all))
	for _, user := range all {
		byID[user.ID] = user
	}
	return byID, nil
}

func (s *Server) enrichWith(match *matches.Match, byID map[string]users.User) MatchView {
	view := MatchView{
		Match: *match,
		Squad: matches.DeriveSquad(match),
	}

	if match.CustomFieldName != "" {
		// City and district are placeholders for custom venues.
		view.Field = &fields.Field{ID: matches.CustomFieldID, Name: match.CustomFieldName, City: "Istanbul", District: "Kadikoy"}
	} else if match.FieldID != "" {
		field, err := s.Fields.Get(match.FieldID)
		if err != nil && !errors.Is(err, fields.ErrNotFound) {
			log.Error("Failed to resolve match field", "error", err, "matchID", match.ID)
		}
		view.Field = field
	}

	if coach, ok := byID[match.CoachID]; ok {
		view.Coach = &coach
	}

	view.Registrations = make([]RegistrationView, 0, len(match.Registrations))
	for _, reg := range match.Registrations {
		username := unknownUsername
		if user, ok := byID[reg.PlayerID]; ok {
			username = user.Username
		}
		view.Registrations = append(view.Registrations, RegistrationView{PlayerRegistration: reg, Username: username})
	}

	return view
}
