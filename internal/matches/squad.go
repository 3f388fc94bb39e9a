package matches

import "sort"

// Squad splits the players attached to a match into starters and
// substitutes for display.
type Squad struct {
	Starters    []string `json:"starters"`
	Substitutes []string `json:"substitutes"`
}

// DeriveSquad builds the main squad: players already assigned to team A
// then team B come first, then unassigned players who registered as
// definitely coming, ordered by ascending registration time. The first
// MainTeamSize players are starters, the rest substitutes.
func DeriveSquad(m *Match) Squad {
	assigned := make(map[string]bool, len(m.TeamA)+len(m.TeamB))
	combined := make([]string, 0, len(m.TeamA)+len(m.TeamB)+len(m.Registrations))

	for _, id := range m.TeamA {
		assigned[id] = true
		combined = append(combined, id)
	}
	for _, id := range m.TeamB {
		assigned[id] = true
		combined = append(combined, id)
	}

	var definite []PlayerRegistration
	for _, reg := range m.Registrations {
		if reg.Status == RegistrationComing && !assigned[reg.PlayerID] {
			definite = append(definite, reg)
		}
	}
	sort.SliceStable(definite, func(i, j int) bool {
		return definite[i].RegistrationTime.Before(definite[j].RegistrationTime)
	})
	for _, reg := range definite {
		combined = append(combined, reg.PlayerID)
	}

	squad := Squad{Starters: []string{}, Substitutes: []string{}}
	for i, id := range combined {
		if i < m.MainTeamSize {
			squad.Starters = append(squad.Starters, id)
		} else {
			squad.Substitutes = append(squad.Substitutes, id)
		}
	}
	return squad
}
