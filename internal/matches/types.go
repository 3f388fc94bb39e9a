package matches

import "time"

// Status is the match lifecycle state.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Result is the final outcome of a match. Set once by scoring and
// immutable afterwards.
type Result string

const (
	ResultTeamAWin Result = "Team A Win"
	ResultTeamBWin Result = "Team B Win"
	ResultDraw     Result = "Draw"
)

// Team is a team assignment target. TeamNone clears the assignment.
type Team string

const (
	TeamA    Team = "A"
	TeamB    Team = "B"
	TeamNone Team = "none"
)

// CustomFieldID is the sentinel fieldId for matches played on an
// unregistered venue named via CustomFieldName.
const CustomFieldID = "CUSTOM"

// Registration intent statuses, shown to players verbatim.
const (
	RegistrationComing    = "Mutlaka geleceğim"
	RegistrationMaybe     = "Belki gelirim"
	RegistrationNotComing = "Gelemem"
)

// ValidRegistrationStatus reports whether s is one of the three intent
// statuses.
func ValidRegistrationStatus(s string) bool {
	return s == RegistrationComing || s == RegistrationMaybe || s == RegistrationNotComing
}

// PlayerRegistration records a player's attendance intent. A player has
// at most one registration per match; re-registering replaces it in
// place with a fresh timestamp.
type PlayerRegistration struct {
	PlayerID         string    `json:"playerId"`
	Status           string    `json:"status"`
	RegistrationTime time.Time `json:"registrationTime"`
}

// Match is a scheduled game on a field, owned by its creating coach.
type Match struct {
	ID              string               `json:"id"`
	ShortCode       string               `json:"shortCode"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	FieldID         string               `json:"fieldId"`
	CoachID         string               `json:"coachId"`
	MainTeamSize    int                  `json:"mainTeamSize"`
	Status          Status               `json:"status"`
	Registrations   []PlayerRegistration `json:"registrations"`
	TeamA           []string             `json:"teamA"`
	TeamB           []string             `json:"teamB"`
	Result          Result               `json:"result,omitempty"`
	CustomFieldName string               `json:"customFieldName,omitempty"`
}

// CreateInput carries the fields required to create a match.
type CreateInput struct {
	Date            string
	Time            string
	FieldID         string
	CoachID         string
	MainTeamSize    int
	CustomFieldName string
}

// PlayerUpdate is a per-player tag contribution submitted with a score.
type PlayerUpdate struct {
	PlayerID string   `json:"playerId"`
	Tags     []string `json:"tags"`
}
