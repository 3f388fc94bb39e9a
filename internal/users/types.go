package users

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RolePlayer Role = "player"
)

// Outcome is a player's result in a single match.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLoss Outcome = "loss"
)

// PlayerStats is the cumulative record embedded in every user. After
// every scoring event MatchesPlayed equals Wins+Draws+Losses.
type PlayerStats struct {
	Points        int      `json:"points"`
	MatchesPlayed int      `json:"matchesPlayed"`
	Wins          int      `json:"wins"`
	Draws         int      `json:"draws"`
	Losses        int      `json:"losses"`
	Tags          []string `json:"tags"`
}

// User is an account. The password is persisted in the entity store
// blob but never serialized into an API response.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Role         Role        `json:"role"`
	Phone        string      `json:"phone"`
	BirthDate    string      `json:"birthDate"`
	FavoriteTeam string      `json:"favoriteTeam"`
	City         string      `json:"city"`
	District     string      `json:"district"`
	Stats        PlayerStats `json:"stats"`
	Password     string      `json:"-"`
	Height       *int        `json:"height,omitempty"`
	Weight       *int        `json:"weight,omitempty"`
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username     string
	Password     string
	Phone        string
	BirthDate    string
	FavoriteTeam string
	City         string
	District     string
}

// ProfileUpdate carries the mutable profile fields. Height and weight
// are only written when provided.
type ProfileUpdate struct {
	ID           string
	Phone        string
	BirthDate    string
	FavoriteTeam string
	Height       *int
	Weight       *int
}
