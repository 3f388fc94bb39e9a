package users

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore defines the interface for account and stats operations.
type UserStore interface {
	Register(input RegisterInput) (*User, error)
	Authenticate(username, password string) (*User, error)
	List() ([]User, error)
	GetByID(id string) (*User, error)
	UpdateProfile(update ProfileUpdate) (*User, error)
	Promote(id string) (*User, error)
	// ApplyResult folds one match outcome into a player's cumulative
	// stats. Tags are set-unioned with the existing ones.
	ApplyResult(playerID string, outcome Outcome, points int, tags []string) error
	EnsureSeed() error
}
