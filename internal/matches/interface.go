package matches

import "errors"

var (
	ErrNotFound      = errors.New("match not found")
	ErrAlreadyScored = errors.New("match already scored")
)

// MatchStore defines the interface for match persistence and the
// mutations of the match lifecycle.
type MatchStore interface {
	Create(input CreateInput) (*Match, error)
	Get(id string) (*Match, error)
	List() ([]Match, error)
	// FindByShortCode does a case-insensitive exact-code scan. Short
	// codes are not guaranteed unique; the first match in store
	// iteration order wins.
	FindByShortCode(code string) (*Match, error)
	// Register upserts a player's attendance intent.
	Register(matchID, playerID, status string) (*Match, error)
	// Assign moves a player onto team A or B, or off both.
	Assign(matchID, playerID string, team Team) (*Match, error)
	// SetResult finalizes the match. Fails with ErrAlreadyScored unless
	// the match is still upcoming.
	SetResult(matchID string, result Result) error
}
