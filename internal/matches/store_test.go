package matches_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/sahadan/halisaha/internal/entity"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) matches.MatchStore {
	t.Helper()
	return matches.New(entity.NewMemory())
}

func createInput() matches.CreateInput {
	return matches.CreateInput{
		Date:         "2026-09-05",
		Time:         "20:00",
		FieldID:      "field-1",
		CoachID:      "coach-1",
		MainTeamSize: 6,
	}
}

func TestCreate(t *testing.T) {
	store := setupStore(t)

	match, err := store.Create(createInput())
	require.NoError(t, err)

	assert.NotEmpty(t, match.ID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{4}[A-Z]{2}$`), match.ShortCode)
	assert.Equal(t, matches.StatusUpcoming, match.Status)
	assert.Empty(t, match.Registrations)
	assert.Empty(t, match.TeamA)
	assert.Empty(t, match.TeamB)
	assert.Empty(t, match.Result)
}

func TestNewShortCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{4}[A-Z]{2}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, matches.NewShortCode())
	}
}

func TestFindByShortCode(t *testing.T) {
	store := setupStore(t)
	match, err := store.Create(createInput())
	require.NoError(t, err)

	found, err := store.FindByShortCode(match.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, match.ID, found.ID)

	// Lookup is case-insensitive on the letter suffix.
	found, err = store.FindByShortCode(strings.ToLower(match.ShortCode))
	require.NoError(t, err)
	assert.Equal(t, match.ID, found.ID)

	_, err = store.FindByShortCode("0000ZZ")
	assert.ErrorIs(t, err, matches.ErrNotFound)
}

func TestRegisterUpserts(t *testing.T) {
	store := setupStore(t)
	match, err := store.Create(createInput())
	require.NoError(t, err)

	updated, err := store.Register(match.ID, "player-1", matches.RegistrationComing)
	require.NoError(t, err)
	require.Len(t, updated.Registrations, 1)
	assert.Equal(t, matches.RegistrationComing, updated.Registrations[0].Status)
	assert.False(t, updated.Registrations[0].RegistrationTime.IsZero())

	_, err = store.Register(match.ID, "player-2", matches.RegistrationMaybe)
	require.NoError(t, err)

	// Re-registering replaces the entry in place instead of appending.
	updated, err = store.Register(match.ID, "player-1", matches.RegistrationNotComing)
	require.NoError(t, err)
	require.Len(t, updated.Registrations, 2)
	assert.Equal(t, "player-1", updated.Registrations[0].PlayerID)
	assert.Equal(t, matches.RegistrationNotComing, updated.Registrations[0].Status)

	_, err = store.Register("missing-match", "player-1", matches.RegistrationComing)
	assert.ErrorIs(t, err, matches.ErrNotFound)
}

func TestAssign(t *testing.T) {
	store := setupStore(t)
	match, err := store.Create(createInput())
	require.NoError(t, err)

	updated, err := store.Assign(match.ID, "player-1", matches.TeamA)
	require.NoError(t, err)
	assert.Equal(t, []string{"player-1"}, updated.TeamA)

	// Moving to the other team removes the old assignment.
	updated, err = store.Assign(match.ID, "player-1", matches.TeamB)
	require.NoError(t, err)
	assert.Empty(t, updated.TeamA)
	assert.Equal(t, []string{"player-1"}, updated.TeamB)

	updated, err = store.Assign(match.ID, "player-1", matches.TeamNone)
	require.NoError(t, err)
	assert.Empty(t, updated.TeamA)
	assert.Empty(t, updated.TeamB)

	_, err = store.Assign("missing-match", "player-1", matches.TeamA)
	assert.ErrorIs(t, err, matches.ErrNotFound)
}

func TestAssignIsIdempotentPerTeam(t *testing.T) {
	store := setupStore(t)
	match, err := store.Create(createInput())
	require.NoError(t, err)

	_, err = store.Assign(match.ID, "player-1", matches.TeamA)
	require.NoError(t, err)
	updated, err := store.Assign(match.ID, "player-1", matches.TeamA)
	require.NoError(t, err)
	assert.Equal(t, []string{"player-1"}, updated.TeamA)
}

func TestSetResult(t *testing.T) {
	store := setupStore(t)
	match, err := store.Create(createInput())
	require.NoError(t, err)

	require.NoError(t, store.SetResult(match.ID, matches.ResultTeamAWin))

	got, err := store.Get(match.ID)
	require.NoError(t, err)
	assert.Equal(t, matches.StatusCompleted, got.Status)
	assert.Equal(t, matches.ResultTeamAWin, got.Result)

	// A completed match cannot be scored again.
	err = store.SetResult(match.ID, matches.ResultDraw)
	assert.ErrorIs(t, err, matches.ErrAlreadyScored)

	err = store.SetResult("missing-match", matches.ResultDraw)
	assert.ErrorIs(t, err, matches.ErrNotFound)
}
