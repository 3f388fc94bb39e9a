package processor_test

import (
	"testing"

	"github.com/sahadan/halisaha/internal/entity"
	"github.com/sahadan/halisaha/internal/fields"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/metrics"
	"github.com/sahadan/halisaha/internal/notifier"
	"github.com/sahadan/halisaha/internal/processor"
	"github.com/sahadan/halisaha/internal/pubsub"
	"github.com/sahadan/halisaha/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	processor *processor.Processor
	users     users.UserStore
	matches   matches.MatchStore
	notifier  *notifier.Mock
	metrics   *metrics.Mock
	pubsub    *pubsub.MockClient
}

func setup(t *testing.T) *fixture {
	t.Helper()

	store := entity.NewMemory()
	userStore := users.New(store)
	fieldStore := fields.New(store)
	matchStore := matches.New(store)
	notifierMock := notifier.NewMock()
	metricsMock := metrics.NewMock()
	pubsubMock := pubsub.NewMock("test")

	return &fixture{
		processor: processor.New(matchStore, userStore, fieldStore, notifierMock, metricsMock, pubsubMock),
		users:     userStore,
		matches:   matchStore,
		notifier:  notifierMock,
		metrics:   metricsMock,
		pubsub:    pubsubMock,
	}
}

func (f *fixture) registerPlayer(t *testing.T, username string) string {
	t.Helper()
	user, err := f.users.Register(users.RegisterInput{
		Username:     username,
		Password:     "secret",
		Phone:        "555-123-4567",
		BirthDate:    "1990-01-01T00:00:00.000Z",
		FavoriteTeam: "Trabzonspor",
		City:         "Istanbul",
		District:     "Kadikoy",
	})
	require.NoError(t, err)
	return user.ID
}

// createMatch builds an upcoming match with the given players already
// assigned to teams A and B.
func (f *fixture) createMatch(t *testing.T, teamA, teamB []string) *matches.Match {
	t.Helper()
	match, err := f.matches.Create(matches.CreateInput{
		Date:         "2026-09-05",
		Time:         "20:00",
		FieldID:      "field-1",
		CoachID:      "coach-1",
		MainTeamSize: 6,
	})
	require.NoError(t, err)
	for _, id := range teamA {
		_, err = f.matches.Assign(match.ID, id, matches.TeamA)
		require.NoError(t, err)
	}
	for _, id := range teamB {
		_, err = f.matches.Assign(match.ID, id, matches.TeamB)
		require.NoError(t, err)
	}
	return match
}

func (f *fixture) stats(t *testing.T, id string) users.PlayerStats {
	t.Helper()
	user, err := f.users.GetByID(id)
	require.NoError(t, err)
	return user.Stats
}

func TestScoreTeamAWin(t *testing.T) {
	f := setup(t)
	winner := f.registerPlayer(t, "winner")
	loser := f.registerPlayer(t, "loser")
	match := f.createMatch(t, []string{winner}, []string{loser})

	scored, err := f.processor.Score(match.ID, matches.ResultTeamAWin, nil, false)
	require.NoError(t, err)
	assert.Equal(t, matches.StatusCompleted, scored.Status)
	assert.Equal(t, matches.ResultTeamAWin, scored.Result)

	winnerStats := f.stats(t, winner)
	assert.Equal(t, 3, winnerStats.Points)
	assert.Equal(t, 1, winnerStats.Wins)
	assert.Equal(t, 1, winnerStats.MatchesPlayed)

	// A loss still earns a point.
	loserStats := f.stats(t, loser)
	assert.Equal(t, 1, loserStats.Points)
	assert.Equal(t, 1, loserStats.Losses)
	assert.Equal(t, 1, loserStats.MatchesPlayed)

	assert.Equal(t, 1, f.metrics.MatchesScoredCalls)
	assert.Len(t, f.metrics.ScoringDurations, 1)
	assert.Len(t, f.notifier.ResultNotificationCalls, 1)
}

func TestScoreDraw(t *testing.T) {
	f := setup(t)
	p1 := f.registerPlayer(t, "p1")
	p2 := f.registerPlayer(t, "p2")
	match := f.createMatch(t, []string{p1}, []string{p2})

	_, err := f.processor.Score(match.ID, matches.ResultDraw, nil, false)
	require.NoError(t, err)

	for _, id := range []string{p1, p2} {
		stats := f.stats(t, id)
		assert.Equal(t, 2, stats.Points)
		assert.Equal(t, 1, stats.Draws)
		assert.Equal(t, 1, stats.MatchesPlayed)
	}
}

func TestScoreAppliesPlayerTags(t *testing.T) {
	f := setup(t)
	p1 := f.registerPlayer(t, "p1")
	p2 := f.registerPlayer(t, "p2")
	match := f.createMatch(t, []string{p1}, []string{p2})

	updates := []matches.PlayerUpdate{
		{PlayerID: p1, Tags: []string{"Golcü", "Kaptan"}},
	}
	_, err := f.processor.Score(match.ID, matches.ResultTeamAWin, updates, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Golcü", "Kaptan"}, f.stats(t, p1).Tags)
	assert.Empty(t, f.stats(t, p2).Tags)
}

func TestScoreLeavesUnassignedPlayersUntouched(t *testing.T) {
	f := setup(t)
	p1 := f.registerPlayer(t, "p1")
	bystander := f.registerPlayer(t, "bystander")
	match := f.createMatch(t, []string{p1}, nil)
	_, err := f.matches.Register(match.ID, bystander, matches.RegistrationComing)
	require.NoError(t, err)

	_, err = f.processor.Score(match.ID, matches.ResultTeamAWin, nil, false)
	require.NoError(t, err)

	stats := f.stats(t, bystander)
	assert.Equal(t, 0, stats.Points)
	assert.Equal(t, 0, stats.MatchesPlayed)
}

func TestScoreTwiceFails(t *testing.T) {
	f := setup(t)
	p1 := f.registerPlayer(t, "p1")
	match := f.createMatch(t, []string{p1}, nil)

	_, err := f.processor.Score(match.ID, matches.ResultTeamAWin, nil, false)
	require.NoError(t, err)

	_, err = f.processor.Score(match.ID, matches.ResultDraw, nil, false)
	assert.ErrorIs(t, err, matches.ErrAlreadyScored)

	// Stats were not double counted.
	assert.Equal(t, 3, f.stats(t, p1).Points)
	assert.Equal(t, 1, f.stats(t, p1).MatchesPlayed)
}

func TestScoreUnknownMatch(t *testing.T) {
	f := setup(t)

	_, err := f.processor.Score("missing-match", matches.ResultDraw, nil, false)
	assert.ErrorIs(t, err, matches.ErrNotFound)
}

func TestScoreSkipsDeletedPlayers(t *testing.T) {
	f := setup(t)
	p1 := f.registerPlayer(t, "p1")
	match := f.createMatch(t, []string{p1, "ghost-player"}, nil)

	_, err := f.processor.Score(match.ID, matches.ResultTeamAWin, nil, false)
	require.NoError(t, err)

	assert.Equal(t, 3, f.stats(t, p1).Points)
}

func TestScorePublishesEvent(t *testing.T) {
	f := setup(t)
	p1 := f.registerPlayer(t, "p1")
	match := f.createMatch(t, []string{p1}, nil)

	_, err := f.processor.Score(match.ID, matches.ResultTeamAWin, nil, false)
	require.NoError(t, err)

	require.Len(t, f.pubsub.SentMessages, 1)
	assert.Equal(t, pubsub.TopicMatchScored, f.pubsub.SentMessages[0].Topic)

	var event processor.MatchScoredEvent
	require.NoError(t, f.pubsub.ProcessMessage(f.pubsub.SentMessages[0].Data, &event))
	assert.Equal(t, match.ID, event.MatchID)
	assert.Equal(t, matches.ResultTeamAWin, event.Result)
	assert.Equal(t, []string{p1}, event.TeamA)
}

func TestScoreDryRunSkipsPublish(t *testing.T) {
	f := setup(t)
	p1 := f.registerPlayer(t, "p1")
	match := f.createMatch(t, []string{p1}, nil)

	_, err := f.processor.Score(match.ID, matches.ResultTeamAWin, nil, true)
	require.NoError(t, err)

	assert.Empty(t, f.pubsub.SentMessages)
	// The notification still goes out, flagged as a dry run.
	assert.Len(t, f.notifier.ResultNotificationCalls, 1)
	// Stats still change: dry run only suppresses outbound side effects.
	assert.Equal(t, 3, f.stats(t, p1).Points)
}
