package processor

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/metrics"
	"github.com/sahadan/halisaha/internal/notifier"
	"github.com/sahadan/halisaha/internal/pubsub"
	"github.com/sahadan/halisaha/internal/users"
)

// New creates a new Processor.
func New(matchStore MatchStore, userStore UserStore, fieldStore FieldStore, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		matches:  matchStore,
		users:    userStore,
		fields:   fieldStore,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// Score finalizes a match. The match must still be upcoming; every
// player on team A or B gets exactly one outcome folded into their
// stats, registered-but-unassigned players get nothing. The match
// update and the per-player updates are independent writes, there is no
// cross-entity transaction.
func (p *Processor) Score(matchID string, result matches.Result, updates []matches.PlayerUpdate, dryRun bool) (*matches.Match, error) {
	start := time.Now()

	match, err := p.matches.Get(matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != matches.StatusUpcoming {
		return nil, matches.ErrAlreadyScored
	}

	log.Info("Scoring match", "matchID", matchID, "result", result, "teamA", len(match.TeamA), "teamB", len(match.TeamB))

	tagsByPlayer := make(map[string][]string, len(updates))
	for _, update := range updates {
		tagsByPlayer[update.PlayerID] = update.Tags
	}

	outcomeA, pointsA := outcomeFor(matches.TeamA, result)
	outcomeB, pointsB := outcomeFor(matches.TeamB, result)

	for _, playerID := range match.TeamA {
		if err := p.applyResult(playerID, outcomeA, pointsA, tagsByPlayer[playerID]); err != nil {
			return nil, err
		}
	}
	for _, playerID := range match.TeamB {
		if err := p.applyResult(playerID, outcomeB, pointsB, tagsByPlayer[playerID]); err != nil {
			return nil, err
		}
	}

	if err := p.matches.SetResult(matchID, result); err != nil {
		return nil, err
	}
	match.Status = matches.StatusCompleted
	match.Result = result

	p.metrics.IncMatchesScored()
	p.metrics.ObserveScoringDuration(time.Since(start).Seconds())

	if !dryRun {
		event := MatchScoredEvent{
			MatchID:   match.ID,
			ShortCode: match.ShortCode,
			Result:    result,
			TeamA:     match.TeamA,
			TeamB:     match.TeamB,
		}
		if err := p.pubsub.SendMessage(pubsub.TopicMatchScored, event); err != nil {
			log.Error("Failed to publish match scored event", "error", err, "matchID", matchID)
		}
	}

	if err := p.notifier.SendResultNotification(match, p.fieldName(match), p.playerNames(), dryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "matchID", matchID)
	}

	log.Info("Match scored", "matchID", matchID, "result", result)
	return match, nil
}

// applyResult updates a single player, tolerating deleted accounts the
// same way the registration flow does.
func (p *Processor) applyResult(playerID string, outcome users.Outcome, points int, tags []string) error {
	err := p.users.ApplyResult(playerID, outcome, points, tags)
	if err == users.ErrNotFound {
		log.Warn("Skipping stats for unknown player", "playerID", playerID)
		return nil
	}
	return err
}

// outcomeFor maps a team and a match result to the player outcome and
// awarded points. A loss still earns a single point.
func outcomeFor(team matches.Team, result matches.Result) (users.Outcome, int) {
	switch {
	case result == matches.ResultDraw:
		return users.OutcomeDraw, 2
	case (team == matches.TeamA && result == matches.ResultTeamAWin) ||
		(team == matches.TeamB && result == matches.ResultTeamBWin):
		return users.OutcomeWin, 3
	default:
		return users.OutcomeLoss, 1
	}
}

func (p *Processor) fieldName(match *matches.Match) string {
	if match.CustomFieldName != "" {
		return match.CustomFieldName
	}
	field, err := p.fields.Get(match.FieldID)
	if err != nil {
		return match.FieldID
	}
	return field.Name
}

func (p *Processor) playerNames() map[string]string {
	names := make(map[string]string)
	all, err := p.users.List()
	if err != nil {
		log.Error("Failed to list users for notification", "error", err)
		return names
	}
	for _, user := range all {
		names[user.ID] = user.Username
	}
	return names
}
