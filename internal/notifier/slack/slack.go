package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/metrics"
	"github.com/sahadan/halisaha/internal/notifier"
	"github.com/sahadan/halisaha/internal/users"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (s *Notifier) SendResultNotification(match *matches.Match, fieldName string, names map[string]string, dryRun bool) error {
	msg := s.formatResultNotification(match, fieldName, names)
	return s.sendMessage(msg, dryRun)
}

func (s *Notifier) SendLeaderboard(players []users.User, dryRun bool) error {
	msg := s.formatLeaderboard(players)
	return s.sendMessage(msg, dryRun)
}

// formatResultNotification creates the Slack message for a scored match using Block Kit.
func (s *Notifier) formatResultNotification(match *matches.Match, fieldName string, names map[string]string) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "⚽ Maç bitti!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s\n%s %s\nSonuç: %s", fieldName, match.Date, match.Time, match.Result)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	teamsText := fmt.Sprintf("Takım A: %s\nTakım B: %s",
		joinNames(match.TeamA, names),
		joinNames(match.TeamB, names))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", teamsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the standings message using Block Kit.
func (s *Notifier) formatLeaderboard(players []users.User) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Puan durumu", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for i, player := range players {
		lines = append(lines, fmt.Sprintf("%d. %s - %d puan (%dG %dB %dM)",
			i+1, player.Username, player.Stats.Points,
			player.Stats.Wins, player.Stats.Draws, player.Stats.Losses))
	}
	if len(lines) == 0 {
		lines = []string{"Henüz oynanmış maç yok."}
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func joinNames(ids []string, names map[string]string) string {
	if len(ids) == 0 {
		return "-"
	}
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			resolved = append(resolved, name)
		} else {
			resolved = append(resolved, id)
		}
	}
	return strings.Join(resolved, ", ")
}
