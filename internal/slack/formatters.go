package slack

import (
	"fmt"
	"strings"

	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/slack-go/slack"
)

var kindTitles = map[ladder.MatchKind]string{
	ladder.KindDuel:       "Duel",
	ladder.KindTeam:       "Team match",
	ladder.KindFreeForAll: "Free-for-all",
}

// FormatMatchResult creates the Slack message for a recorded match using Block Kit.
func (c *SlackClient) FormatMatchResult(result *ladder.MatchResult) slack.Message {
	blocks := make([]slack.Block, 0)

	title, ok := kindTitles[result.Kind]
	if !ok {
		title = "Match"
	}
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s recorded (%s) 🏆", title, result.Mode), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var fields []*slack.TextBlockObject
	if winners := result.Winners(); len(winners) > 0 {
		fields = append(fields, slack.NewTextBlockObject("mrkdwn", "*Winners*\n"+outcomeLines(winners), false, false))
	}
	if losers := result.Losers(); len(losers) > 0 {
		fields = append(fields, slack.NewTextBlockObject("mrkdwn", "*Losers*\n"+outcomeLines(losers), false, false))
	}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	contextText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Match %s at %s", result.MatchID, result.RecordedAt.Format("Monday 02 Jan, 15:04")), true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

// FormatLadder creates the Slack message for the standings of one mode.
func (c *SlackClient) FormatLadder(mode ladder.Mode, players []ladder.PlayerRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📊 %s ladder 📊", mode), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players registered yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for i, p := range players {
		line := fmt.Sprintf("%d. %s: %.0f (%dW / %dL)", i+1, p.Name, p.Rating, p.Wins, p.Losses)
		switch i {
		case 0:
			line = "🥇 " + line
		case 1:
			line = "🥈 " + line
		case 2:
			line = "🥉 " + line
		}
		lines = append(lines, line)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func outcomeLines(outcomes []ladder.Outcome) string {
	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		lines = append(lines, fmt.Sprintf("• %s: %.0f → %.0f (%+.1f)", o.Name, o.PreRating, o.NewRating, o.Delta))
	}
	return strings.Join(lines, "\n")
}
