package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/fadedpez/wildcatblackjack/pkg/services/blackjack"
	"github.com/fadedpez/wildcatblackjack/pkg/services/orchestrator"
)

// ResponseEmoji maps error codes to appropriate emojis
var ResponseEmoji = map[types.ErrorCode]string{
	types.ErrInvalidArgument: "❗",
	types.ErrDuplicatePlayer: "👤",
	types.ErrTooManyPlayers:  "👥",
	types.ErrInvalidAction:   "❌",
	types.ErrInvalidState:    "⚠️",
	types.ErrInputError:      "⌨️",
	types.ErrInternalError:   "💥",
	types.ErrNetworkError:    "🌐",
	types.ErrDatabaseError:   "💾",
}

var suitEmoji = map[entities.Suit]string{
	entities.Hearts:   "♥️",
	entities.Diamonds: "♦️",
	entities.Clubs:    "♣️",
	entities.Spades:   "♠️",
}

// Embed colors
const (
	colorWin  = 0x2ECC71
	colorGame = 0xF1C40F
)

// ErrorMessage renders err for a channel post
func ErrorMessage(err error) string {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		emoji := ResponseEmoji[gameErr.Code]
		if emoji == "" {
			emoji = "❌"
		}
		return fmt.Sprintf("%s %s", emoji, gameErr.Message)
	}
	return fmt.Sprintf("❌ An error occurred: %v", err)
}

func formatCards(cards []*entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.Rank.Code()+suitEmoji[c.Suit])
	}
	return strings.Join(parts, " ")
}

// RoundMessage renders one round as a markdown message
func RoundMessage(r *blackjack.RoundResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Round %d** (%s)\n", r.Number, r.Mode)
	if len(r.DealerCards) > 0 {
		fmt.Fprintf(&b, "🎩 Dealer: %s = **%d**", formatCards(r.DealerCards), r.DealerTotal)
		if r.DealerBust {
			b.WriteString(" 💥")
		}
		b.WriteString("\n")
	}
	for _, p := range r.Players {
		fmt.Fprintf(&b, "• %s: %s = **%d** %s", p.Username, formatCards(p.Cards), p.Total, p.Label)
		if p.Points > 0 {
			fmt.Fprintf(&b, " (+%d)", p.Points)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SummaryEmbed renders the end of game summary
func SummaryEmbed(s *orchestrator.Summary) *discordgo.MessageEmbed {
	standings := make([]string, 0, len(s.Leaderboard))
	mostWins := ""
	for _, rank := range s.Leaderboard {
		st := rank.Stats
		standings = append(standings, fmt.Sprintf("%d. %s (%s) %d pts, %.0f%% wins\n   BJ %d, 21s %d, doubles %d, streak %d, max cards %d, bust %.0f%%",
			rank.Rank, rank.Username, rank.FullName, rank.Points, rank.WinRate,
			st.Blackjacks, st.HandsWith21, st.DoubleDowns, st.BestWinStreak, st.MaxCardsInOneHand, st.BustRate()))
		if rank.IsTopPlayer {
			mostWins = fmt.Sprintf("%s (%d)", rank.Username, st.Wins)
		}
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Winners", Value: fmt.Sprintf("%s with %d points", strings.Join(s.WinnerNames(), ", "), s.WinningScore)},
		{Name: "Standings", Value: strings.Join(standings, "\n")},
		{Name: "Busts", Value: fmt.Sprintf("%d", s.TotalBusts), Inline: true},
		{Name: "Highest Total", Value: fmt.Sprintf("%d", s.HighestTotal), Inline: true},
	}
	if mostWins != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Most Wins", Value: mostWins, Inline: true})
	}
	if s.BestRoundEarner != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Best Round",
			Value:  fmt.Sprintf("%s earned %d", s.BestRoundEarner, s.BestRoundPoints),
			Inline: true,
		})
	}
	for _, r := range s.Recognitions {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "🏅 " + r.Title,
			Value: fmt.Sprintf("%s (%s)", strings.Join(r.Usernames, ", "), r.Detail),
		})
	}

	highScore := fmt.Sprintf("No new high score. Record: %s with %d", s.HighScore.Current.Name, s.HighScore.Current.Score)
	color := colorGame
	if s.HighScore.IsNew {
		highScore = fmt.Sprintf("🎉 New high score! %s with %d", s.HighScore.Current.Name, s.HighScore.Current.Score)
		color = colorWin
	}
	fields = append(fields, &discordgo.MessageEmbedField{Name: "High Score", Value: highScore})

	return &discordgo.MessageEmbed{
		Title:       "🃏 Game Over",
		Description: fmt.Sprintf("%s, %d rounds", s.Mode, s.Rounds),
		Color:       color,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Game " + s.GameID},
	}
}
