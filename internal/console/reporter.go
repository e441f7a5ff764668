package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fadedpez/wildcatblackjack/pkg/services/blackjack"
	"github.com/fadedpez/wildcatblackjack/pkg/services/orchestrator"
)

// Reporter prints round and game results to a terminal
type Reporter struct {
	out    io.Writer
	styles *Styles
}

// Ensure Reporter implements orchestrator.Reporter
var _ orchestrator.Reporter = (*Reporter)(nil)

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, styles: NewStyles(lipgloss.NewRenderer(out))}
}

// RoundCompleted implements orchestrator.Reporter
func (r *Reporter) RoundCompleted(ctx context.Context, round *blackjack.RoundResult) error {
	var b strings.Builder
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.styles.Header.Render(fmt.Sprintf(" *** ROUND %d *** ", round.Number)))

	if len(round.DealerCards) > 0 {
		dealer := fmt.Sprintf("%s: %s (%d)", blackjack.DealerName, r.styles.Cards(round.DealerCards), round.DealerTotal)
		if round.DealerBust {
			dealer += " " + r.styles.Loser.Render("BUST")
		}
		fmt.Fprintln(&b, dealer)
	}

	for _, p := range round.Players {
		line := fmt.Sprintf("%s: %s (%d) %s", p.Username, r.styles.Cards(p.Cards), p.Total, r.styles.Outcome(p.Outcome, p.Label))
		if p.DoubledDown {
			line += r.styles.Info.Render(" doubled")
		}
		if p.Points > 0 {
			line += fmt.Sprintf(" +%d", p.Points)
		}
		if p.BonusPoints > 0 {
			line += r.styles.Winner.Render(fmt.Sprintf(" (21 bonus %d)", p.BonusPoints))
		}
		fmt.Fprintln(&b, line)
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// GameCompleted implements orchestrator.Reporter
func (r *Reporter) GameCompleted(ctx context.Context, s *orchestrator.Summary) error {
	var b strings.Builder
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.styles.Header.Render(" ===== FINAL RESULTS ===== "))
	fmt.Fprintf(&b, "%s, %d rounds\n", s.Mode, s.Rounds)
	fmt.Fprintln(&b, r.leaderboard(s))

	fmt.Fprintln(&b, r.styles.Winner.Render(fmt.Sprintf("Winner(s): %s with %d points", strings.Join(s.WinnerNames(), ", "), s.WinningScore)))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, r.styles.SubHeader.Render("Hand totals"))
	if len(s.Distribution) == 0 {
		fmt.Fprintln(&b, "  none")
	}
	for _, tc := range s.Distribution {
		fmt.Fprintf(&b, "  %2d: %s %d\n", tc.Total, strings.Repeat("#", tc.Count), tc.Count)
	}
	fmt.Fprintf(&b, "Busts: %d\n", s.TotalBusts)
	fmt.Fprintf(&b, "Highest total: %d\n", s.HighestTotal)
	if s.BestRoundEarner != "" {
		fmt.Fprintf(&b, "Best single round: %s with %d points\n", s.BestRoundEarner, s.BestRoundPoints)
	}

	if len(s.Recognitions) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, r.styles.SubHeader.Render("Recognitions"))
		for _, rec := range s.Recognitions {
			fmt.Fprintf(&b, "  %s: %s (%s)\n", rec.Title, strings.Join(rec.Usernames, ", "), rec.Detail)
		}
	}

	fmt.Fprintln(&b)
	if s.HighScore.IsNew {
		fmt.Fprintln(&b, r.styles.Winner.Render(fmt.Sprintf("NEW HIGH SCORE! %s with %d points", s.HighScore.Current.Name, s.HighScore.Current.Score)))
	} else {
		fmt.Fprintln(&b, "No new high score.")
		if !s.HighScore.Current.IsZero() {
			fmt.Fprintf(&b, "High score to beat: %s with %d points\n", s.HighScore.Current.Name, s.HighScore.Current.Score)
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Reporter) leaderboard(s *orchestrator.Summary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Player", "Name", "Points", "W", "L", "P", "BJ", "21s", "Dbl", "Streak", "Max Cards", "Busts", "Bust %", "Win %")

	for _, rank := range s.Leaderboard {
		t.Row(
			strconv.Itoa(rank.Rank),
			rank.Username,
			rank.FullName,
			strconv.Itoa(rank.Points),
			strconv.Itoa(rank.Stats.Wins),
			strconv.Itoa(rank.Stats.Losses),
			strconv.Itoa(rank.Stats.Pushes),
			strconv.Itoa(rank.Stats.Blackjacks),
			strconv.Itoa(rank.Stats.HandsWith21),
			strconv.Itoa(rank.Stats.DoubleDowns),
			strconv.Itoa(rank.Stats.BestWinStreak),
			strconv.Itoa(rank.Stats.MaxCardsInOneHand),
			strconv.Itoa(rank.Stats.Busts),
			fmt.Sprintf("%.1f", rank.Stats.BustRate()),
			fmt.Sprintf("%.1f", rank.WinRate),
		)
	}

	out := t.String()
	for _, rank := range s.Leaderboard {
		if rank.IsTopPlayer {
			out += fmt.Sprintf("\nMost wins: %s (%d)", rank.Username, rank.Stats.Wins)
		}
	}
	return out
}
