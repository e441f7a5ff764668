package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

// Styles contains styling for console output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Winner    lipgloss.Style
	Loser     lipgloss.Style
	Push      lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates styles bound to a renderer. The renderer picks the
// color profile of the output it was created for.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		SubHeader: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loser: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}

var suitSymbols = map[entities.Suit]string{
	entities.Hearts:   "♥",
	entities.Diamonds: "♦",
	entities.Clubs:    "♣",
	entities.Spades:   "♠",
}

// Card renders a card as rank and suit symbol, red suits in red
func (s *Styles) Card(c *entities.Card) string {
	text := c.Rank.Code() + suitSymbols[c.Suit]
	if c.Suit == entities.Hearts || c.Suit == entities.Diamonds {
		return s.CardRed.Render(text)
	}
	return s.CardBlack.Render(text)
}

// Cards renders a hand separated by spaces
func (s *Styles) Cards(cards []*entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, s.Card(c))
	}
	return strings.Join(parts, " ")
}

// Outcome colors a result label
func (s *Styles) Outcome(o entities.Outcome, label string) string {
	switch o {
	case entities.OutcomeWin:
		return s.Winner.Render(label)
	case entities.OutcomePush:
		return s.Push.Render(label)
	}
	return s.Loser.Render(label)
}
