package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/fadedpez/wildcatblackjack/pkg/services/blackjack"
	"github.com/fadedpez/wildcatblackjack/pkg/services/session"
)

// Setup is a game configured at the prompt
type Setup struct {
	Mode    entities.GameMode
	Rounds  int
	Players []*entities.Player
}

// Prompter reads answers line by line and re-asks until each one is valid
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles *Styles
}

// Ensure Prompter implements blackjack.ActionProvider
var _ blackjack.ActionProvider = (*Prompter)(nil)

// NewPrompter creates a prompter reading from in and writing to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// ReadText prints prompt and returns the trimmed line. Running out of input
// is an INPUT_ERROR.
func (p *Prompter) ReadText(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", types.WrapError(types.ErrInputError, "no more input", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadInt asks until the answer is a whole number in [min, max]
func (p *Prompter) ReadInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.ReadText(prompt)
		if err != nil {
			return 0, err
		}
		n, err := session.ParseInt(line, min, max)
		if err == nil {
			return n, nil
		}
		p.complain(err)
	}
}

// ReadName asks until the answer is non-empty
func (p *Prompter) ReadName(prompt string) (string, error) {
	for {
		line, err := p.ReadText(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, p.styles.Error.Render("This field cannot be empty."))
	}
}

// Confirm asks a yes/no question. Anything but y or yes is no.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	line, err := p.ReadText(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ReadSetup walks through player count, names, mode and rounds, then prints
// the setup summary
func (p *Prompter) ReadSetup() (*Setup, error) {
	fmt.Fprintln(p.out, p.styles.Header.Render(" Welcome to Wildcat Blackjack! "))
	fmt.Fprintf(p.out, "Up to %s players can play.\n\n", numberWord(session.MaxPlayers))

	count, err := p.ReadInt(fmt.Sprintf("Enter the number of players (%d-%d): ", session.MinPlayers, session.MaxPlayers), session.MinPlayers, session.MaxPlayers)
	if err != nil {
		return nil, err
	}

	roster := session.NewRoster()
	for i := 0; i < count; i++ {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.styles.SubHeader.Render(fmt.Sprintf("Player %d information", i+1)))

		player, err := p.readPlayer(roster)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(p.out, session.WelcomeMessage(i, player.FirstName))
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Choose a game mode:")
	fmt.Fprintf(p.out, "%d. %s (Player vs Player)\n", entities.HeadToHead, entities.HeadToHead)
	fmt.Fprintf(p.out, "%d. Each Player vs the House\n", entities.VersusHouse)
	choice, err := p.ReadInt("Enter your choice (1-2): ", int(entities.HeadToHead), int(entities.VersusHouse))
	if err != nil {
		return nil, err
	}
	mode := entities.GameMode(choice)
	fmt.Fprintf(p.out, "\nYou selected: %s\n", mode)

	rounds, err := p.ReadInt(fmt.Sprintf("Enter how many hands will be played (%d-%d): ", session.MinRounds, session.MaxRounds), session.MinRounds, session.MaxRounds)
	if err != nil {
		return nil, err
	}

	setup := &Setup{Mode: mode, Rounds: rounds, Players: roster.Players()}
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, session.Summary{Mode: mode, Rounds: rounds, Players: setup.Players}.String())
	return setup, nil
}

func (p *Prompter) readPlayer(roster *session.Roster) (*entities.Player, error) {
	first, err := p.ReadName("Enter your first name: ")
	if err != nil {
		return nil, err
	}
	last, err := p.ReadName("Enter your last name: ")
	if err != nil {
		return nil, err
	}
	for {
		username, err := p.ReadName("Enter your username (or create one): ")
		if err != nil {
			return nil, err
		}
		player, err := roster.Add(first, last, username)
		if err == nil {
			return player, nil
		}
		p.complain(err)
	}
}

// ChooseAction implements blackjack.ActionProvider. It shows the hand and
// asks until the answer is a legal action.
func (p *Prompter) ChooseAction(ctx context.Context, req blackjack.ActionRequest) (blackjack.Action, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s, your hand: %s (%d)\n", req.Username, p.styles.Cards(req.Hand.Cards), req.Value)
	if req.DealerUpCard != nil {
		fmt.Fprintf(p.out, "Dealer shows: %s\n", p.styles.Card(req.DealerUpCard))
	}

	prompt := actionPrompt(req.Legal)
	for {
		line, err := p.ReadText(prompt)
		if err != nil {
			return "", err
		}
		action, err := blackjack.ParseAction(line)
		if err == nil && req.Allows(action) {
			return action, nil
		}
		fmt.Fprintln(p.out, p.styles.Error.Render("Please choose one of the listed actions."))
	}
}

func actionPrompt(legal []blackjack.Action) string {
	labels := map[blackjack.Action]string{
		blackjack.ActionHit:        "[H]it",
		blackjack.ActionStand:      "[S]tand",
		blackjack.ActionDoubleDown: "[D]ouble down",
	}
	parts := make([]string, 0, len(legal))
	for _, a := range legal {
		parts = append(parts, labels[a])
	}
	return strings.Join(parts, ", ") + ": "
}

// complain prints a validation error without its code
func (p *Prompter) complain(err error) {
	msg := err.Error()
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		msg = gameErr.Message
	}
	fmt.Fprintln(p.out, p.styles.Error.Render(msg))
}

func numberWord(n int) string {
	words := []string{"zero", "one", "two", "three", "four"}
	if n >= 0 && n < len(words) {
		return words[n]
	}
	return fmt.Sprintf("%d", n)
}
