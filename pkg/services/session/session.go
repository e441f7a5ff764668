package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

const (
	MinPlayers = 1
	MaxPlayers = 4
	MinRounds  = 1
	MaxRounds  = 50
)

var welcomeMessages = []string{
	"Welcome to the table, ",
	"Good luck, ",
	"Thank you for playing, ",
	"We're glad to have you, ",
}

// WelcomeMessage greets the i'th seated player, rotating through the greetings
func WelcomeMessage(i int, firstName string) string {
	if i < 0 {
		i = -i
	}
	return welcomeMessages[i%len(welcomeMessages)] + firstName + "!"
}

// ValidatePlayerCount checks n is between MinPlayers and MaxPlayers
func ValidatePlayerCount(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return types.Errorf(types.ErrInvalidArgument, "player count must be between %d and %d, got %d", MinPlayers, MaxPlayers, n)
	}
	return nil
}

// ValidateRounds checks n is between MinRounds and MaxRounds
func ValidateRounds(n int) error {
	if n < MinRounds || n > MaxRounds {
		return types.Errorf(types.ErrInvalidArgument, "rounds must be between %d and %d, got %d", MinRounds, MaxRounds, n)
	}
	return nil
}

// ParseMode reads the game mode menu choice
func ParseMode(choice string) (entities.GameMode, error) {
	mode, err := entities.ParseGameMode(choice)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidArgument, "choose 1 for Head-to-Head or 2 for Versus House", err)
	}
	return mode, nil
}

// ParseInt parses a whole number in [min, max]
func ParseInt(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min || n > max {
		return 0, types.Errorf(types.ErrInvalidArgument, "Please enter a value between %d and %d.", min, max)
	}
	return n, nil
}

// Roster collects the players for one game
type Roster struct {
	players []*entities.Player
	seen    map[string]bool
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{seen: make(map[string]bool)}
}

// Add seats a new player. Names are trimmed and must be non-empty; usernames
// must be unique ignoring case.
func (r *Roster) Add(firstName, lastName, username string) (*entities.Player, error) {
	player := entities.NewPlayer(firstName, lastName, username)

	switch {
	case player.FirstName == "":
		return nil, types.NewGameError(types.ErrInvalidArgument, "first name is required")
	case player.LastName == "":
		return nil, types.NewGameError(types.ErrInvalidArgument, "last name is required")
	case player.Username == "":
		return nil, types.NewGameError(types.ErrInvalidArgument, "username is required")
	}

	if len(r.players) >= MaxPlayers {
		return nil, types.Errorf(types.ErrTooManyPlayers, "the table seats at most %d players", MaxPlayers)
	}
	if r.Taken(player.Username) {
		return nil, types.Errorf(types.ErrDuplicatePlayer, "username %q is already taken", player.Username)
	}

	r.seen[strings.ToLower(player.Username)] = true
	r.players = append(r.players, player)
	return player, nil
}

// Taken reports whether username is already seated, ignoring case
func (r *Roster) Taken(username string) bool {
	return r.seen[strings.ToLower(strings.TrimSpace(username))]
}

// Players returns the seated players in join order
func (r *Roster) Players() []*entities.Player {
	return r.players
}

// Len returns the number of seated players
func (r *Roster) Len() int {
	return len(r.players)
}

// ValidatePlayers checks a finished roster: size and unique usernames
func ValidatePlayers(players []*entities.Player) error {
	if err := ValidatePlayerCount(len(players)); err != nil {
		return err
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p == nil || strings.TrimSpace(p.Username) == "" {
			return types.NewGameError(types.ErrInvalidArgument, "every player needs a username")
		}
		key := strings.ToLower(strings.TrimSpace(p.Username))
		if seen[key] {
			return types.Errorf(types.ErrInvalidArgument, "username %q is already present in the roster", p.Username)
		}
		seen[key] = true
	}
	return nil
}

// Summary describes a configured game before round one
type Summary struct {
	Mode    entities.GameMode
	Rounds  int
	Players []*entities.Player
}

// String renders the setup summary block
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("===== GAME SETUP SUMMARY =====\n")
	fmt.Fprintf(&b, "Game mode: %s\n", s.Mode)
	fmt.Fprintf(&b, "Hands to play: %d\n", s.Rounds)
	fmt.Fprintf(&b, "Players (%d):\n", len(s.Players))
	for i, p := range s.Players {
		fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, p.FullName(), p.Username)
	}
	return b.String()
}
