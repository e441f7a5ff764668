package blackjack

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

// Action is a decision a player can make on their hand
type Action string

const (
	ActionHit        Action = "HIT"
	ActionStand      Action = "STAND"
	ActionDoubleDown Action = "DOUBLE_DOWN"
)

func (a Action) String() string {
	return string(a)
}

// ParseAction accepts the short and long forms typed at a prompt
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return ActionHit, nil
	case "s", "stand":
		return ActionStand, nil
	case "d", "double", "double down", "doubledown", "double_down":
		return ActionDoubleDown, nil
	}
	return "", fmt.Errorf("unknown action: %q", s)
}

// LegalActions returns what the hand may do next. Double down is only
// offered against the house on the first two cards.
func LegalActions(mode entities.GameMode, hand *Hand) []Action {
	legal := []Action{ActionHit, ActionStand}
	if mode == entities.VersusHouse && len(hand.Cards) == 2 {
		legal = append(legal, ActionDoubleDown)
	}
	return legal
}

// Seat pairs a player with their hand for the current round
type Seat struct {
	Player *entities.Player
	Hand   *Hand
}

// NewSeat seats a player with an empty hand
func NewSeat(player *entities.Player) *Seat {
	return &Seat{Player: player, Hand: NewHand()}
}

// ActionRequest is everything an action provider needs to decide
type ActionRequest struct {
	Round        int
	Mode         entities.GameMode
	Username     string
	FullName     string
	Hand         *Hand
	Value        int
	DealerUpCard *entities.Card // nil in head-to-head
	Legal        []Action
}

// Allows reports whether action is in the legal set
func (r ActionRequest) Allows(action Action) bool {
	return slices.Contains(r.Legal, action)
}

// ActionProvider supplies a player's decision. Implementations validate
// and re-prompt on bad input; a returned error ends the game.
type ActionProvider interface {
	ChooseAction(ctx context.Context, req ActionRequest) (Action, error)
}

// ActionProviderFunc adapts a function to ActionProvider
type ActionProviderFunc func(ctx context.Context, req ActionRequest) (Action, error)

// ChooseAction implements ActionProvider
func (f ActionProviderFunc) ChooseAction(ctx context.Context, req ActionRequest) (Action, error) {
	return f(ctx, req)
}

// TurnResolver drives one hand through the turn state machine
type TurnResolver struct {
	mode     entities.GameMode
	provider ActionProvider
	logger   *logging.Logger
}

// NewTurnResolver creates a resolver for the given mode
func NewTurnResolver(mode entities.GameMode, provider ActionProvider, logger *logging.Logger) *TurnResolver {
	if logger == nil {
		logger = logging.Default
	}
	return &TurnResolver{
		mode:     mode,
		provider: provider,
		logger:   logger,
	}
}

// Resolve plays the seat's hand until it reaches Blackjack, Stand, Bust or
// DoubleDown. The provider is never asked once the hand is bust or a natural.
func (r *TurnResolver) Resolve(ctx context.Context, round int, seat *Seat, deck *entities.Deck, dealerUp *entities.Card) error {
	hand := seat.Hand
	username := seat.Player.Username

	if hand.IsBlackjack() {
		hand.State = StateBlackjack
		r.logger.Debug("%s has a natural blackjack", username)
		return nil
	}

	for !hand.State.IsTerminal() {
		if hand.IsBust() {
			hand.State = StateBust
			break
		}

		req := ActionRequest{
			Round:        round,
			Mode:         r.mode,
			Username:     username,
			FullName:     seat.Player.FullName(),
			Hand:         hand.Copy(),
			Value:        hand.Value(),
			DealerUpCard: dealerUp,
			Legal:        LegalActions(r.mode, hand),
		}

		action, err := r.provider.ChooseAction(ctx, req)
		if err != nil {
			return types.WrapError(types.ErrInputError, fmt.Sprintf("no action for %s", username), err)
		}
		if !req.Allows(action) {
			return types.Errorf(types.ErrInvalidAction, "%s is not allowed for %s with %d cards", action, username, len(hand.Cards))
		}

		hand.Actions = append(hand.Actions, action)
		if err := r.apply(hand, action, deck); err != nil {
			return err
		}
		r.logger.Debug("%s chose %s, hand is %d (%s)", username, action, hand.Value(), hand.State)
	}

	return nil
}

func (r *TurnResolver) apply(hand *Hand, action Action, deck *entities.Deck) error {
	switch action {
	case ActionHit:
		hand.State = StateHit
		if err := hand.AddCard(deck.Draw()); err != nil {
			return types.WrapError(types.ErrInvalidState, "hit failed", err)
		}
		if hand.State == StateHit {
			hand.State = StateAwaitingAction
		}
	case ActionStand:
		return hand.Stand()
	case ActionDoubleDown:
		if err := hand.AddCard(deck.Draw()); err != nil {
			return types.WrapError(types.ErrInvalidState, "double down failed", err)
		}
		if hand.State != StateBust {
			hand.State = StateDoubleDown
		}
	default:
		return types.Errorf(types.ErrInvalidAction, "unknown action %q", action)
	}
	return nil
}
