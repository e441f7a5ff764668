package blackjack

import (
	"errors"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

var (
	ErrHandComplete = errors.New("hand is complete")
	ErrInvalidCard  = errors.New("invalid card")
)

// State is where a hand sits in the turn state machine
type State string

const (
	StateAwaitingAction State = "AWAITING_ACTION"
	StateHit            State = "HIT"
	StateStand          State = "STAND"
	StateDoubleDown     State = "DOUBLE_DOWN"
	StateBust           State = "BUST"
	StateBlackjack      State = "BLACKJACK"
)

// IsTerminal reports whether no further actions are allowed
func (s State) IsTerminal() bool {
	switch s {
	case StateStand, StateDoubleDown, StateBust, StateBlackjack:
		return true
	}
	return false
}

// Hand represents one player's cards for a single round
type Hand struct {
	Cards   []*entities.Card
	State   State
	Actions []Action
}

// NewHand creates a new blackjack hand
func NewHand() *Hand {
	return &Hand{
		Cards:   make([]*entities.Card, 0, 4),
		State:   StateAwaitingAction,
		Actions: make([]Action, 0),
	}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *entities.Card) error {
	if h.State.IsTerminal() {
		return ErrHandComplete
	}

	if card == nil {
		return ErrInvalidCard
	}

	h.Cards = append(h.Cards, card)

	// Auto-bust if score exceeds 21
	if IsBust(h.Cards) {
		h.State = StateBust
	}

	return nil
}

// Stand marks the hand as stood
func (h *Hand) Stand() error {
	if h.State.IsTerminal() {
		return ErrHandComplete
	}
	h.State = StateStand
	return nil
}

// Value returns the best possible score for the hand
func (h *Hand) Value() int {
	return GetBestScore(h.Cards)
}

// IsBlackjack reports a natural blackjack
func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.Cards)
}

// IsBust reports whether the hand is over 21
func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

// IsDoubledDown reports whether the player doubled down on this hand
func (h *Hand) IsDoubledDown() bool {
	for _, a := range h.Actions {
		if a == ActionDoubleDown {
			return true
		}
	}
	return false
}

// Copy returns a snapshot of the hand that shares no slices with h
func (h *Hand) Copy() *Hand {
	return &Hand{
		Cards:   append([]*entities.Card(nil), h.Cards...),
		State:   h.State,
		Actions: append([]Action(nil), h.Actions...),
	}
}
