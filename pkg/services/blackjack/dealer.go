package blackjack

import "github.com/fadedpez/wildcatblackjack/pkg/entities"

// DealerName is the dealer's fixed display identity
const DealerName = "Dealer"

// Dealer is the house hand in versus-house games. It never scores points.
type Dealer struct {
	Hand *Hand
}

// NewDealer creates a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{Hand: NewHand()}
}

// Name returns the dealer's display name
func (d *Dealer) Name() string {
	return DealerName
}

// UpCard returns the face up card, or nil before the deal
func (d *Dealer) UpCard() *entities.Card {
	if len(d.Hand.Cards) == 0 {
		return nil
	}
	return d.Hand.Cards[0]
}

// Play reveals the hole card and draws until the hand reaches 17 or more.
// Dealer must hit on 16 and below, stand on 17 and above.
func (d *Dealer) Play(deck *entities.Deck) {
	for d.Hand.Value() < DealerStandsOn {
		// AddCard only fails on a terminal hand, and a hand under 17 is not bust
		_ = d.Hand.AddCard(deck.Draw())
	}

	switch {
	case d.Hand.IsBust():
		d.Hand.State = StateBust
	case d.Hand.IsBlackjack():
		d.Hand.State = StateBlackjack
	default:
		d.Hand.State = StateStand
	}
}

// Value returns the dealer's current total
func (d *Dealer) Value() int {
	return d.Hand.Value()
}

// IsBust reports whether the dealer went over 21
func (d *Dealer) IsBust() bool {
	return d.Hand.IsBust()
}
