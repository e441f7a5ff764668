package entities

import "github.com/fadedpez/wildcatblackjack/internal/randutil"

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// RandSource is the randomness a deck needs to shuffle
type RandSource interface {
	IntN(n int) int
}

type Deck struct {
	Cards []*Card
	rng   RandSource
}

// NewDeck creates a new deck of 52 cards in canonical order. A nil rng
// falls back to a time seeded source.
func NewDeck(rng RandSource) *Deck {
	if rng == nil {
		rng = randutil.NewTimeSeeded()
	}
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset restores all 52 cards in canonical order
func (d *Deck) Reset() {
	cards := make([]*Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	d.Cards = cards
}

// Shuffle permutes the remaining cards in place with Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw removes and returns the top card from the deck. An empty deck is
// reset and reshuffled first, so Draw always returns a card.
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		d.Reset()
		d.Shuffle()
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card
}
