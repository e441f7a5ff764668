package entities

import (
	"testing"

	"github.com/fadedpez/wildcatblackjack/internal/randutil"
	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeckIsCanonical() {
	// Execute
	deck := NewDeck(randutil.New(1))

	// Assert
	s.Equal(DeckSize, len(deck.Cards), "Deck should hold 52 cards")
	s.Equal(NewCard(Hearts, Two), deck.Cards[0], "First card should be the two of hearts")
	s.Equal(NewCard(Spades, Ace), deck.Cards[DeckSize-1], "Last card should be the ace of spades")

	seen := make(map[string]bool)
	for _, card := range deck.Cards {
		s.False(seen[card.Short()], "Card %s should appear once", card.Short())
		seen[card.Short()] = true
	}
}

func (s *DeckTestSuite) TestShuffleKeepsCards() {
	// Setup
	deck := NewDeck(randutil.New(99))

	// Execute
	deck.Shuffle()

	// Assert
	s.Equal(DeckSize, len(deck.Cards), "Shuffle should not drop cards")
	s.NotEqual(NewDeck(randutil.New(99)).Cards, deck.Cards, "Shuffled order should differ from canonical order")
}

func (s *DeckTestSuite) TestShuffleIsDeterministicPerSeed() {
	// Setup
	a := NewDeck(randutil.New(5))
	b := NewDeck(randutil.New(5))

	// Execute
	a.Shuffle()
	b.Shuffle()

	// Assert
	s.Equal(a.Cards, b.Cards, "Same seed should give the same order")
}

func (s *DeckTestSuite) TestDrawNeverFails() {
	// Setup
	deck := NewDeck(randutil.New(3))
	deck.Shuffle()

	// Execute
	for i := 0; i < DeckSize; i++ {
		s.NotNil(deck.Draw(), "Draw %d should return a card", i+1)
	}
	s.Equal(0, len(deck.Cards), "Deck should be empty after 52 draws")
	card := deck.Draw()

	// Assert
	s.NotNil(card, "53rd draw should come from a fresh deck")
	s.Equal(DeckSize-1, len(deck.Cards), "Fresh deck should have 51 cards left")
}

func (s *DeckTestSuite) TestResetRestoresDeck() {
	// Setup
	deck := NewDeck(randutil.New(8))
	deck.Draw()
	deck.Draw()

	// Execute
	deck.Reset()

	// Assert
	s.Equal(DeckSize, len(deck.Cards))
	s.Equal(NewCard(Hearts, Two), deck.Cards[0])
}

func (s *DeckTestSuite) TestNilRandFallsBack() {
	deck := NewDeck(nil)
	s.NotPanics(func() { deck.Shuffle() }, "Nil rng should fall back to a default source")
}
