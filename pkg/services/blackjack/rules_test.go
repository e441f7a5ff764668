package blackjack

import (
	"testing"

	"github.com/fadedpez/wildcatblackjack/internal/randutil"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) TestGetBestScore() {
	testCases := []struct {
		name     string
		cards    string
		expected int
	}{
		{name: "Empty hand", cards: "", expected: 0},
		{name: "Number cards", cards: "2H,9C", expected: 11},
		{name: "Face cards", cards: "KH,QD", expected: 20},
		{name: "Soft 17", cards: "AH,6C", expected: 17},
		{name: "Ace reduced", cards: "AH,6C,9D", expected: 16},
		{name: "Two aces", cards: "AH,AD", expected: 12},
		{name: "Two aces and nine", cards: "AH,AD,9S", expected: 21},
		{name: "Four aces", cards: "AH,AD,AC,AS", expected: 14},
		{name: "Bust with no aces", cards: "KH,QD,5S", expected: 25},
		{name: "Bust after reducing every ace", cards: "AH,KD,QS,AC", expected: 22},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetBestScore(entities.MustCards(tc.cards)), "Hand value should match")
		})
	}
}

func (s *RulesTestSuite) TestIsBlackjack() {
	testCases := []struct {
		name     string
		cards    string
		expected bool
	}{
		{name: "Ace and king", cards: "AS,KH", expected: true},
		{name: "Ten and ace", cards: "10D,AC", expected: true},
		{name: "Three card 21", cards: "7H,7D,7C", expected: false},
		{name: "Twenty", cards: "KH,QH", expected: false},
		{name: "Single ace", cards: "AS", expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsBlackjack(entities.MustCards(tc.cards)))
		})
	}
}

func (s *RulesTestSuite) TestIsBust() {
	s.True(IsBust(entities.MustCards("KH,QD,2S")))
	s.False(IsBust(entities.MustCards("KH,AD,QS")), "Ace should drop to 1 to avoid the bust")
}

func (s *RulesTestSuite) TestValueProperties() {
	rng := randutil.New(2024)

	for trial := 0; trial < 500; trial++ {
		deck := entities.NewDeck(rng)
		deck.Shuffle()

		size := 2 + rng.IntN(6)
		hand := make([]*entities.Card, 0, size+1)
		for i := 0; i < size; i++ {
			hand = append(hand, deck.Draw())
		}

		floor := 0
		for _, c := range hand {
			if c.IsAce() {
				floor++
			} else {
				floor += c.Value()
			}
		}
		value := GetBestScore(hand)
		s.GreaterOrEqual(value, floor, "Value should never drop below the all-aces-as-one sum")

		next := deck.Draw()
		if next.IsAce() {
			continue
		}
		grown := GetBestScore(append(hand, next))
		if value == floor {
			s.GreaterOrEqual(grown, value, "Adding a non-ace to a hard hand should never lower the value")
			continue
		}
		drop := value + next.Value() - grown
		s.GreaterOrEqual(drop, 0, "A soft hand can only lose value by reducing aces")
		s.Zero(drop%aceReduction, "A soft hand should only lose whole ace reductions")
	}
}

func (s *RulesTestSuite) TestSoftHandCanDropOnNonAce() {
	testCases := []struct {
		name     string
		before   string
		after    string
		expected int
	}{
		{name: "Soft 18 plus seven", before: "AH,7C", after: "AH,7C,7D", expected: 15},
		{name: "Soft 21 plus three", before: "AH,KD", after: "AH,KD,3S", expected: 14},
		{name: "Hard 12 plus five", before: "KH,2C", after: "KH,2C,5D", expected: 17},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := GetBestScore(entities.MustCards(tc.before))
			after := GetBestScore(entities.MustCards(tc.after))
			s.Equal(tc.expected, after, "Value after the draw should match")
			s.Zero((before+entities.MustCards(tc.after)[2].Value()-after)%aceReduction, "Any drop should be a whole ace reduction")
		})
	}
}
