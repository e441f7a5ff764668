package blackjack

import (
	"testing"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type HandTestSuite struct {
	suite.Suite
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

func (s *HandTestSuite) TestAddCardAutoBust() {
	// Setup
	hand := NewHand()

	// Execute
	for _, c := range entities.MustCards("KH,QD,5S") {
		s.Require().NoError(hand.AddCard(c))
	}

	// Assert
	s.Equal(StateBust, hand.State, "Hand over 21 should bust")
	s.ErrorIs(hand.AddCard(entities.NewCard(entities.Hearts, entities.Two)), ErrHandComplete, "Bust hand should take no more cards")
}

func (s *HandTestSuite) TestAddNilCard() {
	s.ErrorIs(NewHand().AddCard(nil), ErrInvalidCard)
}

func (s *HandTestSuite) TestStand() {
	hand := NewHand()
	s.NoError(hand.Stand())
	s.Equal(StateStand, hand.State)
	s.ErrorIs(hand.Stand(), ErrHandComplete, "Standing twice should fail")
}

func (s *HandTestSuite) TestCopyIsIndependent() {
	hand := NewHand()
	_ = hand.AddCard(entities.NewCard(entities.Hearts, entities.King))

	snapshot := hand.Copy()
	_ = hand.AddCard(entities.NewCard(entities.Hearts, entities.Two))

	s.Len(snapshot.Cards, 1, "Copy should not see later cards")
}

func (s *HandTestSuite) TestTerminalStates() {
	testCases := []struct {
		state    State
		terminal bool
	}{
		{StateAwaitingAction, false},
		{StateHit, false},
		{StateStand, true},
		{StateDoubleDown, true},
		{StateBust, true},
		{StateBlackjack, true},
	}

	for _, tc := range testCases {
		s.Run(string(tc.state), func() {
			s.Equal(tc.terminal, tc.state.IsTerminal())
		})
	}
}
