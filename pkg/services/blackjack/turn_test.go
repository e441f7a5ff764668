package blackjack

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TurnTestSuite struct {
	suite.Suite
	provider *mockActionProvider
	ctx      context.Context
}

func TestTurnSuite(t *testing.T) {
	suite.Run(t, new(TurnTestSuite))
}

func (s *TurnTestSuite) SetupTest() {
	s.provider = &mockActionProvider{}
	s.provider.Test(s.T())
	s.ctx = context.Background()
}

func (s *TurnTestSuite) TearDownTest() {
	s.provider.AssertExpectations(s.T())
}

func (s *TurnTestSuite) resolver(mode entities.GameMode) *TurnResolver {
	return NewTurnResolver(mode, s.provider, logging.Discard())
}

func (s *TurnTestSuite) TestNaturalBlackjackSkipsProvider() {
	// Setup
	seat := seatWith("ann", "AS,KH")

	// Execute
	err := s.resolver(entities.VersusHouse).Resolve(s.ctx, 1, seat, deckOf("2C"), nil)

	// Assert
	s.NoError(err)
	s.Equal(StateBlackjack, seat.Hand.State)
	s.provider.AssertNotCalled(s.T(), "ChooseAction", mock.Anything, mock.Anything)
}

func (s *TurnTestSuite) TestHitThenStand() {
	// Setup
	seat := seatWith("ann", "5H,6H")
	dealerUp := entities.NewCard(entities.Clubs, entities.Seven)
	s.provider.On("ChooseAction", mock.Anything, mock.MatchedBy(func(req ActionRequest) bool {
		return req.Value == 11 && req.DealerUpCard == dealerUp && req.Round == 2
	})).Return(ActionHit, nil).Once()
	s.provider.On("ChooseAction", mock.Anything, mock.MatchedBy(func(req ActionRequest) bool {
		return req.Value == 20 && len(req.Hand.Cards) == 3
	})).Return(ActionStand, nil).Once()

	// Execute
	err := s.resolver(entities.VersusHouse).Resolve(s.ctx, 2, seat, deckOf("9C"), dealerUp)

	// Assert
	s.NoError(err)
	s.Equal(StateStand, seat.Hand.State)
	s.Equal(20, seat.Hand.Value())
	s.Equal([]Action{ActionHit, ActionStand}, seat.Hand.Actions)
}

func (s *TurnTestSuite) TestHitToBustStopsAsking() {
	// Setup
	seat := seatWith("ann", "KH,6H")
	s.provider.On("ChooseAction", mock.Anything, mock.Anything).Return(ActionHit, nil).Once()

	// Execute
	err := s.resolver(entities.HeadToHead).Resolve(s.ctx, 1, seat, deckOf("QC"), nil)

	// Assert
	s.NoError(err)
	s.Equal(StateBust, seat.Hand.State)
	s.Equal(26, seat.Hand.Value())
}

func (s *TurnTestSuite) TestHitToTwentyOneKeepsAsking() {
	// Setup
	seat := seatWith("ann", "5H,6H")
	s.provider.On("ChooseAction", mock.Anything, mock.Anything).Return(ActionHit, nil).Once()
	s.provider.On("ChooseAction", mock.Anything, mock.MatchedBy(func(req ActionRequest) bool {
		return req.Value == 21
	})).Return(ActionStand, nil).Once()

	// Execute
	err := s.resolver(entities.HeadToHead).Resolve(s.ctx, 1, seat, deckOf("KD"), nil)

	// Assert
	s.NoError(err)
	s.Equal(StateStand, seat.Hand.State)
}

func (s *TurnTestSuite) TestDoubleDown() {
	testCases := []struct {
		name      string
		hand      string
		deck      string
		wantState State
		wantValue int
	}{
		{name: "Double to 21", hand: "5H,6H", deck: "KD", wantState: StateDoubleDown, wantValue: 21},
		{name: "Double to a low total", hand: "2H,3H", deck: "4D", wantState: StateDoubleDown, wantValue: 9},
		{name: "Double to bust", hand: "9H,7H", deck: "KD", wantState: StateBust, wantValue: 26},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			provider := &mockActionProvider{}
			provider.On("ChooseAction", mock.Anything, mock.MatchedBy(func(req ActionRequest) bool {
				return req.Allows(ActionDoubleDown)
			})).Return(ActionDoubleDown, nil).Once()
			seat := seatWith("ann", tc.hand)

			// Execute
			err := NewTurnResolver(entities.VersusHouse, provider, logging.Discard()).Resolve(s.ctx, 1, seat, deckOf(tc.deck), nil)

			// Assert
			s.NoError(err)
			s.Equal(tc.wantState, seat.Hand.State)
			s.Equal(tc.wantValue, seat.Hand.Value())
			s.Len(seat.Hand.Cards, 3, "Double down should draw exactly one card")
			s.True(seat.Hand.IsDoubledDown())
			provider.AssertExpectations(s.T())
		})
	}
}

func (s *TurnTestSuite) TestLegalActions() {
	testCases := []struct {
		name     string
		mode     entities.GameMode
		hand     string
		expected []Action
	}{
		{name: "House with two cards", mode: entities.VersusHouse, hand: "5H,6H", expected: []Action{ActionHit, ActionStand, ActionDoubleDown}},
		{name: "House with three cards", mode: entities.VersusHouse, hand: "2H,3H,4H", expected: []Action{ActionHit, ActionStand}},
		{name: "Head to head with two cards", mode: entities.HeadToHead, hand: "5H,6H", expected: []Action{ActionHit, ActionStand}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, LegalActions(tc.mode, seatWith("ann", tc.hand).Hand))
		})
	}
}

func (s *TurnTestSuite) TestIllegalDoubleDownHeadToHead() {
	// Setup
	seat := seatWith("ann", "5H,6H")
	s.provider.On("ChooseAction", mock.Anything, mock.Anything).Return(ActionDoubleDown, nil).Once()

	// Execute
	err := s.resolver(entities.HeadToHead).Resolve(s.ctx, 1, seat, deckOf("KD"), nil)

	// Assert
	s.True(types.IsGameError(err, types.ErrInvalidAction), "Double down head to head should be rejected")
	s.Len(seat.Hand.Cards, 2, "Rejected action should not draw")
}

func (s *TurnTestSuite) TestIllegalDoubleDownAfterHit() {
	// Setup
	seat := seatWith("ann", "2H,3H")
	s.provider.On("ChooseAction", mock.Anything, mock.Anything).Return(ActionHit, nil).Once()
	s.provider.On("ChooseAction", mock.Anything, mock.MatchedBy(func(req ActionRequest) bool {
		return !req.Allows(ActionDoubleDown)
	})).Return(ActionDoubleDown, nil).Once()

	// Execute
	err := s.resolver(entities.VersusHouse).Resolve(s.ctx, 1, seat, deckOf("4H,5H"), nil)

	// Assert
	s.True(types.IsGameError(err, types.ErrInvalidAction))
	s.Len(seat.Hand.Cards, 3)
}

func (s *TurnTestSuite) TestProviderError() {
	// Setup
	seat := seatWith("ann", "5H,6H")
	cause := errors.New("stdin closed")
	s.provider.On("ChooseAction", mock.Anything, mock.Anything).Return(Action(""), cause).Once()

	// Execute
	err := s.resolver(entities.VersusHouse).Resolve(s.ctx, 1, seat, deckOf("KD"), nil)

	// Assert
	s.True(types.IsGameError(err, types.ErrInputError))
	s.ErrorIs(err, cause, "Provider error should be wrapped")
}

func (s *TurnTestSuite) TestParseAction() {
	testCases := []struct {
		input    string
		expected Action
		wantErr  bool
	}{
		{"h", ActionHit, false},
		{" HIT ", ActionHit, false},
		{"s", ActionStand, false},
		{"stand", ActionStand, false},
		{"d", ActionDoubleDown, false},
		{"double down", ActionDoubleDown, false},
		{"split", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			action, err := ParseAction(tc.input)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.NoError(err)
			s.Equal(tc.expected, action)
		})
	}
}
