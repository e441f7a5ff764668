package blackjack

import (
	"context"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/stretchr/testify/mock"
)

// noShuffle makes Fisher-Yates swap every card with itself
type noShuffle struct{}

func (noShuffle) IntN(n int) int { return n - 1 }

// deckOf returns a deck that deals exactly the given cards first
func deckOf(cards string) *entities.Deck {
	deck := entities.NewDeck(noShuffle{})
	deck.Cards = entities.MustCards(cards)
	return deck
}

func seatWith(username, cards string) *Seat {
	seat := NewSeat(entities.NewPlayer(username, "Player", username))
	for _, c := range entities.MustCards(cards) {
		_ = seat.Hand.AddCard(c)
	}
	return seat
}

// mockActionProvider is a mock implementation of ActionProvider
type mockActionProvider struct {
	mock.Mock
}

// ChooseAction implements ActionProvider
func (m *mockActionProvider) ChooseAction(ctx context.Context, req ActionRequest) (Action, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(Action), args.Error(1)
}

// scriptedProvider replays actions per username, standing once a script runs out
type scriptedProvider struct {
	scripts  map[string][]Action
	requests []ActionRequest
}

func (p *scriptedProvider) ChooseAction(_ context.Context, req ActionRequest) (Action, error) {
	p.requests = append(p.requests, req)
	script := p.scripts[req.Username]
	if len(script) == 0 {
		return ActionStand, nil
	}
	p.scripts[req.Username] = script[1:]
	return script[0], nil
}

func standAll() ActionProvider {
	return ActionProviderFunc(func(context.Context, ActionRequest) (Action, error) {
		return ActionStand, nil
	})
}
