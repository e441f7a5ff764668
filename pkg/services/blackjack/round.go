package blackjack

import (
	"context"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/fadedpez/wildcatblackjack/pkg/services/statistics"
)

// cardsPerHand is the size of the opening deal
const cardsPerHand = 2

// RoundResult is everything that happened in one round
type RoundResult struct {
	Number      int
	Mode        entities.GameMode
	Players     []*PlayerRoundResult
	DealerCards []*entities.Card // empty head-to-head
	DealerTotal int
	DealerBust  bool
	DealerState State
}

// RoundRunner plays rounds for one game. Every round gets a fresh deck
// shuffled from the shared rng.
type RoundRunner struct {
	mode   entities.GameMode
	rng    entities.RandSource
	turns  *TurnResolver
	scorer *Scorer
	logger *logging.Logger
}

// NewRoundRunner wires a turn resolver and scorer for mode
func NewRoundRunner(mode entities.GameMode, rng entities.RandSource, provider ActionProvider, aggregates *statistics.Aggregates, logger *logging.Logger) *RoundRunner {
	if logger == nil {
		logger = logging.Default
	}
	return &RoundRunner{
		mode:   mode,
		rng:    rng,
		turns:  NewTurnResolver(mode, provider, logger),
		scorer: NewScorer(mode, aggregates),
		logger: logger,
	}
}

// Aggregates returns the game aggregates the runner's scorer feeds
func (r *RoundRunner) Aggregates() *statistics.Aggregates {
	return r.scorer.Aggregates()
}

// Play deals, resolves each seat in roster order, plays the dealer when
// against the house, then scores the round
func (r *RoundRunner) Play(ctx context.Context, number int, players []*entities.Player) (*RoundResult, error) {
	deck := entities.NewDeck(r.rng)
	deck.Shuffle()

	seats := make([]*Seat, 0, len(players))
	for _, p := range players {
		seats = append(seats, NewSeat(p))
	}

	var dealer *Dealer
	if r.mode == entities.VersusHouse {
		dealer = NewDealer()
	}

	r.deal(deck, seats, dealer)

	var upCard *entities.Card
	if dealer != nil {
		upCard = dealer.UpCard()
	}

	for _, seat := range seats {
		if err := r.turns.Resolve(ctx, number, seat, deck, upCard); err != nil {
			return nil, err
		}
	}

	if dealer != nil {
		dealer.Play(deck)
		r.logger.Debug("round %d: dealer finished on %d (%s)", number, dealer.Value(), dealer.Hand.State)
	}

	scored, err := r.scorer.Score(seats, dealer)
	if err != nil {
		return nil, err
	}

	result := &RoundResult{
		Number:  number,
		Mode:    r.mode,
		Players: scored,
	}
	if dealer != nil {
		result.DealerCards = append([]*entities.Card(nil), dealer.Hand.Cards...)
		result.DealerTotal = dealer.Value()
		result.DealerBust = dealer.IsBust()
		result.DealerState = dealer.Hand.State
	}
	return result, nil
}

// deal hands out two cards round-robin, dealer last in each pass
func (r *RoundRunner) deal(deck *entities.Deck, seats []*Seat, dealer *Dealer) {
	for i := 0; i < cardsPerHand; i++ {
		for _, seat := range seats {
			_ = seat.Hand.AddCard(deck.Draw())
		}
		if dealer != nil {
			_ = dealer.Hand.AddCard(deck.Draw())
		}
	}
}
