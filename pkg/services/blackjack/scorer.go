package blackjack

import (
	"fmt"

	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/fadedpez/wildcatblackjack/pkg/services/statistics"
)

// Round point awards
const (
	WinPoints         = 5
	SecondPlacePoints = 3
	ThirdPlacePoints  = 1
	TwentyOneBonus    = 15
)

// Labels shown next to a non-win head-to-head result
const (
	LabelBust = "BUST"
)

// PlayerRoundResult is one player's scored hand
type PlayerRoundResult struct {
	Username    string
	FullName    string
	Cards       []*entities.Card
	Total       int
	Bust        bool
	Blackjack   bool
	DoubledDown bool
	FinalState  State
	Outcome     entities.Outcome
	Label       string
	Rank        int // head-to-head only
	BasePoints  int
	BonusPoints int
	Points      int
}

// Scorer applies a mode's scoring policy and records the side effects on
// players and game aggregates
type Scorer struct {
	mode       entities.GameMode
	aggregates *statistics.Aggregates
}

// NewScorer creates a scorer. A nil aggregates is replaced with a fresh one.
func NewScorer(mode entities.GameMode, aggregates *statistics.Aggregates) *Scorer {
	if aggregates == nil {
		aggregates = statistics.NewAggregates()
	}
	return &Scorer{mode: mode, aggregates: aggregates}
}

// Aggregates returns the game aggregates this scorer feeds
func (s *Scorer) Aggregates() *statistics.Aggregates {
	return s.aggregates
}

// Score evaluates every finished seat, in roster order. dealer is required
// against the house and ignored head-to-head.
func (s *Scorer) Score(seats []*Seat, dealer *Dealer) ([]*PlayerRoundResult, error) {
	var results []*PlayerRoundResult
	switch s.mode {
	case entities.VersusHouse:
		if dealer == nil {
			return nil, types.NewGameError(types.ErrInvalidState, "versus house round has no dealer")
		}
		results = s.scoreVersusHouse(seats, dealer)
	case entities.HeadToHead:
		results = s.scoreHeadToHead(seats)
	default:
		return nil, types.Errorf(types.ErrInvalidArgument, "unknown game mode %d", s.mode)
	}

	for i, r := range results {
		s.apply(seats[i].Player, r)
	}
	return results, nil
}

func (s *Scorer) scoreVersusHouse(seats []*Seat, dealer *Dealer) []*PlayerRoundResult {
	dealerTotal := dealer.Value()
	dealerBust := dealer.IsBust()

	results := make([]*PlayerRoundResult, 0, len(seats))
	for _, seat := range seats {
		r := newResult(seat)

		switch {
		case r.Bust:
			r.Outcome = entities.OutcomeLoss
			r.Label = LabelBust
		case dealerBust || r.Total > dealerTotal:
			r.Outcome = entities.OutcomeWin
			r.BasePoints = WinPoints
		case r.Total == dealerTotal:
			r.Outcome = entities.OutcomePush
		default:
			r.Outcome = entities.OutcomeLoss
		}
		if r.Label == "" {
			r.Label = r.Outcome.String()
		}

		s.finish(r)
		results = append(results, r)
	}
	return results
}

func (s *Scorer) scoreHeadToHead(seats []*Seat) []*PlayerRoundResult {
	results := make([]*PlayerRoundResult, 0, len(seats))
	for _, seat := range seats {
		results = append(results, newResult(seat))
	}

	for _, r := range results {
		if r.Bust {
			r.Rank = len(results)
			r.Outcome = entities.OutcomeLoss
			r.Label = LabelBust
			s.finish(r)
			continue
		}

		r.Rank = 1
		for _, other := range results {
			if !other.Bust && other.Total > r.Total {
				r.Rank++
			}
		}

		switch r.Rank {
		case 1:
			r.Outcome = entities.OutcomeWin
			r.Label = entities.OutcomeWin.String()
			r.BasePoints = WinPoints
		case 2:
			r.BasePoints = SecondPlacePoints
		case 3:
			r.BasePoints = ThirdPlacePoints
		}
		if r.Rank > 1 {
			r.Outcome = entities.OutcomeLoss
			r.Label = fmt.Sprintf("PLACE %d", r.Rank)
		}
		s.finish(r)
	}
	return results
}

func newResult(seat *Seat) *PlayerRoundResult {
	hand := seat.Hand
	return &PlayerRoundResult{
		Username:    seat.Player.Username,
		FullName:    seat.Player.FullName(),
		Cards:       append([]*entities.Card(nil), hand.Cards...),
		Total:       hand.Value(),
		Bust:        hand.IsBust(),
		Blackjack:   hand.IsBlackjack(),
		DoubledDown: hand.IsDoubledDown(),
		FinalState:  hand.State,
	}
}

// finish adds the 21 bonus and totals the round points
func (s *Scorer) finish(r *PlayerRoundResult) {
	if !r.Bust && r.Total == BlackjackScore {
		r.BonusPoints = TwentyOneBonus
	}
	r.Points = r.BasePoints + r.BonusPoints
}

// apply records the result on the player and in the game aggregates
func (s *Scorer) apply(player *entities.Player, r *PlayerRoundResult) {
	stats := &player.Stats
	stats.HandsPlayed++
	stats.RecordOutcome(r.Outcome)
	if r.Blackjack {
		stats.Blackjacks++
	}
	if r.Bust {
		stats.Busts++
	} else if r.Total == BlackjackScore {
		stats.HandsWith21++
	}
	if r.DoubledDown {
		stats.DoubleDowns++
	}
	stats.RecordCards(len(r.Cards))
	player.Points += r.Points

	s.aggregates.Record(statistics.HandRecord{
		Username: r.Username,
		Total:    r.Total,
		Bust:     r.Bust,
		Points:   r.Points,
		Cards:    len(r.Cards),
	})
}
