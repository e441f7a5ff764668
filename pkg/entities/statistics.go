package entities

// PlayerStatistics holds a player's counters for the current game
type PlayerStatistics struct {
	HandsPlayed       int
	Wins              int
	Losses            int
	Pushes            int
	Blackjacks        int
	Busts             int
	HandsWith21       int
	DoubleDowns       int
	TotalCardsDrawn   int
	MaxCardsInOneHand int
	CurrentWinStreak  int
	BestWinStreak     int
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.HandsPlayed) * 100.0
}

// BustRate calculates the share of hands that went bust as a percentage
func (s *PlayerStatistics) BustRate() float64 {
	if s.HandsPlayed == 0 {
		return 0.0
	}
	return float64(s.Busts) / float64(s.HandsPlayed) * 100.0
}

// RecordOutcome bumps exactly one of Wins, Losses or Pushes and updates the
// win streak
func (s *PlayerStatistics) RecordOutcome(outcome Outcome) {
	switch outcome {
	case OutcomeWin:
		s.Wins++
		s.CurrentWinStreak++
		if s.CurrentWinStreak > s.BestWinStreak {
			s.BestWinStreak = s.CurrentWinStreak
		}
		return
	case OutcomePush:
		s.Pushes++
	default:
		s.Losses++
	}
	s.CurrentWinStreak = 0
}

// RecordCards adds a finished hand's size to the card counters
func (s *PlayerStatistics) RecordCards(n int) {
	s.TotalCardsDrawn += n
	if n > s.MaxCardsInOneHand {
		s.MaxCardsInOneHand = n
	}
}
