package blackjack

import (
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

const (
	BlackjackScore = 21 // Best possible hand
	DealerStandsOn = 17 // Dealer draws below this total
	aceReduction   = 10 // Difference between an ace counted as 11 and as 1
)

// GetCardValue returns the nominal value of a card, aces as 11
func GetCardValue(card *entities.Card) int {
	return card.Value()
}

// IsAce reports whether the card is an ace
func IsAce(card *entities.Card) bool {
	return card.IsAce()
}

// GetBestScore counts every ace as 11, then drops aces to 1 one at a time
// while the hand is over 21
func GetBestScore(cards []*entities.Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		if IsAce(card) {
			aces++
		}
		score += GetCardValue(card)
	}

	for score > BlackjackScore && aces > 0 {
		score -= aceReduction
		aces--
	}

	return score
}

// IsBlackjack reports a natural: exactly two cards totalling 21
func IsBlackjack(cards []*entities.Card) bool {
	return len(cards) == 2 && GetBestScore(cards) == BlackjackScore
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []*entities.Card) bool {
	return GetBestScore(cards) > BlackjackScore
}
