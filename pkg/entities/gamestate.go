package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// GameMode selects how rounds are scored. It is fixed for a whole game.
type GameMode int

const (
	// HeadToHead ranks players against each other
	HeadToHead GameMode = iota + 1
	// VersusHouse plays every player against the dealer
	VersusHouse
)

func (m GameMode) String() string {
	switch m {
	case HeadToHead:
		return "Head-to-Head"
	case VersusHouse:
		return "Versus House"
	default:
		return fmt.Sprintf("GameMode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode
func (m GameMode) Valid() bool {
	return m == HeadToHead || m == VersusHouse
}

// ParseGameMode parses a menu choice ("1", "2") or a mode name
func ParseGameMode(s string) (GameMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "head-to-head", "headtohead", "h2h":
		return HeadToHead, nil
	case "versus-house", "versushouse", "house", "vh":
		return VersusHouse, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid game mode: %q", s)
	}
	mode := GameMode(n)
	if !mode.Valid() {
		return 0, fmt.Errorf("invalid game mode: %d", n)
	}
	return mode, nil
}

// Outcome represents how a player's round ended
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomePush Outcome = "PUSH"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsWin returns true if this outcome represents a win
func (o Outcome) IsWin() bool {
	return o == OutcomeWin
}
