package entities

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in canonical deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Spades:   "Spades",
}

var suitCodes = map[Suit]string{
	Hearts:   "H",
	Diamonds: "D",
	Clubs:    "C",
	Spades:   "S",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Rank represents a card rank. Ranks are ordered Two through Ace.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in canonical deck order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

var rankCodes = map[Rank]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(r))
}

// Code returns the one or two character rank code used in card codes
func (r Rank) Code() string {
	if c, ok := rankCodes[r]; ok {
		return c
	}
	return fmt.Sprintf("%d", int(r))
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{
		Suit: suit,
		Rank: rank,
	}
}

// Name returns the display name, e.g. "Jack of Spades"
func (c *Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// String returns the string representation of the card
func (c *Card) String() string {
	return c.Name()
}

// Short returns the compact code for the card, e.g. "10H" or "AS"
func (c *Card) Short() string {
	return c.Rank.Code() + suitCodes[c.Suit]
}

// Value returns the nominal blackjack value. Aces count 11 here; the hand
// evaluator reduces them when needed.
func (c *Card) Value() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

// IsAce reports whether the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// ParseCard parses a compact card code such as "AS", "10h" or "qd"
func ParseCard(code string) (*Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return nil, fmt.Errorf("invalid card: %q", code)
	}

	rankPart, suitPart := code[:len(code)-1], code[len(code)-1:]

	var suit Suit
	for s, c := range suitCodes {
		if c == suitPart {
			suit = s
			break
		}
	}
	if suit == 0 {
		return nil, fmt.Errorf("invalid suit in card: %q", code)
	}

	for _, r := range Ranks {
		if r.Code() == rankPart {
			return NewCard(suit, r), nil
		}
	}
	return nil, fmt.Errorf("invalid rank in card: %q", code)
}

// CardsFromString parses a comma separated list of card codes
func CardsFromString(s string) ([]*Card, error) {
	parts := strings.Split(s, ",")
	cards := make([]*Card, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustCards is like CardsFromString but panics on error
func MustCards(s string) []*Card {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}
	return cards
}
