package entities

import "strings"

// Player is a seated participant. Identity is fixed for a session, points
// and statistics reset at the start of every game.
type Player struct {
	FirstName string
	LastName  string
	Username  string
	Points    int
	Stats     PlayerStatistics
}

// NewPlayer creates a new player with trimmed identity fields
func NewPlayer(firstName, lastName, username string) *Player {
	return &Player{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Username:  strings.TrimSpace(username),
	}
}

// FullName returns "First Last"
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ResetForNewGame clears points and statistics
func (p *Player) ResetForNewGame() {
	p.Points = 0
	p.Stats = PlayerStatistics{}
}
