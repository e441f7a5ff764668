package statistics

import "github.com/fadedpez/wildcatblackjack/pkg/entities"

// LuckyRounds is the only game length that awards Lucky Son of a Gun
const LuckyRounds = 5

// Recognition names
const (
	Marathoner     = "Marathoner"
	ShortStop      = "Short Stop"
	LuckySonOfAGun = "Lucky Son of a Gun"
)

// Recognition is an end of game award
type Recognition struct {
	Title     string   `json:"title"`
	Usernames []string `json:"usernames"`
	Value     int      `json:"value"`
	Detail    string   `json:"detail"`
}

// Recognitions computes the end of game awards:
//   - Marathoner: first player to hold the longest single hand
//   - Short Stop: fewest cards drawn overall, first in roster order on ties
//   - Lucky Son of a Gun: every player who never bust, only in a 5 round game
func Recognitions(players []*entities.Player, agg *Aggregates, rounds int) []Recognition {
	out := make([]Recognition, 0, 3)
	if len(players) == 0 {
		return out
	}

	if agg != nil && agg.LongestHandHolder != "" {
		out = append(out, Recognition{
			Title:     Marathoner,
			Usernames: []string{agg.LongestHandHolder},
			Value:     agg.LongestHand,
			Detail:    "most cards in a single hand",
		})
	}

	shortest := players[0]
	for _, p := range players[1:] {
		if p.Stats.TotalCardsDrawn < shortest.Stats.TotalCardsDrawn {
			shortest = p
		}
	}
	out = append(out, Recognition{
		Title:     ShortStop,
		Usernames: []string{shortest.Username},
		Value:     shortest.Stats.TotalCardsDrawn,
		Detail:    "fewest cards drawn",
	})

	if rounds == LuckyRounds {
		lucky := make([]string, 0, len(players))
		for _, p := range players {
			if p.Stats.Busts == 0 {
				lucky = append(lucky, p.Username)
			}
		}
		if len(lucky) > 0 {
			out = append(out, Recognition{
				Title:     LuckySonOfAGun,
				Usernames: lucky,
				Detail:    "no busts in all rounds",
			})
		}
	}

	return out
}
