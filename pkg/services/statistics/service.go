package statistics

import (
	"sort"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

// PlayerRank represents a player's standing at the end of a game
type PlayerRank struct {
	Username    string                    `json:"username"`
	FullName    string                    `json:"full_name"`
	Points      int                       `json:"points"`
	Stats       entities.PlayerStatistics `json:"stats"`
	Rank        int                       `json:"rank"`
	WinRate     float64                   `json:"win_rate"`
	IsTopWinner bool                      `json:"is_top_winner"`
	IsTopPlayer bool                      `json:"is_top_player"`
}

// BuildLeaderboard ranks players by points, highest first. Players on equal
// points share a rank and keep roster order.
func BuildLeaderboard(players []*entities.Player) []*PlayerRank {
	ranks := make([]*PlayerRank, 0, len(players))
	for _, p := range players {
		ranks = append(ranks, &PlayerRank{
			Username: p.Username,
			FullName: p.FullName(),
			Points:   p.Points,
			Stats:    p.Stats,
			WinRate:  p.Stats.WinRate(),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Points > ranks[j].Points
	})

	if len(ranks) == 0 {
		return ranks
	}

	// Assign ranks
	for i := range ranks {
		if i > 0 && ranks[i].Points == ranks[i-1].Points {
			ranks[i].Rank = ranks[i-1].Rank
		} else {
			ranks[i].Rank = i + 1
		}
		ranks[i].IsTopWinner = ranks[i].Rank == 1
	}

	// Top player is the one with the most wins, first in the table on ties
	mostWinsIdx := 0
	for i := 1; i < len(ranks); i++ {
		if ranks[i].Stats.Wins > ranks[mostWinsIdx].Stats.Wins {
			mostWinsIdx = i
		}
	}
	ranks[mostWinsIdx].IsTopPlayer = true

	return ranks
}

// Winners returns every player tied at the highest points, in roster order,
// and that score
func Winners(players []*entities.Player) ([]*entities.Player, int) {
	if len(players) == 0 {
		return nil, 0
	}

	best := players[0].Points
	for _, p := range players[1:] {
		if p.Points > best {
			best = p.Points
		}
	}

	winners := make([]*entities.Player, 0, 1)
	for _, p := range players {
		if p.Points == best {
			winners = append(winners, p)
		}
	}
	return winners, best
}
