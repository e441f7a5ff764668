package statistics

import "sort"

// TotalCount is one row of the hand total distribution
type TotalCount struct {
	Total int `json:"total"`
	Count int `json:"count"`
}

// Aggregates are game scoped figures accumulated as each hand is scored
type Aggregates struct {
	totals map[int]int

	TotalBusts      int    `json:"total_busts"`
	HighestTotal    int    `json:"highest_total"`
	BestRoundPoints int    `json:"best_round_points"`
	BestRoundEarner string `json:"best_round_earner"`

	// LongestHand only moves on a strictly larger hand, so the first
	// player to reach the maximum keeps it.
	LongestHand       int    `json:"longest_hand"`
	LongestHandHolder string `json:"longest_hand_holder"`
}

// NewAggregates creates an empty set of aggregates
func NewAggregates() *Aggregates {
	return &Aggregates{totals: make(map[int]int)}
}

// HandRecord is one scored hand as seen by the aggregates
type HandRecord struct {
	Username string
	Total    int
	Bust     bool
	Points   int
	Cards    int
}

// Record folds one player's scored hand into the aggregates
func (a *Aggregates) Record(h HandRecord) {
	if a.totals == nil {
		a.totals = make(map[int]int)
	}

	if h.Bust {
		a.TotalBusts++
	} else {
		a.totals[h.Total]++
		if h.Total > a.HighestTotal {
			a.HighestTotal = h.Total
		}
	}

	if h.Points > a.BestRoundPoints {
		a.BestRoundPoints = h.Points
		a.BestRoundEarner = h.Username
	}

	if h.Cards > a.LongestHand {
		a.LongestHand = h.Cards
		a.LongestHandHolder = h.Username
	}
}

// Distribution returns the non-bust totals seen, lowest first
func (a *Aggregates) Distribution() []TotalCount {
	out := make([]TotalCount, 0, len(a.totals))
	for total, count := range a.totals {
		out = append(out, TotalCount{Total: total, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Total < out[j].Total
	})
	return out
}

// Count returns how many non-bust hands finished on total
func (a *Aggregates) Count(total int) int {
	return a.totals[total]
}
