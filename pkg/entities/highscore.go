package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// HighScoreSeparator splits the name from the score in the stored record
const HighScoreSeparator = "|"

// HighScore is the single best winning score ever recorded
type HighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// String returns the stored layout "<name>|<score>"
func (h *HighScore) String() string {
	return fmt.Sprintf("%s%s%d", h.Name, HighScoreSeparator, h.Score)
}

// IsZero reports whether no record has been set
func (h *HighScore) IsZero() bool {
	return h == nil || (h.Name == "" && h.Score == 0)
}

// Beats reports whether score strictly exceeds the record
func (h *HighScore) Beats(score int) bool {
	if h == nil {
		return score > 0
	}
	return score > h.Score
}

// ParseHighScore parses "<name>|<score>". Anything malformed yields the
// empty record instead of an error.
func ParseHighScore(raw string) *HighScore {
	raw = strings.TrimSpace(raw)
	name, scoreText, ok := strings.Cut(raw, HighScoreSeparator)
	if !ok {
		return &HighScore{}
	}
	score, err := strconv.Atoi(strings.TrimSpace(scoreText))
	if err != nil {
		return &HighScore{}
	}
	return &HighScore{Name: strings.TrimSpace(name), Score: score}
}
