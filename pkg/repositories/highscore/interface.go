package highscore

import (
	"context"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_highscore

// Repository persists the single best name and score across games
type Repository interface {
	// Load returns the stored record. A missing or malformed record is
	// returned as the empty HighScore, not an error.
	Load(ctx context.Context) (*entities.HighScore, error)

	// Save replaces the stored record
	Save(ctx context.Context, score *entities.HighScore) error

	// Close closes any resources used by the repository
	Close() error
}
