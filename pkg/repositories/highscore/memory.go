package highscore

import (
	"context"
	"sync"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

// MemoryRepository keeps the record for the life of the process
type MemoryRepository struct {
	mu     sync.RWMutex
	record entities.HighScore
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load implements Repository
func (r *MemoryRepository) Load(ctx context.Context) (*entities.HighScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record := r.record
	return &record, nil
}

// Save implements Repository
func (r *MemoryRepository) Save(ctx context.Context, score *entities.HighScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record = *score
	return nil
}

// Close implements Repository
func (r *MemoryRepository) Close() error {
	return nil
}
