package highscore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/pkg/db/migrations"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteRepository keeps the record in a single row table
type SQLiteRepository struct {
	db       *sql.DB
	migrator *migrations.Migrator
}

// NewSQLiteRepository opens (or creates) the database and applies migrations
func NewSQLiteRepository(dbPath string, logger *logging.Logger) (*SQLiteRepository, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	migrator := migrations.NewMigrator(db, migrationFS, "migrations", logger)
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db, migrator: migrator}, nil
}

// Load implements Repository
func (r *SQLiteRepository) Load(ctx context.Context) (*entities.HighScore, error) {
	record := &entities.HighScore{}
	query := `SELECT name, score FROM high_score WHERE id = 1`

	err := r.db.QueryRowContext(ctx, query).Scan(&record.Name, &record.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return &entities.HighScore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading high score: %w", err)
	}
	return record, nil
}

// Save implements Repository
func (r *SQLiteRepository) Save(ctx context.Context, score *entities.HighScore) error {
	query := `
		INSERT INTO high_score (id, name, score, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id)
		DO UPDATE SET name = excluded.name, score = excluded.score, updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, score.Name, score.Score); err != nil {
		return fmt.Errorf("error saving high score: %w", err)
	}
	return nil
}

// AppliedMigrations returns the names of the migrations recorded in the
// database
func (r *SQLiteRepository) AppliedMigrations() ([]string, error) {
	applied, err := r.migrator.GetAppliedMigrations()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(applied))
	for name := range applied {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close implements Repository
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
