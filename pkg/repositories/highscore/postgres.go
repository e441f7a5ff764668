package highscore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

//go:embed migrations/postgres/*.sql
var postgresMigrationFS embed.FS

// PostgresRepository keeps the record in a single row table
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository connects to dsn and runs the schema migrations
func NewPostgresRepository(ctx context.Context, dsn string, logger *logging.Logger) (*PostgresRepository, error) {
	if logger == nil {
		logger = logging.Default
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := migratePostgres(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &PostgresRepository{db: db}, nil
}

func migratePostgres(db *sql.DB, logger *logging.Logger) error {
	source, err := iofs.New(postgresMigrationFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("error reading migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("error creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("error creating migrator: %w", err)
	}

	logger.Info("running postgres migrations")
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}

// Load implements Repository
func (r *PostgresRepository) Load(ctx context.Context) (*entities.HighScore, error) {
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
func (r *PostgresRepository) Save(ctx context.Context, score *entities.HighScore) error {
	query := `
		INSERT INTO high_score (id, name, score, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, score = EXCLUDED.score, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, score.Name, score.Score); err != nil {
		return fmt.Errorf("error saving high score: %w", err)
	}
	return nil
}

// Close implements Repository
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
