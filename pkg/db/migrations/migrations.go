package migrations

import (
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
)

// Migration represents a database migration
type Migration struct {
	Version     string
	Description string
	SQL         string
}

// Migrator handles database migrations
type Migrator struct {
	db     *sql.DB
	fsys   fs.FS
	dir    string
	logger *logging.Logger
}

// NewMigrator creates a migrator that reads *.sql files from dir inside fsys
func NewMigrator(db *sql.DB, fsys fs.FS, dir string, logger *logging.Logger) *Migrator {
	if logger == nil {
		logger = logging.Default
	}
	return &Migrator{
		db:     db,
		fsys:   fsys,
		dir:    dir,
		logger: logger,
	}
}

// Initialize creates the migrations table if it doesn't exist
func (m *Migrator) Initialize() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			version TEXT NOT NULL,
			description TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// GetAppliedMigrations returns a map of already applied migrations
func (m *Migrator) GetAppliedMigrations() (map[string]bool, error) {
	rows, err := m.db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// LoadMigrations loads all migration files, ordered by version
func (m *Migrator) LoadMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(m.fsys, m.dir)
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		content, err := fs.ReadFile(m.fsys, path.Join(m.dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// Parse version and description from filename (e.g., "001_high_score.sql")
		parts := strings.SplitN(strings.TrimSuffix(entry.Name(), ".sql"), "_", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid migration filename: %s", entry.Name())
		}

		migrations = append(migrations, Migration{
			Version:     parts[0],
			Description: strings.ReplaceAll(parts[1], "_", " "),
			SQL:         string(content),
		})
	}

	// Sort migrations by version
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// ApplyMigration applies a single migration
func (m *Migrator) ApplyMigration(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}

	// Apply the migration
	if _, err = tx.Exec(migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("error applying migration %s: %w", migration.Version, err)
	}

	// Record the migration
	_, err = tx.Exec(
		"INSERT INTO migrations (version, description) VALUES (?, ?)",
		migration.Version,
		migration.Description,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error recording migration %s: %w", migration.Version, err)
	}

	return tx.Commit()
}

// MigrateUp applies all pending migrations
func (m *Migrator) MigrateUp() error {
	if err := m.Initialize(); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		return err
	}

	migrations, err := m.LoadMigrations()
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			m.logger.Debug("Migration %s already applied, skipping", migration.Version)
			continue
		}

		m.logger.Info("Applying migration %s: %s", migration.Version, migration.Description)
		if err := m.ApplyMigration(migration); err != nil {
			return err
		}
	}

	return nil
}
