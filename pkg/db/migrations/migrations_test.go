package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type MigrationsTestSuite struct {
	suite.Suite
	db *sql.DB
}

func TestMigrationsSuite(t *testing.T) {
	suite.Run(t, new(MigrationsTestSuite))
}

func (s *MigrationsTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.db = db
}

func (s *MigrationsTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MigrationsTestSuite) TestMigrateUpIsIdempotent() {
	// Setup
	fsys := fstest.MapFS{
		"sql/002_add_index.sql":  {Data: []byte("CREATE INDEX idx_things_name ON things(name);")},
		"sql/001_add_things.sql": {Data: []byte("CREATE TABLE things (name TEXT);")},
		"sql/README.md":          {Data: []byte("ignored")},
	}
	migrator := NewMigrator(s.db, fsys, "sql", logging.Discard())

	// Execute
	s.Require().NoError(migrator.MigrateUp())
	s.Require().NoError(migrator.MigrateUp(), "Second run should skip applied migrations")

	// Assert
	applied, err := migrator.GetAppliedMigrations()
	s.Require().NoError(err)
	s.Equal(map[string]bool{"001": true, "002": true}, applied)
}

func (s *MigrationsTestSuite) TestLoadMigrationsOrder() {
	fsys := fstest.MapFS{
		"m/010_later.sql":      {Data: []byte("SELECT 1;")},
		"m/001_first_step.sql": {Data: []byte("SELECT 1;")},
	}

	migrations, err := NewMigrator(s.db, fsys, "m", logging.Discard()).LoadMigrations()

	s.Require().NoError(err)
	s.Require().Len(migrations, 2)
	s.Equal("001", migrations[0].Version)
	s.Equal("first step", migrations[0].Description)
}

func (s *MigrationsTestSuite) TestInvalidFilename() {
	fsys := fstest.MapFS{"m/bad.sql": {Data: []byte("SELECT 1;")}}

	_, err := NewMigrator(s.db, fsys, "m", logging.Discard()).LoadMigrations()

	s.Error(err)
}

func (s *MigrationsTestSuite) TestFailedMigrationRollsBack() {
	fsys := fstest.MapFS{"m/001_broken.sql": {Data: []byte("CREATE TABLE;")}}
	migrator := NewMigrator(s.db, fsys, "m", logging.Discard())

	s.Error(migrator.MigrateUp())

	applied, err := migrator.GetAppliedMigrations()
	s.Require().NoError(err)
	s.Empty(applied, "Failed migration should not be recorded")
}
