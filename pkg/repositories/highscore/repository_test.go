package highscore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx context.Context
	dir string
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()
}

// backends returns a fresh instance of every backend that runs without an
// external service
func (s *RepositoryTestSuite) backends() map[string]Repository {
	file, err := NewFileRepository(filepath.Join(s.dir, "scores", "highscore.txt"), logging.Discard())
	s.Require().NoError(err)

	sqlite, err := NewSQLiteRepository(filepath.Join(s.dir, "wildcat.db"), logging.Discard())
	s.Require().NoError(err)

	mr := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"file":   file,
		"sqlite": sqlite,
		"redis":  NewRedisRepositoryWithClient(client, ""),
	}
}

func (s *RepositoryTestSuite) TestLoadEmpty() {
	for name, repo := range s.backends() {
		s.Run(name, func() {
			defer repo.Close()

			// Execute
			record, err := repo.Load(s.ctx)

			// Assert
			s.Require().NoError(err)
			s.True(record.IsZero(), "A fresh store should hold the empty record")
		})
	}
}

func (s *RepositoryTestSuite) TestSaveThenLoad() {
	for name, repo := range s.backends() {
		s.Run(name, func() {
			defer repo.Close()

			// Execute
			s.Require().NoError(repo.Save(s.ctx, &entities.HighScore{Name: "alice", Score: 20}))
			s.Require().NoError(repo.Save(s.ctx, &entities.HighScore{Name: "bob", Score: 35}))
			record, err := repo.Load(s.ctx)

			// Assert
			s.Require().NoError(err)
			s.Equal("bob", record.Name, "Save should replace the previous record")
			s.Equal(35, record.Score)
		})
	}
}

func (s *RepositoryTestSuite) TestFileLayout() {
	// Setup
	path := filepath.Join(s.dir, "highscore.txt")
	repo, err := NewFileRepository(path, logging.Discard())
	s.Require().NoError(err)

	// Execute
	s.Require().NoError(repo.Save(s.ctx, &entities.HighScore{Name: "wildcat", Score: 42}))

	// Assert
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("wildcat|42", string(data), "The file should hold a single name|score line")
}

func (s *RepositoryTestSuite) TestFileMalformed() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "no separator", content: "wildcat 42"},
		{name: "non numeric score", content: "wildcat|lots"},
		{name: "empty", content: ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			path := filepath.Join(s.dir, "malformed.txt")
			s.Require().NoError(os.WriteFile(path, []byte(tc.content), 0644))
			repo, err := NewFileRepository(path, logging.Discard())
			s.Require().NoError(err)

			// Execute
			record, err := repo.Load(s.ctx)

			// Assert
			s.NoError(err, "Malformed files should not be an error")
			s.True(record.IsZero(), "Malformed files should read as the empty record")
		})
	}
}

func (s *RepositoryTestSuite) TestFileTrailingNewline() {
	// Setup
	path := filepath.Join(s.dir, "highscore.txt")
	s.Require().NoError(os.WriteFile(path, []byte("wildcat|42\n"), 0644))
	repo, err := NewFileRepository(path, logging.Discard())
	s.Require().NoError(err)

	// Execute
	record, err := repo.Load(s.ctx)

	// Assert
	s.Require().NoError(err)
	s.Equal(&entities.HighScore{Name: "wildcat", Score: 42}, record)
}

func (s *RepositoryTestSuite) TestSQLiteReopen() {
	// Setup
	path := filepath.Join(s.dir, "reopen.db")
	repo, err := NewSQLiteRepository(path, logging.Discard())
	s.Require().NoError(err)
	s.Require().NoError(repo.Save(s.ctx, &entities.HighScore{Name: "alice", Score: 30}))
	s.Require().NoError(repo.Close())

	// Execute
	reopened, err := NewSQLiteRepository(path, logging.Discard())
	s.Require().NoError(err)
	defer reopened.Close()
	record, err := reopened.Load(s.ctx)

	// Assert
	s.Require().NoError(err)
	s.Equal("alice", record.Name, "The record should survive reopening the database")
	s.Equal(30, record.Score)
}

func (s *RepositoryTestSuite) TestSQLiteAppliedMigrations() {
	// Setup
	repo, err := NewSQLiteRepository(filepath.Join(s.dir, "migrated.db"), logging.Discard())
	s.Require().NoError(err)
	defer repo.Close()

	// Execute
	applied, err := repo.AppliedMigrations()

	// Assert
	s.Require().NoError(err)
	s.Equal([]string{"001"}, applied, "The embedded migration should be recorded by version")
}

func (s *RepositoryTestSuite) TestRedisStoredValue() {
	// Setup
	mr := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepositoryWithClient(client, "test:highscore")
	defer repo.Close()

	// Execute
	s.Require().NoError(repo.Save(s.ctx, &entities.HighScore{Name: "alice", Score: 25}))

	// Assert
	raw, err := mr.Get("test:highscore")
	s.Require().NoError(err)
	s.Equal("alice|25", raw, "Redis should hold the name|score layout")
}

func (s *RepositoryTestSuite) TestRedisMalformed() {
	// Setup
	mr := miniredis.RunT(s.T())
	s.Require().NoError(mr.Set(DefaultRedisKey, "garbage"))
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepositoryWithClient(client, "")
	defer repo.Close()

	// Execute
	record, err := repo.Load(s.ctx)

	// Assert
	s.Require().NoError(err)
	s.True(record.IsZero(), "A malformed value should read as the empty record")
}

func (s *RepositoryTestSuite) TestRedisURL() {
	// Setup
	mr := miniredis.RunT(s.T())

	// Execute
	repo, err := NewRedisRepository("redis://"+mr.Addr(), "")

	// Assert
	s.Require().NoError(err)
	defer repo.Close()
	s.Equal(DefaultRedisKey, repo.key, "An empty key should fall back to the default")
}
