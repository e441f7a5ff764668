package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
	buf *bytes.Buffer
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
}

func (s *LoggerTestSuite) TestParseLevel() {
	testCases := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"error", ERROR, false},
		{"loud", INFO, true},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			level, err := ParseLevel(tc.input)
			if tc.wantErr {
				s.Error(err, "Unknown level should fail")
			} else {
				s.NoError(err)
			}
			s.Equal(tc.expected, level)
		})
	}
}

func (s *LoggerTestSuite) TestLevelFiltering() {
	// Setup
	logger := NewLogger(s.buf, WARN)

	// Execute
	logger.Info("dealt %d cards", 4)
	logger.Warn("high score file %s unreadable", "scores.txt")

	// Assert
	s.NotContains(s.buf.String(), "dealt 4 cards", "Info should be filtered at WARN")
	s.Contains(s.buf.String(), "high score file scores.txt unreadable", "Warn should be written")
}

func (s *LoggerTestSuite) TestWith() {
	// Setup
	logger := NewLogger(s.buf, DEBUG).With("round", 3)

	// Execute
	logger.Debug("dealer stands")

	// Assert
	s.Contains(s.buf.String(), "round=3", "Key/value context should be included")
	s.Contains(s.buf.String(), "dealer stands")
}

func (s *LoggerTestSuite) TestLogError() {
	testCases := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "Game error",
			err:      types.WrapError(types.ErrDatabaseError, "could not save high score", errors.New("disk full")),
			contains: []string{"could not save high score", "DATABASE_ERROR", "disk full"},
		},
		{
			name:     "Plain error",
			err:      errors.New("boom"),
			contains: []string{"Unexpected error: boom"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.buf.Reset()
			NewLogger(s.buf, DEBUG).LogError(tc.err)
			for _, want := range tc.contains {
				s.Contains(s.buf.String(), want)
			}
		})
	}
}
