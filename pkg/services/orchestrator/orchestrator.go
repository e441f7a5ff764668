package orchestrator

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/internal/randutil"
	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
	"github.com/fadedpez/wildcatblackjack/pkg/repositories/highscore"
	"github.com/fadedpez/wildcatblackjack/pkg/services/blackjack"
	"github.com/fadedpez/wildcatblackjack/pkg/services/session"
	"github.com/fadedpez/wildcatblackjack/pkg/services/statistics"
)

// Config describes one game
type Config struct {
	Mode    entities.GameMode
	Rounds  int
	Players []*entities.Player
}

// HighScoreOutcome reports what happened to the all-time record
type HighScoreOutcome struct {
	Previous entities.HighScore `json:"previous"`
	Current  entities.HighScore `json:"current"`
	IsNew    bool               `json:"is_new"`
}

// Summary is the end of game report
type Summary struct {
	GameID          string                   `json:"game_id"`
	Mode            entities.GameMode        `json:"mode"`
	Rounds          int                      `json:"rounds"`
	RoundResults    []*blackjack.RoundResult `json:"-"`
	Leaderboard     []*statistics.PlayerRank `json:"leaderboard"`
	Winners         []*entities.Player       `json:"-"`
	WinningScore    int                      `json:"winning_score"`
	Distribution    []statistics.TotalCount  `json:"distribution"`
	TotalBusts      int                      `json:"total_busts"`
	HighestTotal    int                      `json:"highest_total"`
	BestRoundPoints int                      `json:"best_round_points"`
	BestRoundEarner string                   `json:"best_round_earner"`
	Recognitions    []statistics.Recognition `json:"recognitions"`
	HighScore       HighScoreOutcome         `json:"high_score"`
}

// WinnerNames returns the usernames of every tied winner
func (s *Summary) WinnerNames() []string {
	names := make([]string, 0, len(s.Winners))
	for _, w := range s.Winners {
		names = append(names, w.Username)
	}
	return names
}

// Service runs complete games
type Service struct {
	cfg      Config
	actions  blackjack.ActionProvider
	store    highscore.Repository
	rng      entities.RandSource
	reporter Reporter
	logger   *logging.Logger
}

// Option configures a Service
type Option func(*Service)

// WithRand sets the randomness every round's deck is shuffled from
func WithRand(rng entities.RandSource) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// WithReporter sets where round and game results are sent
func WithReporter(r Reporter) Option {
	return func(s *Service) {
		s.reporter = r
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New validates cfg and creates a service for one game
func New(cfg Config, actions blackjack.ActionProvider, store highscore.Repository, opts ...Option) (*Service, error) {
	if !cfg.Mode.Valid() {
		return nil, types.Errorf(types.ErrInvalidArgument, "unknown game mode %d", cfg.Mode)
	}
	if err := session.ValidateRounds(cfg.Rounds); err != nil {
		return nil, err
	}
	if err := session.ValidatePlayers(cfg.Players); err != nil {
		return nil, err
	}
	if actions == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "an action provider is required")
	}

	s := &Service{
		cfg:     cfg,
		actions: actions,
		store:   store,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = highscore.NewMemoryRepository()
	}
	if s.rng == nil {
		s.rng = randutil.NewTimeSeeded()
	}
	if s.reporter == nil {
		s.reporter = nopReporter{}
	}
	if s.logger == nil {
		s.logger = logging.Default
	}
	return s, nil
}

// Run plays every round and returns the game summary. The context is only
// checked between rounds.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	gameID := uuid.New().String()
	logger := s.logger.With("game_id", gameID)

	previous, err := s.store.Load(ctx)
	if err != nil {
		logger.Warn("could not load high score, starting from an empty record: %v", err)
		previous = &entities.HighScore{}
	}
	if previous == nil {
		previous = &entities.HighScore{}
	}

	for _, p := range s.cfg.Players {
		p.ResetForNewGame()
	}

	logger.Info("starting %s game: %d rounds, %d players", s.cfg.Mode, s.cfg.Rounds, len(s.cfg.Players))

	aggregates := statistics.NewAggregates()
	runner := blackjack.NewRoundRunner(s.cfg.Mode, s.rng, s.actions, aggregates, logger)

	summary := &Summary{
		GameID:       gameID,
		Mode:         s.cfg.Mode,
		Rounds:       s.cfg.Rounds,
		RoundResults: make([]*blackjack.RoundResult, 0, s.cfg.Rounds),
	}

	for round := 1; round <= s.cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, types.WrapError(types.ErrInputError, "game cancelled", err)
		}

		result, err := runner.Play(ctx, round, s.cfg.Players)
		if err != nil {
			logger.LogError(err)
			return nil, err
		}
		summary.RoundResults = append(summary.RoundResults, result)

		if err := s.reporter.RoundCompleted(ctx, result); err != nil {
			logger.Warn("reporter failed on round %d: %v", round, err)
		}
	}

	s.summarize(summary, aggregates)
	summary.HighScore = s.updateHighScore(ctx, logger, previous, summary)

	if err := s.reporter.GameCompleted(ctx, summary); err != nil {
		logger.Warn("reporter failed on game summary: %v", err)
	}

	logger.Info("game over: winners %s with %d points", strings.Join(summary.WinnerNames(), ", "), summary.WinningScore)
	return summary, nil
}

func (s *Service) summarize(summary *Summary, agg *statistics.Aggregates) {
	summary.Leaderboard = statistics.BuildLeaderboard(s.cfg.Players)
	summary.Winners, summary.WinningScore = statistics.Winners(s.cfg.Players)
	summary.Distribution = agg.Distribution()
	summary.TotalBusts = agg.TotalBusts
	summary.HighestTotal = agg.HighestTotal
	summary.BestRoundPoints = agg.BestRoundPoints
	summary.BestRoundEarner = agg.BestRoundEarner
	summary.Recognitions = statistics.Recognitions(s.cfg.Players, agg, s.cfg.Rounds)
}

// updateHighScore replaces the record when the winning score strictly beats
// it. The first winner in roster order takes the record. Save failures are
// logged and the outcome still reports the new record.
func (s *Service) updateHighScore(ctx context.Context, logger *logging.Logger, previous *entities.HighScore, summary *Summary) HighScoreOutcome {
	outcome := HighScoreOutcome{
		Previous: *previous,
		Current:  *previous,
	}
	if len(summary.Winners) == 0 || !previous.Beats(summary.WinningScore) {
		return outcome
	}

	record := entities.HighScore{
		Name:  summary.Winners[0].Username,
		Score: summary.WinningScore,
	}
	outcome.Current = record
	outcome.IsNew = true

	if err := s.store.Save(ctx, &record); err != nil {
		logger.LogError(types.WrapError(types.ErrDatabaseError, "could not save high score", err))
	} else {
		logger.Info("new high score: %s", record.String())
	}
	return outcome
}
