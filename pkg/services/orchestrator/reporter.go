package orchestrator

import (
	"context"
	"errors"

	"github.com/fadedpez/wildcatblackjack/pkg/services/blackjack"
)

// Reporter receives structured results as a game progresses. Errors are
// logged by the orchestrator and never stop a game.
type Reporter interface {
	RoundCompleted(ctx context.Context, round *blackjack.RoundResult) error
	GameCompleted(ctx context.Context, summary *Summary) error
}

// MultiReporter fans each event out to every reporter in order
type MultiReporter []Reporter

// RoundCompleted implements Reporter
func (m MultiReporter) RoundCompleted(ctx context.Context, round *blackjack.RoundResult) error {
	var errs []error
	for _, r := range m {
		if err := r.RoundCompleted(ctx, round); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GameCompleted implements Reporter
func (m MultiReporter) GameCompleted(ctx context.Context, summary *Summary) error {
	var errs []error
	for _, r := range m {
		if err := r.GameCompleted(ctx, summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type nopReporter struct{}

func (nopReporter) RoundCompleted(context.Context, *blackjack.RoundResult) error { return nil }
func (nopReporter) GameCompleted(context.Context, *Summary) error { return nil }
