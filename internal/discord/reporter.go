package discord

import (
	"context"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/internal/types"
	"github.com/fadedpez/wildcatblackjack/pkg/services/blackjack"
	"github.com/fadedpez/wildcatblackjack/pkg/services/orchestrator"
)

// Reporter posts round and game results to a channel
type Reporter struct {
	session   SessionHandler
	channelID string
	logger    *logging.Logger
}

// Ensure Reporter implements orchestrator.Reporter
var _ orchestrator.Reporter = (*Reporter)(nil)

// NewReporter creates a reporter for channelID
func NewReporter(session SessionHandler, channelID string, logger *logging.Logger) *Reporter {
	if logger == nil {
		logger = logging.Default
	}
	return &Reporter{session: session, channelID: channelID, logger: logger}
}

// RoundCompleted implements orchestrator.Reporter
func (r *Reporter) RoundCompleted(ctx context.Context, round *blackjack.RoundResult) error {
	if _, err := r.session.ChannelMessageSend(r.channelID, RoundMessage(round)); err != nil {
		return types.WrapError(types.ErrNetworkError, "could not post round to discord", err)
	}
	return nil
}

// GameCompleted implements orchestrator.Reporter
func (r *Reporter) GameCompleted(ctx context.Context, summary *orchestrator.Summary) error {
	if _, err := r.session.ChannelMessageSendEmbed(r.channelID, SummaryEmbed(summary)); err != nil {
		return types.WrapError(types.ErrNetworkError, "could not post game summary to discord", err)
	}
	r.logger.Debug("posted game %s summary to channel %s", summary.GameID, r.channelID)
	return nil
}

// ReportError posts a failed game's error to the channel
func (r *Reporter) ReportError(err error) {
	if _, sendErr := r.session.ChannelMessageSend(r.channelID, ErrorMessage(err)); sendErr != nil {
		r.logger.Warn("could not post error to discord: %v", sendErr)
	}
}
