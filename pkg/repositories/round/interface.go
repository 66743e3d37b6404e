package round

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// Repository keeps the resolved rounds of a session. Nothing outlives the
// process: both implementations hold their data in memory.
type Repository interface {
	SaveRoundResult(ctx context.Context, result *entities.RoundResult) error
	// GetTableResults returns the most recent rounds of a table, oldest
	// first. A limit of zero or less returns every round.
	GetTableResults(ctx context.Context, tableID string, limit int) ([]*entities.RoundResult, error)
	// GetTableStatistics aggregates every recorded round of a table per
	// seat, ordered by participant ID
	GetTableStatistics(ctx context.Context, tableID string) ([]*entities.ParticipantStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
