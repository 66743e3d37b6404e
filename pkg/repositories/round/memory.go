package round

import (
	"context"
	"fmt"
	"sync"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of tableID to rounds in the order they were saved
	tableResults map[string][]*entities.RoundResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tableResults: make(map[string][]*entities.RoundResult),
	}
}

// SaveRoundResult stores a round result under its table
func (r *MemoryRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if result == nil || result.TableID == "" {
		return fmt.Errorf("round result needs a table id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tableResults[result.TableID] = append(r.tableResults[result.TableID], result)
	return nil
}

// GetTableResults retrieves recent round results for a table
func (r *MemoryRepository) GetTableResults(ctx context.Context, tableID string, limit int) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.tableResults[tableID]
	if limit > 0 && len(results) > limit {
		results = results[len(results)-limit:]
	}

	out := make([]*entities.RoundResult, len(results))
	copy(out, results)
	return out, nil
}

// GetTableStatistics computes per seat statistics for a table
func (r *MemoryRepository) GetTableStatistics(ctx context.Context, tableID string) ([]*entities.ParticipantStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return aggregate(tableID, r.tableResults[tableID]), nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
