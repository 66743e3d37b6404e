package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/round"
)

// Service provides the session scoreboard for a table
type Service struct {
	repository round.Repository
}

// NewService creates a new statistics service
func NewService(repository round.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Standing is a seat's statistics with ranking information
type Standing struct {
	*entities.ParticipantStatistics
	Rank        int     `json:"rank"`
	WinRate     float64 `json:"win_rate"`
	IsTopWinner bool    `json:"is_top_winner"`
}

// Scoreboard ranks every seat of a table by wins
type Scoreboard struct {
	TableID     string      `json:"table_id"`
	Rounds      int         `json:"rounds"`
	Standings   []*Standing `json:"standings"`
	LastUpdated time.Time   `json:"last_updated"`
}

// GetScoreboard builds the scoreboard of a table from its recorded rounds.
// Seats are ordered by wins, then blackjacks, then seat ID.
func (s *Service) GetScoreboard(ctx context.Context, tableID string) (*Scoreboard, error) {
	allStats, err := s.repository.GetTableStatistics(ctx, tableID)
	if err != nil {
		return nil, err
	}

	board := &Scoreboard{
		TableID:   tableID,
		Standings: make([]*Standing, 0, len(allStats)),
	}
	for _, stats := range allStats {
		if stats.RoundsPlayed == 0 {
			continue
		}
		if stats.RoundsPlayed > board.Rounds {
			board.Rounds = stats.RoundsPlayed
		}
		if stats.LastUpdated.After(board.LastUpdated) {
			board.LastUpdated = stats.LastUpdated
		}

		board.Standings = append(board.Standings, &Standing{
			ParticipantStatistics: stats,
			WinRate:               stats.WinRate(),
		})
	}

	sort.SliceStable(board.Standings, func(i, j int) bool {
		a, b := board.Standings[i], board.Standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Blackjacks != b.Blackjacks {
			return a.Blackjacks > b.Blackjacks
		}
		return a.ParticipantID < b.ParticipantID
	})

	for i, standing := range board.Standings {
		standing.Rank = i + 1
		standing.IsTopWinner = standing.Wins > 0 && standing.Wins == board.Standings[0].Wins
	}

	return board, nil
}

// RecentRounds returns up to limit of the latest rounds at a table, oldest first
func (s *Service) RecentRounds(ctx context.Context, tableID string, limit int) ([]*entities.RoundResult, error) {
	if limit < 1 {
		limit = 5
	}
	return s.repository.GetTableResults(ctx, tableID, limit)
}
