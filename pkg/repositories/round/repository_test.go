package round

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same cases against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (Repository, error)
	repo    Repository
	ctx     context.Context
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (Repository, error) { return NewMemoryRepository(), nil },
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (Repository, error) {
			return NewSQLiteRepository(logging.NewLoggerWithWriter(logging.ERROR, io.Discard))
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	repo, err := s.newRepo()
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

var started = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

func roundOf(tableID string, number int, outcomes ...entities.Result) *entities.RoundResult {
	result := &entities.RoundResult{
		ID:          fmt.Sprintf("%s-%d", tableID, number),
		TableID:     tableID,
		Number:      number,
		CompletedAt: started.Add(time.Duration(number) * time.Minute),
		MaxScore:    20,
	}
	for i, outcome := range outcomes {
		role := "BOT"
		name := fmt.Sprintf("Player%d", i+1)
		if i == len(outcomes)-1 {
			role, name = "DEALER", "Dealer"
		}
		result.Participants = append(result.Participants, &entities.ParticipantResult{
			ParticipantID: i,
			Name:          name,
			Role:          role,
			Cards:         []string{"10♠", fmt.Sprintf("%d♥", number%9+2)},
			Score:         20,
			Result:        outcome,
		})
	}
	return result
}

func (s *RepositoryTestSuite) TestSaveAndGetTableResults() {
	first := roundOf("table-a", 1, entities.ResultWin, entities.ResultLose)
	second := roundOf("table-a", 2, entities.ResultBust, entities.ResultWin)
	second.Aborted = true
	other := roundOf("table-b", 1, entities.ResultLose, entities.ResultWin)

	for _, r := range []*entities.RoundResult{first, second, other} {
		s.Require().NoError(s.repo.SaveRoundResult(s.ctx, r))
	}

	results, err := s.repo.GetTableResults(s.ctx, "table-a", 0)
	s.Require().NoError(err)
	s.Require().Len(results, 2)

	got := results[1]
	s.Equal(second.ID, got.ID)
	s.Equal(2, got.Number)
	s.True(got.Aborted)
	s.Equal(20, got.MaxScore)
	s.True(second.CompletedAt.Equal(got.CompletedAt), "Completion time should survive storage")
	s.Require().Len(got.Participants, 2)
	s.Equal(*second.Participants[0], *got.Participants[0])
	s.Equal(*second.Participants[1], *got.Participants[1])
}

func (s *RepositoryTestSuite) TestGetTableResultsLimit() {
	for n := 1; n <= 5; n++ {
		s.Require().NoError(s.repo.SaveRoundResult(s.ctx, roundOf("table-a", n, entities.ResultWin, entities.ResultLose)))
	}

	testCases := []struct {
		name    string
		limit   int
		numbers []int
	}{
		{name: "most recent oldest first", limit: 2, numbers: []int{4, 5}},
		{name: "limit larger than history", limit: 10, numbers: []int{1, 2, 3, 4, 5}},
		{name: "no limit", limit: 0, numbers: []int{1, 2, 3, 4, 5}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			results, err := s.repo.GetTableResults(s.ctx, "table-a", tc.limit)
			s.Require().NoError(err)

			numbers := make([]int, 0, len(results))
			for _, r := range results {
				numbers = append(numbers, r.Number)
			}
			s.Equal(tc.numbers, numbers)
		})
	}
}

func (s *RepositoryTestSuite) TestUnknownTableIsEmpty() {
	results, err := s.repo.GetTableResults(s.ctx, "nobody", 5)
	s.Require().NoError(err)
	s.NotNil(results)
	s.Empty(results)

	stats, err := s.repo.GetTableStatistics(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(stats)
}

func (s *RepositoryTestSuite) TestSaveRejectsMissingTable() {
	s.Error(s.repo.SaveRoundResult(s.ctx, &entities.RoundResult{ID: "x"}))
}

func (s *RepositoryTestSuite) TestGetTableStatistics() {
	rounds := []*entities.RoundResult{
		roundOf("table-a", 1, entities.ResultBlackjack, entities.ResultBust, entities.ResultLose),
		roundOf("table-a", 2, entities.ResultWin, entities.ResultLose, entities.ResultWin),
		roundOf("table-a", 3, entities.ResultBust, entities.ResultLose, entities.ResultWin),
		roundOf("table-b", 1, entities.ResultWin, entities.ResultWin, entities.ResultWin),
	}
	rounds[2].Participants[0].Name = "Sud"
	for _, r := range rounds {
		s.Require().NoError(s.repo.SaveRoundResult(s.ctx, r))
	}

	stats, err := s.repo.GetTableStatistics(s.ctx, "table-a")

	s.Require().NoError(err)
	s.Require().Len(stats, 3)

	first := stats[0]
	s.Equal("table-a", first.TableID)
	s.Equal(0, first.ParticipantID)
	s.Equal("Sud", first.Name, "The latest name should be kept")
	s.Equal(3, first.RoundsPlayed)
	s.Equal(2, first.Wins)
	s.Equal(1, first.Losses)
	s.Equal(1, first.Blackjacks)
	s.Equal(1, first.Busts)
	s.True(rounds[2].CompletedAt.Equal(first.LastUpdated))

	s.Equal(0, stats[1].Wins)
	s.Equal(3, stats[1].Losses)
	s.Equal(1, stats[1].Busts)

	dealer := stats[2]
	s.Equal("DEALER", dealer.Role)
	s.Equal(2, dealer.Wins)
	s.InDelta(66.67, dealer.WinRate(), 0.01)
}
