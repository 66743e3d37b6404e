package entities

import "time"

// Result represents the outcome of a participant's round
type Result string

const (
	ResultWin       Result = "WIN"
	ResultBlackjack Result = "BLACKJACK"
	ResultLose      Result = "LOSE"
	ResultBust      Result = "BUST"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin || r == ResultBlackjack
}

// Game state types
type GameState string

const (
	StateWaiting  GameState = "WAITING"
	StateDealing  GameState = "DEALING"
	StatePlaying  GameState = "PLAYING"
	StateDealer   GameState = "DEALER"
	StateComplete GameState = "COMPLETE"
)

// RoundResult represents the outcome of one resolved round at a table
type RoundResult struct {
	ID           string
	TableID      string
	Number       int
	CompletedAt  time.Time
	MaxScore     int // Zero when nobody finished at or under 21
	Aborted      bool
	Participants []*ParticipantResult
}

// ParticipantResult is a single seat's final hand for a round
type ParticipantResult struct {
	ParticipantID int
	Name          string
	Role          string
	Cards         []string
	Score         int
	Result        Result
}

// Winners returns the participants that won the round, in seating order
func (r *RoundResult) Winners() []*ParticipantResult {
	winners := make([]*ParticipantResult, 0)
	for _, pr := range r.Participants {
		if pr.Result.IsWin() {
			winners = append(winners, pr)
		}
	}
	return winners
}

// HasWinner reports whether anybody won the round
func (r *RoundResult) HasWinner() bool {
	return len(r.Winners()) > 0
}
