package entities

import "time"

// ParticipantStatistics represents aggregated round outcomes for one seat at a table
type ParticipantStatistics struct {
	TableID       string
	ParticipantID int
	Name          string
	Role          string
	RoundsPlayed  int
	Wins          int
	Losses        int
	Blackjacks    int
	Busts         int
	LastUpdated   time.Time
}

// Record folds one round outcome into the statistics
func (s *ParticipantStatistics) Record(pr *ParticipantResult, at time.Time) {
	s.Name = pr.Name
	s.RoundsPlayed++
	switch pr.Result {
	case ResultBlackjack:
		s.Wins++
		s.Blackjacks++
	case ResultWin:
		s.Wins++
	case ResultBust:
		s.Losses++
		s.Busts++
	default:
		s.Losses++
	}
	if at.After(s.LastUpdated) {
		s.LastUpdated = at
	}
}

// WinRate calculates the participant's win rate as a percentage
func (s *ParticipantStatistics) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed) * 100.0
}
