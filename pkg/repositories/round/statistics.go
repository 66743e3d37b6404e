package round

import (
	"sort"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// aggregate folds rounds, oldest first, into one statistics entry per seat
func aggregate(tableID string, rounds []*entities.RoundResult) []*entities.ParticipantStatistics {
	bySeat := make(map[int]*entities.ParticipantStatistics)
	for _, round := range rounds {
		for _, pr := range round.Participants {
			stats, ok := bySeat[pr.ParticipantID]
			if !ok {
				stats = &entities.ParticipantStatistics{
					TableID:       tableID,
					ParticipantID: pr.ParticipantID,
					Role:          pr.Role,
				}
				bySeat[pr.ParticipantID] = stats
			}
			stats.Record(pr, round.CompletedAt)
		}
	}

	out := make([]*entities.ParticipantStatistics, 0, len(bySeat))
	for _, stats := range bySeat {
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ParticipantID < out[j].ParticipantID
	})
	return out
}
