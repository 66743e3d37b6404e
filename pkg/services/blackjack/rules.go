package blackjack

import (
	"strconv"

	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	BlackjackScore    = 21 // Highest score that does not bust
	DealerStandsOn    = 17 // Dealer never hits at or above this score, soft or hard
	BotMinThreshold   = 14 // Lowest score a bot will stand on
	BotMaxThreshold   = 18 // Highest score a bot will stand on
	InitialHandSize   = 2
	softAceAdjustment = 10 // Difference between an ace counted as 11 and as 1
)

// Action is a participant's decision for the current turn
type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
	ActionAbort Action = "abort"
)

// Choices offered to a human participant
const (
	ChoiceHit   = string(ActionHit)
	ChoiceStand = string(ActionStand)
)

// GetCardValue returns the nominal blackjack value of a card. Aces count 11
// here; ApplyCard decides when one is worth 1.
func GetCardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

// ApplyCard adds one card to a running score. It must be called once per
// card in the order the cards were received, because the soft ace
// correction depends on the running state rather than the final hand.
func ApplyCard(h *Hand, card *entities.Card) {
	if card.IsAce() {
		if h.Score < 11 {
			h.Score += 11
			h.SoftAce = true
		} else {
			h.Score++
		}
	} else {
		h.Score += GetCardValue(card)
	}

	if h.Score > BlackjackScore && h.SoftAce {
		h.Score -= softAceAdjustment
		h.SoftAce = false
	}

	if h.Score > BlackjackScore {
		h.Status = StatusBusted
	}
}

// BotDecision is the automated player policy: hit below the threshold, stand otherwise
func BotDecision(score, threshold int) Action {
	if score < threshold {
		return ActionHit
	}
	return ActionStand
}

// DealerDecision is the house rule: hit below 17, stand on 17 or more
func DealerDecision(score int) Action {
	if score < DealerStandsOn {
		return ActionHit
	}
	return ActionStand
}

// DrawBotThreshold picks a bot's standing score, uniform in [14, 18]
func DrawBotThreshold(rng entities.RNG) int {
	return BotMinThreshold + rng.Intn(BotMaxThreshold-BotMinThreshold+1)
}

// DetermineWinners returns every participant holding the highest score that
// does not bust, together with that score. Ties all win, the dealer
// included. When everybody busts there are no winners and maxScore is 0.
func DetermineWinners(participants []*Participant) ([]*Participant, int) {
	maxScore := 0
	winners := make([]*Participant, 0)

	for _, p := range participants {
		score := p.Score()
		if score > BlackjackScore || score < maxScore {
			continue
		}
		if score > maxScore {
			maxScore = score
			winners = winners[:0]
		}
		winners = append(winners, p)
	}

	if maxScore == 0 {
		return make([]*Participant, 0), 0
	}
	return winners, maxScore
}
