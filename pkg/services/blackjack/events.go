package blackjack

import "github.com/fadedpez/blackjack/pkg/entities"

// EventType names something that happened at the table
type EventType string

const (
	EventTableSeated      EventType = "TABLE_SEATED"
	EventRoundStarted     EventType = "ROUND_STARTED"
	EventCardDealt        EventType = "CARD_DEALT"
	EventBlackjack        EventType = "BLACKJACK"
	EventTurnStarted      EventType = "TURN_STARTED"
	EventThinking         EventType = "THINKING"
	EventDecision         EventType = "DECISION"
	EventBusted           EventType = "BUSTED"
	EventHoleCardRevealed EventType = "HOLE_CARD_REVEALED"
	EventRoundResolved    EventType = "ROUND_RESOLVED"
	EventCardsCollected   EventType = "CARDS_COLLECTED"
)

// Event is what the engine hands to a Display. Only the fields relevant to
// Type are set.
type Event struct {
	Type        EventType
	Round       int
	Participant *Participant
	Card        *entities.Card
	Action      Action
	Table       []*Participant
	Result      *entities.RoundResult
}
