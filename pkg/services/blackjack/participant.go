package blackjack

import "fmt"

// Role tags the kind of participant and selects its decision policy
type Role string

const (
	RoleHuman  Role = "HUMAN"
	RoleBot    Role = "BOT"
	RoleDealer Role = "DEALER"
)

// Short returns the table marker for the role, (h) for humans and (b) for bots
func (r Role) Short() string {
	switch r {
	case RoleHuman:
		return "h"
	case RoleBot:
		return "b"
	}
	return "dealer"
}

// TurnState tracks where a participant is in the current round
type TurnState string

const (
	TurnSeated    TurnState = "SEATED"
	TurnDealt     TurnState = "DEALT"
	TurnBlackjack TurnState = "BLACKJACK"
	TurnPlaying   TurnState = "PLAYING"
	TurnStanding  TurnState = "STANDING"
	TurnBusted    TurnState = "BUSTED"
	TurnResolved  TurnState = "RESOLVED"
)

// Participant is a seat at the table. Threshold is only meaningful for bots.
type Participant struct {
	ID        int
	Name      string
	Role      Role
	Hand      *Hand
	Threshold int
	Turn      TurnState
}

// NewHuman creates a human participant
func NewHuman(id int, name string) *Participant {
	return newParticipant(id, name, RoleHuman)
}

// NewBot creates an automated participant that stands once it reaches threshold
func NewBot(id int, name string, threshold int) *Participant {
	p := newParticipant(id, name, RoleBot)
	p.Threshold = threshold
	return p
}

// NewDealer creates the house participant
func NewDealer(id int) *Participant {
	return newParticipant(id, "Dealer", RoleDealer)
}

func newParticipant(id int, name string, role Role) *Participant {
	return &Participant{
		ID:   id,
		Name: name,
		Role: role,
		Hand: NewHand(),
		Turn: TurnSeated,
	}
}

// Score returns the participant's current hand score
func (p *Participant) Score() int {
	return p.Hand.Score
}

// IsDealer reports whether the participant is the house
func (p *Participant) IsDealer() bool {
	return p.Role == RoleDealer
}

// String returns the participant's table label, e.g. "Player1 (h)"
func (p *Participant) String() string {
	if p.IsDealer() {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Role.Short())
}
