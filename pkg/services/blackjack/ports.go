package blackjack

import (
	"context"
	"errors"

	"github.com/fadedpez/blackjack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_blackjack

// ErrAbort is returned by an Input when the participant quits the round
var ErrAbort = errors.New("participant aborted the round")

// Input asks a human participant to pick one of choices. Implementations
// re-prompt on invalid input and only ever return a member of choices, or an
// error. An error wrapping ErrAbort ends the round early.
type Input interface {
	RequestChoice(ctx context.Context, p *Participant, choices []string) (string, error)
}

// Display presents engine events. It must treat the event as read only and
// its timing has no effect on the round.
type Display interface {
	Show(event Event)
}

// Recorder keeps resolved rounds for the session scoreboard
type Recorder interface {
	SaveRoundResult(ctx context.Context, result *entities.RoundResult) error
}
