// Package terminal renders the table with pterm and reads human decisions
// from interactive prompts.
package terminal

import (
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// BustedEmojis are shown next to a player that went over 21
var BustedEmojis = []string{"😭", "🤦", "😱", "💔", "👎", "🙈"}

// QuitChoice is offered next to hit and stand and aborts the round
const QuitChoice = "quit"

// Options configures a Terminal
type Options struct {
	BotDelay time.Duration // Pause while a bot "thinks", zero disables it
	RNG      entities.RNG  // Picks the busted emoji
	Logger   *logging.Logger
}

// Terminal is the pterm front end. It is a blackjack.Display, a
// blackjack.Input and a session.Prompter.
type Terminal struct {
	botDelay time.Duration
	rng      entities.RNG
	log      *logging.Logger
	sleep    func(time.Duration)

	// Emoji picked for each busted seat this round
	busted map[int]string
}

// New creates a Terminal
func New(opts Options) *Terminal {
	if opts.RNG == nil {
		opts.RNG = entities.NewRNG(0)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default
	}

	return &Terminal{
		botDelay: opts.BotDelay,
		rng:      opts.RNG,
		log:      opts.Logger,
		sleep:    time.Sleep,
		busted:   make(map[int]string),
	}
}
