// Package session drives a Blackjack sitting: seating a table, playing
// rounds until the players leave, and keeping the session scoreboard.
package session

import (
	"context"
	"fmt"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/round"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
)

// Prompter is everything the session asks of the person at the keyboard
type Prompter interface {
	Banner()
	Farewell()
	Confirm(ctx context.Context, question string, defaultValue bool) (bool, error)
	Number(ctx context.Context, question string, min int) (int, error)
	Text(ctx context.Context, question, defaultValue string) (string, error)
	ShowScoreboard(board *statistics.Scoreboard)
}

// Options configures a Session
type Options struct {
	HumanPlayers int
	BotPlayers   int

	Prompter   Prompter
	Input      blackjack.Input
	Display    blackjack.Display
	Repository round.Repository
	RNG        entities.RNG
	Logger     *logging.Logger
}

// Session runs tables one after another until the players leave
type Session struct {
	opts   Options
	scores *statistics.Service
	log    *logging.Logger
	tables int
}

// New creates a Session
func New(opts Options) (*Session, error) {
	if opts.Prompter == nil || opts.Input == nil || opts.Display == nil || opts.Repository == nil {
		return nil, types.NewGameError(types.ErrInvalidConfiguration, "prompter, input, display and repository are required")
	}
	if opts.RNG == nil {
		opts.RNG = entities.NewRNG(0)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default
	}

	return &Session{
		opts:   opts,
		scores: statistics.NewService(opts.Repository),
		log:    opts.Logger,
	}, nil
}

// Tables returns how many tables have been seated
func (s *Session) Tables() int {
	return s.tables
}

// Run plays until the players choose to leave. A fresh table is seated
// whenever the players ask for new players.
func (s *Session) Run(ctx context.Context) error {
	s.opts.Prompter.Banner()

	for {
		game, err := s.seatTable(ctx)
		if err != nil {
			return err
		}

		newTable, err := s.playTable(ctx, game)
		if err != nil {
			return err
		}
		if !newTable {
			s.opts.Prompter.Farewell()
			return nil
		}
	}
}

// seatTable asks for extra players and names, then seats a new Game
func (s *Session) seatTable(ctx context.Context) (*blackjack.Game, error) {
	humans, bots := s.opts.HumanPlayers, s.opts.BotPlayers

	more, err := s.addPlayers(ctx, "human", humans, bots)
	if err != nil {
		return nil, err
	}
	humans += more
	more, err = s.addPlayers(ctx, "computer", humans, bots)
	if err != nil {
		return nil, err
	}
	bots += more

	game := blackjack.NewGame(blackjack.Options{
		Input:    s.opts.Input,
		Display:  s.opts.Display,
		Recorder: s.opts.Repository,
		RNG:      s.opts.RNG,
		Logger:   s.log,
	})
	if err := game.Setup(humans, bots); err != nil {
		return nil, err
	}
	s.tables++
	s.log.Info("Seated table %d (%s) with %d humans and %d bots", s.tables, game.ID, humans, bots)

	for _, p := range game.Participants() {
		if p.IsDealer() {
			continue
		}
		if err := s.offerRename(ctx, game, p); err != nil {
			return nil, err
		}
	}

	return game, nil
}

func (s *Session) addPlayers(ctx context.Context, kind string, humans, bots int) (int, error) {
	question := fmt.Sprintf("There are %d human and %d computer players. Add more %s players?", humans, bots, kind)
	add, err := s.opts.Prompter.Confirm(ctx, question, false)
	if err != nil {
		return 0, promptError("add players", err)
	}
	if !add {
		return 0, nil
	}

	n, err := s.opts.Prompter.Number(ctx, fmt.Sprintf("How many %s players do you want to add?", kind), 0)
	if err != nil {
		return 0, promptError("add players", err)
	}
	return n, nil
}

func (s *Session) offerRename(ctx context.Context, game *blackjack.Game, p *blackjack.Participant) error {
	kind := "a human"
	if p.Role == blackjack.RoleBot {
		kind = "a bot"
	}

	rename, err := s.opts.Prompter.Confirm(ctx, fmt.Sprintf("%s is %s. Would you like to rename %s?", p.Name, kind, p.Name), false)
	if err != nil {
		return promptError("rename", err)
	}
	if !rename {
		return nil
	}

	name, err := s.opts.Prompter.Text(ctx, "New name", p.Name)
	if err != nil {
		return promptError("rename", err)
	}
	return game.Rename(p.ID, name)
}

// playTable plays rounds at game. It reports whether the players asked for
// a new table rather than leaving.
func (s *Session) playTable(ctx context.Context, game *blackjack.Game) (bool, error) {
	for {
		start, err := s.opts.Prompter.Confirm(ctx, "Start the round? Choose no to exit the game", true)
		if err != nil {
			return false, promptError("start round", err)
		}
		if !start {
			return false, nil
		}

		_, err = game.PlayRound(ctx)
		if err != nil {
			if resetErr := game.CollectAndReset(); resetErr != nil {
				s.log.LogError(resetErr)
			}
			return false, err
		}

		board, err := s.scores.GetScoreboard(ctx, game.ID)
		if err != nil {
			s.log.LogError(types.WrapError(types.ErrDatabaseError, "load scoreboard", err))
		} else {
			s.opts.Prompter.ShowScoreboard(board)
		}

		if err := game.CollectAndReset(); err != nil {
			return false, err
		}

		another, err := s.opts.Prompter.Confirm(ctx, "Do you want to play another round of Blackjack?", true)
		if err != nil {
			return false, promptError("another round", err)
		}
		if !another {
			return false, nil
		}

		same, err := s.opts.Prompter.Confirm(ctx, "Do you want to continue with the same players?", true)
		if err != nil {
			return false, promptError("same players", err)
		}
		if !same {
			return true, nil
		}
	}
}

func promptError(step string, err error) error {
	return types.WrapError(types.ErrInputUnavailable, step, err)
}
