package blackjack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/google/uuid"
)

// Options carries the collaborators of a Game. Input and Display are
// required; everything else has a default.
type Options struct {
	Input    Input
	Display  Display
	Recorder Recorder        // Optional, rounds are not kept when nil
	RNG      entities.RNG    // Defaults to a time seeded source
	Logger   *logging.Logger // Defaults to logging.Default
}

// Game is the round engine for one table. It owns the deck and the seating
// order for the whole session. A Game is driven from a single goroutine and
// does no locking.
type Game struct {
	ID    string
	State entities.GameState
	Deck  *entities.Deck

	participants []*Participant // Seating order, dealer last
	rounds       int

	input    Input
	display  Display
	recorder Recorder
	rng      entities.RNG
	log      *logging.Logger
}

// NewGame creates an empty table waiting for Setup
func NewGame(opts Options) *Game {
	if opts.RNG == nil {
		opts.RNG = entities.NewRNG(0)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default
	}

	return &Game{
		ID:       uuid.New().String(),
		State:    entities.StateWaiting,
		input:    opts.Input,
		display:  opts.Display,
		recorder: opts.Recorder,
		rng:      opts.RNG,
		log:      opts.Logger,
	}
}

// Setup builds the shoe for the table and seats the participants. Humans and
// bots are seated in random order and the dealer always sits last. Setup
// runs once per Game.
func (g *Game) Setup(humanCount, botCount int) error {
	if g.Deck != nil {
		return types.NewGameError(types.ErrInvalidState, "table is already seated")
	}
	if g.input == nil || g.display == nil {
		return types.NewGameError(types.ErrInvalidConfiguration, "input and display are required")
	}
	if humanCount < 0 || botCount < 0 {
		return types.NewGameError(types.ErrInvalidConfiguration,
			fmt.Sprintf("player counts cannot be negative (humans=%d, bots=%d)", humanCount, botCount))
	}
	total := humanCount + botCount
	if total < 1 {
		return types.NewGameError(types.ErrInvalidConfiguration, "table needs at least one player")
	}

	deck := entities.NewDeck()
	if err := deck.ScaleForTableSize(total); err != nil {
		return types.WrapError(types.ErrInvalidConfiguration, "scale deck", err)
	}
	deck.Shuffle(g.rng)
	deck.Cut()
	deck.Shuffle(g.rng)

	seats := make([]*Participant, 0, total+1)
	for i := 0; i < humanCount; i++ {
		seats = append(seats, NewHuman(i, fmt.Sprintf("Player%d", i+1)))
	}
	for i := humanCount; i < total; i++ {
		seats = append(seats, NewBot(i, fmt.Sprintf("Player%d", i+1), DrawBotThreshold(g.rng)))
	}
	g.rng.Shuffle(len(seats), func(i, j int) {
		seats[i], seats[j] = seats[j], seats[i]
	})
	seats = append(seats, NewDealer(total))

	g.Deck = deck
	g.participants = seats
	g.log.Info("Table %s seated %d humans and %d bots with %d cards", g.ID, humanCount, botCount, deck.Len())

	g.show(Event{Type: EventTableSeated, Table: g.Participants()})
	return nil
}

// Participants returns the seating order, dealer last
func (g *Game) Participants() []*Participant {
	seats := make([]*Participant, len(g.participants))
	copy(seats, g.participants)
	return seats
}

// Dealer returns the house seat, or nil before Setup
func (g *Game) Dealer() *Participant {
	if len(g.participants) == 0 {
		return nil
	}
	return g.participants[len(g.participants)-1]
}

// Participant finds a seat by ID
func (g *Game) Participant(id int) (*Participant, error) {
	for _, p := range g.participants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, types.NewGameError(types.ErrPlayerNotFound, fmt.Sprintf("no participant with id %d", id))
}

// Rename changes a participant's display name
func (g *Game) Rename(id int, name string) error {
	p, err := g.Participant(id)
	if err != nil {
		return err
	}
	if name == "" {
		return types.NewGameError(types.ErrInvalidConfiguration, "name cannot be empty")
	}
	p.Name = name
	return nil
}

// Rounds returns how many rounds have been started at this table
func (g *Game) Rounds() int {
	return g.rounds
}

// PlayRound deals, runs every turn in seating order, lets the dealer play
// and resolves the winners. An abort from a participant ends the round early
// and winners are taken from the scores at that point. The only error a
// well-formed table can return is a deck exhaustion, which is fatal to the
// round; the caller should still CollectAndReset afterwards.
func (g *Game) PlayRound(ctx context.Context) (*entities.RoundResult, error) {
	if g.Deck == nil {
		return nil, types.NewGameError(types.ErrInvalidState, "table is not seated")
	}
	if g.State != entities.StateWaiting {
		return nil, types.NewGameError(types.ErrInvalidState,
			fmt.Sprintf("cannot start a round while %s", g.State))
	}

	g.rounds++
	g.State = entities.StateDealing
	g.show(Event{Type: EventRoundStarted, Table: g.Participants()})

	if err := g.dealInitialHands(); err != nil {
		return nil, err
	}

	g.State = entities.StatePlaying
	aborted := false
	for _, p := range g.players() {
		var err error
		aborted, err = g.playTurn(ctx, p)
		if err != nil {
			return nil, err
		}
		if aborted {
			g.log.Warn("Round %d at table %s aborted by %s", g.rounds, g.ID, p.Name)
			break
		}
	}

	if !aborted {
		g.State = entities.StateDealer
		g.revealHoleCard()
		if _, err := g.playTurn(ctx, g.Dealer()); err != nil {
			return nil, err
		}
	}

	result := g.resolve(aborted)
	g.State = entities.StateComplete

	if g.recorder != nil {
		if err := g.recorder.SaveRoundResult(ctx, result); err != nil {
			g.log.LogError(types.WrapError(types.ErrDatabaseError, "record round", err))
		}
	}

	g.show(Event{Type: EventRoundResolved, Table: g.Participants(), Result: result})
	return result, nil
}

// CollectAndReset returns every card on the table to the deck and clears
// the hands for the next round. It is safe to call after a failed round.
func (g *Game) CollectAndReset() error {
	if g.Deck == nil {
		return types.NewGameError(types.ErrInvalidState, "table is not seated")
	}

	for _, p := range g.participants {
		cards := p.Hand.Reset()
		for _, card := range cards {
			card.FaceUp = false
		}
		g.Deck.Return(cards...)
		p.Turn = TurnSeated
	}

	g.State = entities.StateWaiting
	g.log.Debug("Collected cards at table %s, %d in deck", g.ID, g.Deck.Len())
	g.show(Event{Type: EventCardsCollected, Table: g.Participants()})
	return nil
}

// players returns every seat except the dealer
func (g *Game) players() []*Participant {
	if len(g.participants) == 0 {
		return nil
	}
	return g.participants[:len(g.participants)-1]
}

func (g *Game) dealInitialHands() error {
	for _, p := range g.players() {
		for i := 0; i < InitialHandSize; i++ {
			if err := g.dealTo(p, true); err != nil {
				return err
			}
		}
		p.Turn = TurnDealt
	}

	dealer := g.Dealer()
	if err := g.dealTo(dealer, true); err != nil {
		return err
	}
	if err := g.dealTo(dealer, false); err != nil {
		return err
	}
	dealer.Turn = TurnDealt

	for _, p := range g.players() {
		if p.Hand.MarkBlackjack() {
			p.Turn = TurnBlackjack
			g.show(Event{Type: EventBlackjack, Participant: p})
		}
	}
	return nil
}

// dealTo moves the top card of the deck into p's hand
func (g *Game) dealTo(p *Participant, faceUp bool) error {
	card, err := g.Deck.Deal(faceUp)
	if err != nil {
		return types.WrapError(types.ErrDeckExhausted, fmt.Sprintf("no card left for %s", p.Name), err)
	}

	if faceUp {
		err = p.Hand.AddCard(card)
	} else {
		err = p.Hand.AddHidden(card)
	}
	if err != nil {
		g.Deck.Return(card)
		return types.WrapError(types.ErrInternalError, fmt.Sprintf("deal to %s", p.Name), err)
	}

	g.log.Debug("Dealt %s to %s (score %d)", card, p.Name, p.Score())
	g.show(Event{Type: EventCardDealt, Participant: p, Card: card})

	if p.Hand.Status == StatusBusted {
		p.Turn = TurnBusted
		g.show(Event{Type: EventBusted, Participant: p})
	}
	return nil
}

// playTurn polls p until it stands, busts, reaches 21 or aborts
func (g *Game) playTurn(ctx context.Context, p *Participant) (bool, error) {
	g.show(Event{Type: EventTurnStarted, Participant: p})
	if p.Turn == TurnBlackjack {
		return false, nil
	}
	p.Turn = TurnPlaying

	for p.Score() < BlackjackScore {
		action, err := g.decide(ctx, p)
		if err != nil {
			return false, err
		}
		g.show(Event{Type: EventDecision, Participant: p, Action: action})

		switch action {
		case ActionHit:
			if err := g.dealTo(p, true); err != nil {
				return false, err
			}
		case ActionStand:
			p.Turn = TurnStanding
			return false, nil
		default:
			p.Turn = TurnStanding
			return true, nil
		}
	}

	if !p.Hand.IsBust() {
		p.Turn = TurnStanding
	}
	return false, nil
}

// decide dispatches to the policy for p's role
func (g *Game) decide(ctx context.Context, p *Participant) (Action, error) {
	if ctx.Err() != nil {
		return ActionAbort, nil
	}

	switch p.Role {
	case RoleHuman:
		choice, err := g.input.RequestChoice(ctx, p, []string{ChoiceHit, ChoiceStand})
		if err != nil {
			if errors.Is(err, ErrAbort) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ActionAbort, nil
			}
			return "", types.WrapError(types.ErrInputUnavailable, fmt.Sprintf("read choice for %s", p.Name), err)
		}
		switch choice {
		case ChoiceHit:
			return ActionHit, nil
		case ChoiceStand:
			return ActionStand, nil
		}
		return ActionAbort, nil
	case RoleBot:
		g.show(Event{Type: EventThinking, Participant: p})
		return BotDecision(p.Score(), p.Threshold), nil
	case RoleDealer:
		return DealerDecision(p.Score()), nil
	}

	return "", types.NewGameError(types.ErrInternalError, fmt.Sprintf("unknown role %q", p.Role))
}

func (g *Game) revealHoleCard() {
	dealer := g.Dealer()
	for _, card := range dealer.Hand.Reveal() {
		g.show(Event{Type: EventHoleCardRevealed, Participant: dealer, Card: card})
	}
	if dealer.Hand.IsBust() {
		dealer.Turn = TurnBusted
	}
}

func (g *Game) resolve(aborted bool) *entities.RoundResult {
	winners, maxScore := DetermineWinners(g.participants)
	won := make(map[*Participant]bool, len(winners))
	for _, p := range winners {
		won[p] = true
	}

	result := &entities.RoundResult{
		ID:           uuid.New().String(),
		TableID:      g.ID,
		Number:       g.rounds,
		CompletedAt:  time.Now(),
		MaxScore:     maxScore,
		Aborted:      aborted,
		Participants: make([]*entities.ParticipantResult, 0, len(g.participants)),
	}

	for _, p := range g.participants {
		cards := make([]string, 0, len(p.Hand.Cards))
		for _, card := range p.Hand.Cards {
			cards = append(cards, card.Face())
		}
		result.Participants = append(result.Participants, &entities.ParticipantResult{
			ParticipantID: p.ID,
			Name:          p.Name,
			Role:          string(p.Role),
			Cards:         cards,
			Score:         p.Score(),
			Result:        outcome(p, won[p]),
		})
		p.Turn = TurnResolved
	}

	g.log.Info("Round %d at table %s resolved: max score %d, %d winners", g.rounds, g.ID, maxScore, len(winners))
	return result
}

func outcome(p *Participant, won bool) entities.Result {
	switch {
	case won && p.Hand.Status == StatusBlackjack:
		return entities.ResultBlackjack
	case won:
		return entities.ResultWin
	case p.Hand.IsBust():
		return entities.ResultBust
	}
	return entities.ResultLose
}

func (g *Game) show(event Event) {
	event.Round = g.rounds
	g.display.Show(event)
}
