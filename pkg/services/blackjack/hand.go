package blackjack

import (
	"errors"

	"github.com/fadedpez/blackjack/pkg/entities"
)

var (
	ErrHandBust    = errors.New("hand is bust")
	ErrInvalidCard = errors.New("invalid card")
)

// Status annotates the outcome of a hand
type Status string

const (
	StatusNone      Status = ""
	StatusBusted    Status = "BUSTED"
	StatusBlackjack Status = "BLACKJACK"
)

// Hand represents a participant's cards and running score for one round.
// Cards keeps deal order. A face-down card is held but not scored until
// Reveal is called.
type Hand struct {
	Cards   []*entities.Card
	Score   int
	SoftAce bool // An ace currently counts 11 and can still drop to 1
	Status  Status
}

// NewHand creates a new empty hand
func NewHand() *Hand {
	return &Hand{
		Cards: make([]*entities.Card, 0),
	}
}

// AddCard adds a face-up card to the hand and rescores it
func (h *Hand) AddCard(card *entities.Card) error {
	if err := h.canTake(card); err != nil {
		return err
	}

	h.Cards = append(h.Cards, card)
	ApplyCard(h, card)
	return nil
}

// AddHidden holds a face-down card without scoring it
func (h *Hand) AddHidden(card *entities.Card) error {
	if err := h.canTake(card); err != nil {
		return err
	}

	card.FaceUp = false
	h.Cards = append(h.Cards, card)
	return nil
}

func (h *Hand) canTake(card *entities.Card) error {
	if card == nil {
		return ErrInvalidCard
	}
	if h.Status == StatusBusted {
		return ErrHandBust
	}
	return nil
}

// Reveal flips every face-down card in the hand and scores them in the order
// they were dealt. It returns the cards it flipped.
func (h *Hand) Reveal() []*entities.Card {
	revealed := make([]*entities.Card, 0, 1)
	for _, card := range h.Cards {
		if card.FaceUp {
			continue
		}
		card.FaceUp = true
		ApplyCard(h, card)
		revealed = append(revealed, card)
	}
	return revealed
}

// MarkBlackjack flags a natural. It only succeeds on a two card 21.
func (h *Hand) MarkBlackjack() bool {
	if !h.IsBlackjack() {
		return false
	}
	h.Status = StatusBlackjack
	return true
}

// IsBlackjack reports whether the hand is exactly two cards worth 21
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == InitialHandSize && h.Score == BlackjackScore
}

// IsBust checks if a hand exceeds 21
func (h *Hand) IsBust() bool {
	return h.Score > BlackjackScore
}

// Reset empties the hand and returns the cards it held, in deal order
func (h *Hand) Reset() []*entities.Card {
	cards := h.Cards
	h.Cards = make([]*entities.Card, 0)
	h.Score = 0
	h.SoftAce = false
	h.Status = StatusNone
	return cards
}
