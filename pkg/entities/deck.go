package entities

import (
	"errors"
	"fmt"
)

const (
	StandardDeckSize = 52
	PlayersPerDeck   = 6 // One extra standard deck is added for every 6 players
)

var (
	ErrEmptyDeck        = errors.New("deck is empty")
	ErrInvalidTableSize = errors.New("table needs at least one player")
)

// Deck is an ordered stack of cards. The last card in Cards is the top of
// the deck and is dealt first.
type Deck struct {
	Cards []*Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]*Card, 0, StandardDeckSize)

	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{Cards: cards}
}

// DeckMultiplier returns how many standard decks a table of totalPlayers needs
func DeckMultiplier(totalPlayers int) int {
	return (totalPlayers-1)/PlayersPerDeck + 1
}

// ScaleForTableSize replicates the deck so a table of totalPlayers does not
// run the shoe dry. It must be called once, before the first shuffle.
func (d *Deck) ScaleForTableSize(totalPlayers int) error {
	if totalPlayers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTableSize, totalPlayers)
	}

	base := d.Cards
	cards := make([]*Card, 0, len(base)*DeckMultiplier(totalPlayers))
	cards = append(cards, base...)
	for i := 1; i < DeckMultiplier(totalPlayers); i++ {
		for _, card := range base {
			cards = append(cards, NewCard(card.Suit, card.Rank))
		}
	}

	d.Cards = cards
	return nil
}

// Shuffle randomizes the order of every card in the deck
func (d *Deck) Shuffle(rng RNG) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Cut moves the front half of the deck behind the back half
func (d *Deck) Cut() {
	middle := len(d.Cards) / 2
	cut := make([]*Card, 0, len(d.Cards))
	cut = append(cut, d.Cards[middle:]...)
	cut = append(cut, d.Cards[:middle]...)
	d.Cards = cut
}

// Deal removes and returns the top card from the deck with the requested visibility
func (d *Deck) Deal(faceUp bool) (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEmptyDeck
	}
	top := len(d.Cards) - 1
	card := d.Cards[top]
	d.Cards[top] = nil
	d.Cards = d.Cards[:top]

	card.FaceUp = faceUp
	return card, nil
}

// Return appends collected cards to the deck in order. Nothing is reshuffled,
// so returned cards are the next ones dealt.
func (d *Deck) Return(cards ...*Card) {
	d.Cards = append(d.Cards, cards...)
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}
