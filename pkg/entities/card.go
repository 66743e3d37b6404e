package entities

import "fmt"

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "SPADES"
	Hearts   Suit = "HEARTS"
	Clubs    Suit = "CLUBS"
	Diamonds Suit = "DIAMONDS"
)

// Suits lists the suits in the order a fresh deck is built
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Symbol returns the unicode glyph for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks lists the ranks in the order a fresh deck is built
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card. Suit and Rank never change once the card
// is built; only FaceUp is flipped as the card moves between deck and hand.
type Card struct {
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	FaceUp bool `json:"face_up"`
}

// NewCard creates a new face-down card
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{
		Suit: suit,
		Rank: rank,
	}
}

// IsAce reports whether the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// String returns the string representation of the card, hiding face-down cards
func (c *Card) String() string {
	if !c.FaceUp {
		return "??"
	}
	return c.Face()
}

// Face returns the rank and suit regardless of visibility
func (c *Card) Face() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit.Symbol())
}
