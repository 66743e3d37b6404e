package entities

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{
			name:     "ace of spades",
			card:     Card{Suit: Spades, Rank: Ace, FaceUp: true},
			expected: "A♠",
		},
		{
			name:     "ten of diamonds",
			card:     Card{Suit: Diamonds, Rank: Ten, FaceUp: true},
			expected: "10♦",
		},
		{
			name:     "face down card is hidden",
			card:     Card{Suit: Hearts, Rank: King},
			expected: "??",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String(), "Card string representation should match expected")
		})
	}
}

func (s *DeckTestSuite) TestNewDeck() {
	// Execute
	deck := NewDeck()

	// Assert
	s.Require().NotNil(deck)
	s.Len(deck.Cards, StandardDeckSize, "Deck should have 52 cards")

	seen := make(map[Card]int)
	for _, card := range deck.Cards {
		s.False(card.FaceUp, "Fresh cards should be face down")
		seen[*card]++
	}
	s.Len(seen, StandardDeckSize, "Every card should be unique")
}

func (s *DeckTestSuite) TestScaleForTableSize() {
	testCases := []struct {
		name          string
		totalPlayers  int
		expectedCards int
	}{
		{name: "single player", totalPlayers: 1, expectedCards: 52},
		{name: "full first deck", totalPlayers: 6, expectedCards: 52},
		{name: "seventh player adds a deck", totalPlayers: 7, expectedCards: 104},
		{name: "twelve players", totalPlayers: 12, expectedCards: 104},
		{name: "thirteen players", totalPlayers: 13, expectedCards: 156},
		{name: "large table", totalPlayers: 40, expectedCards: 52 * 7},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			deck := NewDeck()

			err := deck.ScaleForTableSize(tc.totalPlayers)

			s.Require().NoError(err)
			s.Equal(tc.expectedCards, deck.Len())
			s.Equal(StandardDeckSize*((tc.totalPlayers-1)/6+1), deck.Len())

			// Replicated cards are distinct objects
			pointers := make(map[*Card]bool)
			for _, card := range deck.Cards {
				pointers[card] = true
			}
			s.Len(pointers, tc.expectedCards)
		})
	}
}

func (s *DeckTestSuite) TestScaleForTableSizeRejectsEmptyTable() {
	deck := NewDeck()

	err := deck.ScaleForTableSize(0)

	s.ErrorIs(err, ErrInvalidTableSize)
	s.Equal(StandardDeckSize, deck.Len(), "Deck should be untouched")
}

func (s *DeckTestSuite) TestShuffleIsSeedable() {
	deck1 := NewDeck()
	deck2 := NewDeck()
	original := NewDeck()

	deck1.Shuffle(NewRNG(42))
	deck2.Shuffle(NewRNG(42))

	moved := false
	for i := range deck1.Cards {
		s.Equal(*deck1.Cards[i], *deck2.Cards[i], "Same seed should give the same order")
		if *deck1.Cards[i] != *original.Cards[i] {
			moved = true
		}
	}
	s.True(moved, "Shuffled deck should be in different order than original")
	s.Len(deck1.Cards, StandardDeckSize, "Shuffled deck should still have 52 cards")
}

func (s *DeckTestSuite) TestCut() {
	testCases := []struct {
		name  string
		size  int
		first int // index in the original deck of the new first card
	}{
		{name: "even deck", size: 52, first: 26},
		{name: "odd deck", size: 5, first: 2},
		{name: "single card", size: 1, first: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			deck := &Deck{Cards: NewDeck().Cards[:tc.size]}
			original := append([]*Card(nil), deck.Cards...)

			deck.Cut()

			s.Require().Len(deck.Cards, tc.size)
			s.Same(original[tc.first], deck.Cards[0])
			for i := range deck.Cards {
				s.Same(original[(i+tc.first)%tc.size], deck.Cards[i])
			}
		})
	}
}

func (s *DeckTestSuite) TestCutEmptyDeck() {
	deck := &Deck{}

	deck.Cut()

	s.Equal(0, deck.Len())
}

func (s *DeckTestSuite) TestDealTakesTopCard() {
	deck := NewDeck()
	top := deck.Cards[len(deck.Cards)-1]

	card, err := deck.Deal(true)

	s.Require().NoError(err)
	s.Same(top, card, "Deal should return the last card")
	s.True(card.FaceUp)
	s.Equal(StandardDeckSize-1, deck.Len())

	hidden, err := deck.Deal(false)
	s.Require().NoError(err)
	s.False(hidden.FaceUp)
}

func (s *DeckTestSuite) TestDealEmptyDeck() {
	deck := &Deck{}

	card, err := deck.Deal(true)

	s.Nil(card)
	s.ErrorIs(err, ErrEmptyDeck)
}

func (s *DeckTestSuite) TestReturnAppendsWithoutShuffle() {
	deck := NewDeck()
	first, _ := deck.Deal(true)
	second, _ := deck.Deal(true)

	deck.Return(first, second)

	s.Equal(StandardDeckSize, deck.Len())
	s.Same(second, deck.Cards[deck.Len()-1], "Last returned card should be the new top")
	s.Same(first, deck.Cards[deck.Len()-2])
}
