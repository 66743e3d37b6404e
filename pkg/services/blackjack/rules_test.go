package blackjack

import (
	"testing"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func card(rank entities.Rank) *entities.Card {
	return &entities.Card{Suit: entities.Spades, Rank: rank, FaceUp: true}
}

func handOf(ranks ...entities.Rank) *Hand {
	h := NewHand()
	for _, rank := range ranks {
		_ = h.AddCard(card(rank))
	}
	return h
}

func withScore(name string, role Role, score int) *Participant {
	p := newParticipant(0, name, role)
	p.Hand.Score = score
	return p
}

func (s *RulesTestSuite) TestGetCardValue() {
	testCases := []struct {
		rank     entities.Rank
		expected int
	}{
		{entities.Two, 2},
		{entities.Seven, 7},
		{entities.Ten, 10},
		{entities.Jack, 10},
		{entities.Queen, 10},
		{entities.King, 10},
		{entities.Ace, 11},
	}

	for _, tc := range testCases {
		s.Run(string(tc.rank), func() {
			s.Equal(tc.expected, GetCardValue(card(tc.rank)))
		})
	}
}

func (s *RulesTestSuite) TestApplyCard() {
	testCases := []struct {
		name    string
		ranks   []entities.Rank
		score   int
		softAce bool
		status  Status
	}{
		{
			name:   "no aces bust",
			ranks:  []entities.Rank{entities.Ten, entities.Nine, entities.Five},
			score:  24,
			status: StatusBusted,
		},
		{
			name:    "ace then king",
			ranks:   []entities.Rank{entities.Ace, entities.King},
			score:   21,
			softAce: true,
		},
		{
			name:    "king then ace",
			ranks:   []entities.Rank{entities.King, entities.Ace},
			score:   21,
			softAce: true,
		},
		{
			name:  "soft ace drops to avoid bust",
			ranks: []entities.Rank{entities.Ace, entities.Five, entities.King},
			score: 16,
		},
		{
			name:    "second ace counts one",
			ranks:   []entities.Rank{entities.Ace, entities.Ace},
			score:   12,
			softAce: true,
		},
		{
			name:  "two aces and a king",
			ranks: []entities.Rank{entities.Ace, entities.Ace, entities.King},
			score: 12,
		},
		{
			name:   "downgrade happens only once",
			ranks:  []entities.Rank{entities.Ace, entities.Nine, entities.Five, entities.King},
			score:  25,
			status: StatusBusted,
		},
		{
			name:  "ace at eleven counts one",
			ranks: []entities.Rank{entities.Five, entities.Six, entities.Ace},
			score: 12,
		},
		{
			name:    "ace at ten counts eleven",
			ranks:   []entities.Rank{entities.Five, entities.Five, entities.Ace},
			score:   21,
			softAce: true,
		},
		{
			name:  "three card twenty one",
			ranks: []entities.Rank{entities.Seven, entities.Seven, entities.Seven},
			score: 21,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			h := handOf(tc.ranks...)

			s.Equal(tc.score, h.Score, "Score should match")
			s.Equal(tc.softAce, h.SoftAce, "Soft ace flag should match")
			s.Equal(tc.status, h.Status, "Status should match")
		})
	}
}

func (s *RulesTestSuite) TestApplyCardKeepsAtMostOneSoftAce() {
	rng := entities.NewRNG(7)

	for i := 0; i < 500; i++ {
		deck := entities.NewDeck()
		deck.Shuffle(rng)
		h := NewHand()
		hard := 0

		for h.Status != StatusBusted {
			c, err := deck.Deal(true)
			s.Require().NoError(err)
			s.Require().NoError(h.AddCard(c))
			if c.IsAce() {
				hard++
			} else {
				hard += GetCardValue(c)
			}

			expected := hard
			if h.SoftAce {
				expected += softAceAdjustment
			}
			s.Require().Equal(expected, h.Score, "Score should be the hard total plus at most one soft ace")
			s.Require().GreaterOrEqual(h.Score, 0)
			s.Require().Equal(h.Score > BlackjackScore, h.IsBust())
		}
	}
}

func (s *RulesTestSuite) TestBotDecision() {
	testCases := []struct {
		name      string
		score     int
		threshold int
		expected  Action
	}{
		{name: "below threshold hits", score: 15, threshold: 16, expected: ActionHit},
		{name: "at threshold stands", score: 16, threshold: 16, expected: ActionStand},
		{name: "above threshold stands", score: 19, threshold: 14, expected: ActionStand},
		{name: "cautious bot hits on 17", score: 17, threshold: 18, expected: ActionHit},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, BotDecision(tc.score, tc.threshold))
		})
	}
}

func (s *RulesTestSuite) TestDealerDecision() {
	for score := 2; score <= 26; score++ {
		action := DealerDecision(score)
		if score < DealerStandsOn {
			s.Equal(ActionHit, action, "Dealer should hit on %d", score)
		} else {
			s.Equal(ActionStand, action, "Dealer should stand on %d", score)
		}
	}
}

func (s *RulesTestSuite) TestDrawBotThreshold() {
	rng := entities.NewRNG(3)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		threshold := DrawBotThreshold(rng)
		s.Require().GreaterOrEqual(threshold, BotMinThreshold)
		s.Require().LessOrEqual(threshold, BotMaxThreshold)
		seen[threshold] = true
	}

	s.Len(seen, BotMaxThreshold-BotMinThreshold+1, "Every threshold should be reachable")
}

func (s *RulesTestSuite) TestDetermineWinners() {
	testCases := []struct {
		name     string
		table    []*Participant
		winners  []string
		maxScore int
	}{
		{
			name: "tie with dealer shares the win",
			table: []*Participant{
				withScore("Human", RoleHuman, 20),
				withScore("Bot", RoleBot, 21),
				withScore("Dealer", RoleDealer, 21),
			},
			winners:  []string{"Bot", "Dealer"},
			maxScore: 21,
		},
		{
			name: "bust excluded regardless of score",
			table: []*Participant{
				withScore("Human", RoleHuman, 24),
				withScore("Bot", RoleBot, 15),
				withScore("Dealer", RoleDealer, 14),
			},
			winners:  []string{"Bot"},
			maxScore: 15,
		},
		{
			name: "later higher score clears earlier winners",
			table: []*Participant{
				withScore("A", RoleHuman, 18),
				withScore("B", RoleHuman, 18),
				withScore("C", RoleBot, 19),
				withScore("Dealer", RoleDealer, 17),
			},
			winners:  []string{"C"},
			maxScore: 19,
		},
		{
			name: "everybody busts",
			table: []*Participant{
				withScore("Human", RoleHuman, 22),
				withScore("Bot", RoleBot, 25),
				withScore("Dealer", RoleDealer, 23),
			},
			winners:  []string{},
			maxScore: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			winners, maxScore := DetermineWinners(tc.table)

			names := make([]string, 0, len(winners))
			for _, p := range winners {
				names = append(names, p.Name)
			}
			s.Equal(tc.winners, names)
			s.Equal(tc.maxScore, maxScore)
		})
	}
}
