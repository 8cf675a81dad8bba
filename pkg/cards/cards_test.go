package cards

import (
	"testing"

	"github.com/fadedpez/carddeal/internal/randutil"
	"github.com/fadedpez/carddeal/internal/types"
	"github.com/stretchr/testify/suite"
)

// scriptedRNG returns the queued draws in order
type scriptedRNG struct {
	draws []int
	calls []int
}

func (r *scriptedRNG) IntN(n int) int {
	r.calls = append(r.calls, n)
	v := r.draws[0]
	r.draws = r.draws[1:]
	return v
}

type CardsTestSuite struct {
	suite.Suite
}

func TestCardsSuite(t *testing.T) {
	suite.Run(t, new(CardsTestSuite))
}

func (s *CardsTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{name: "ace of hearts", card: Card{Rank: Ace, Suit: Heart}, expected: "Ace Heart"},
		{name: "ten of clubs", card: Card{Rank: Ten, Suit: Club}, expected: "Ten Club"},
		{name: "queen of diamonds", card: Card{Rank: Queen, Suit: Diamond}, expected: "Queen Diamond"},
		{name: "king of spades", card: Card{Rank: King, Suit: Spade}, expected: "King Spade"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String(), "Card string representation should match expected")
		})
	}
}

func (s *CardsTestSuite) TestRankNames() {
	expected := []string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King",
	}
	for i, name := range expected {
		s.Equal(name, Rank(i+1).String())
	}
}

func (s *CardsTestSuite) TestOutOfRangeNamesPanic() {
	s.Panics(func() { _ = Rank(0).String() })
	s.Panics(func() { _ = Rank(14).String() })
	s.Panics(func() { _ = Suit(0).String() })
	s.Panics(func() { _ = Suit(5).String() })
}

func (s *CardsTestSuite) TestValidate() {
	s.NoError(Validate(Card{Rank: Jack, Suit: Spade}))

	err := Validate(Card{Rank: 14, Suit: Spade})
	s.True(types.IsDealError(err, types.ErrInvalidCard))

	err = Validate(Card{Rank: Ace, Suit: 9})
	s.True(types.IsDealError(err, types.ErrInvalidCard))
}

func (s *CardsTestSuite) TestNewDeck() {
	// Execute
	deck := NewDeck()

	// Assert
	s.NotNil(deck, "Deck should not be nil")
	s.Len(deck.Cards, DeckSize, "Deck should have 52 cards")

	suits := map[Suit]int{}
	ranks := map[Rank]int{}
	seen := map[Card]bool{}
	for _, card := range deck.Cards {
		s.NoError(Validate(card))
		s.False(seen[card], "Card %v should appear once", card)
		seen[card] = true
		suits[card.Suit]++
		ranks[card.Rank]++
	}

	s.Len(suits, 4)
	for suit, count := range suits {
		s.Equal(13, count, "Each suit should have 13 cards: %s", suit)
	}
	s.Len(ranks, 13)
	for rank, count := range ranks {
		s.Equal(4, count, "Each rank should have 4 cards: %s", rank)
	}
}

func (s *CardsTestSuite) TestNewDeckOrder() {
	deck := NewDeck()

	s.Equal(Card{Rank: Ace, Suit: Heart}, deck.Cards[0])
	s.Equal(Card{Rank: King, Suit: Heart}, deck.Cards[12])
	s.Equal(Card{Rank: Ace, Suit: Spade}, deck.Cards[13])
	s.Equal(Card{Rank: Ace, Suit: Diamond}, deck.Cards[26])
	s.Equal(Card{Rank: King, Suit: Club}, deck.Cards[51])
	s.Equal(NewDeck().Cards, deck.Cards, "Pre-shuffle order should be deterministic")
}

func (s *CardsTestSuite) TestShuffleSwapsAcrossWholeDeck() {
	// Setup
	deck := &Deck{Cards: []Card{
		{Rank: Ace, Suit: Heart},
		{Rank: Two, Suit: Heart},
		{Rank: Three, Suit: Heart},
	}}
	rng := &scriptedRNG{draws: []int{2, 0, 1}}

	// Execute
	deck.Shuffle(rng)

	// Assert
	s.Equal([]int{3, 3, 3}, rng.calls, "Every draw should span the whole deck")
	// [A,2,3] -> swap(0,2) [3,2,A] -> swap(1,0) [2,3,A] -> swap(2,1) [2,A,3]
	s.Equal([]Card{
		{Rank: Two, Suit: Heart},
		{Rank: Ace, Suit: Heart},
		{Rank: Three, Suit: Heart},
	}, deck.Cards)
}

func (s *CardsTestSuite) TestShuffleUniformDrawsFromSuffix() {
	deck := &Deck{Cards: []Card{
		{Rank: Ace, Suit: Club},
		{Rank: Two, Suit: Club},
		{Rank: Three, Suit: Club},
	}}
	rng := &scriptedRNG{draws: []int{0, 1}}

	deck.ShuffleUniform(rng)

	s.Equal([]int{3, 2}, rng.calls)
	// [A,2,3] -> swap(2,0) [3,2,A] -> swap(1,1) [3,2,A]
	s.Equal([]Card{
		{Rank: Three, Suit: Club},
		{Rank: Two, Suit: Club},
		{Rank: Ace, Suit: Club},
	}, deck.Cards)
}

func (s *CardsTestSuite) TestShuffleIsPermutation() {
	shuffles := map[string]func(*Deck, Intner){
		"classic": (*Deck).Shuffle,
		"uniform": (*Deck).ShuffleUniform,
	}

	for name, shuffle := range shuffles {
		s.Run(name, func() {
			for seed := int64(0); seed < 200; seed++ {
				deck := NewDeck()
				shuffle(deck, randutil.New(seed))

				s.Require().Len(deck.Cards, DeckSize)
				counts := make(map[Card]int)
				for _, card := range deck.Cards {
					counts[card]++
				}
				s.Require().Len(counts, DeckSize, "seed %d lost or duplicated a card", seed)
			}
		})
	}
}

func (s *CardsTestSuite) TestShuffleChangesOrder() {
	deck := NewDeck()

	deck.Shuffle(randutil.New(7))

	s.NotEqual(NewDeck().Cards, deck.Cards, "Shuffled deck should be in different order than original")
}

func (s *CardsTestSuite) TestShuffleSameSeedSameOrder() {
	deck1 := NewDeck()
	deck2 := NewDeck()

	deck1.Shuffle(randutil.New(99))
	deck2.Shuffle(randutil.New(99))

	s.Equal(deck1.Cards, deck2.Cards)
}

func (s *CardsTestSuite) TestContains() {
	deck := NewDeck()

	s.True(deck.Contains(Card{Rank: Seven, Suit: Diamond}))
	s.False(deck.Contains(Card{Rank: 14, Suit: Diamond}))
	s.False((&Deck{}).Contains(Card{Rank: Ace, Suit: Heart}))
}
