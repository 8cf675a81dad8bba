package cards

import (
	"fmt"

	"github.com/fadedpez/carddeal/internal/types"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// Suit represents a card suit, encoded 1-4
type Suit int

const (
	Heart Suit = iota + 1
	Spade
	Diamond
	Club
)

// Suits lists the suits in deck-building order
var Suits = []Suit{Heart, Spade, Diamond, Club}

var suitNames = [...]string{"", "Heart", "Spade", "Diamond", "Club"}

// Valid reports whether the suit code is in range
func (s Suit) Valid() bool {
	return s >= Heart && s <= Club
}

// String returns the display name of the suit. Suits are only built by
// NewDeck, so an out-of-range code is a programming error.
func (s Suit) String() string {
	if !s.Valid() {
		panic(fmt.Sprintf("cards: suit code %d out of range", int(s)))
	}
	return suitNames[s]
}

// Rank represents a card rank, encoded 1-13
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{
	"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// Valid reports whether the rank code is in range
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the display name of the rank
func (r Rank) String() string {
	if !r.Valid() {
		panic(fmt.Sprintf("cards: rank code %d out of range", int(r)))
	}
	return rankNames[r]
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns "<Rank> <Suit>", e.g. "Queen Diamond"
func (c Card) String() string {
	return c.Rank.String() + " " + c.Suit.String()
}

// Validate returns an INVALID_CARD error if either code is out of range
func Validate(c Card) error {
	if !c.Rank.Valid() {
		return types.NewDealError(types.ErrInvalidCard, fmt.Sprintf("rank %d out of range", int(c.Rank)))
	}
	if !c.Suit.Valid() {
		return types.NewDealError(types.ErrInvalidCard, fmt.Sprintf("suit %d out of range", int(c.Suit)))
	}
	return nil
}
