package cards

// Intner draws uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Intner interface {
	IntN(n int) int
}

// Deck represents a deck of cards
type Deck struct {
	Cards []Card
}

// NewDeck creates the ordered 52-card deck: suits Heart, Spade, Diamond, Club,
// each holding ranks Ace through King.
func NewDeck() *Deck {
	deck := &Deck{Cards: make([]Card, 0, DeckSize)}
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			deck.Cards = append(deck.Cards, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// Shuffle permutes the deck in place by swapping every position with a
// position drawn from the whole deck. The resulting distribution is not
// uniform; use ShuffleUniform for that.
func (d *Deck) Shuffle(rng Intner) {
	n := len(d.Cards)
	for i := 0; i < n; i++ {
		j := rng.IntN(n)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// ShuffleUniform permutes the deck in place with Fisher-Yates
func (d *Deck) ShuffleUniform(rng Intner) {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Contains reports whether the deck holds card
func (d *Deck) Contains(card Card) bool {
	for _, c := range d.Cards {
		if c == card {
			return true
		}
	}
	return false
}
