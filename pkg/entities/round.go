package entities

import (
	"time"

	"github.com/fadedpez/carddeal/pkg/cards"
	"github.com/fadedpez/carddeal/pkg/games/common"
)

// Round is one completed setup, shuffle, register and deal pass
type Round struct {
	ID          string
	DealtAt     time.Time
	Seed        int64
	ShuffleMode string
	Deck        *cards.Deck
	Players     []*common.Player
	// Dealt is false when there was nobody to deal to
	Dealt bool
}

// CardsDealt returns the total number of cards held across all hands
func (r *Round) CardsDealt() int {
	total := 0
	for _, p := range r.Players {
		total += len(p.Hand)
	}
	return total
}
