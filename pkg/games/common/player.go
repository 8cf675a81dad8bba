package common

import (
	"fmt"

	"github.com/fadedpez/carddeal/pkg/cards"
)

// Player represents a seat at the table
type Player struct {
	Name string
	Hand []cards.Card
}

// NewPlayer creates a new player with the given name and an empty hand
func NewPlayer(name string) *Player {
	return &Player{
		Name: name,
		Hand: make([]cards.Card, 0),
	}
}

// NewPlayers registers n players named "Player 1".."Player n". A non-positive
// n yields an empty registry.
func NewPlayers(n int) []*Player {
	if n < 0 {
		n = 0
	}
	players := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, NewPlayer(fmt.Sprintf("Player %d", i)))
	}
	return players
}

// AddCard adds a copy of the card to the player's hand
func (p *Player) AddCard(card cards.Card) {
	p.Hand = append(p.Hand, card)
}

// HandSize returns the number of cards held
func (p *Player) HandSize() int {
	return len(p.Hand)
}
