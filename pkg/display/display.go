package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fadedpez/carddeal/pkg/cards"
	"github.com/fadedpez/carddeal/pkg/entities"
	"github.com/fadedpez/carddeal/pkg/games/common"
)

// Separator is printed before each player's hand
const Separator = "====================="

// Printer writes decks and hands as plain text lines
type Printer struct {
	w *bufio.Writer
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// PrintRound prints the no-players notice when nothing was dealt, then the
// deck, then every player's hand in registration order.
func (p *Printer) PrintRound(r *entities.Round, notice string) error {
	if !r.Dealt && notice != "" {
		fmt.Fprintln(p.w, notice)
	}
	p.writeDeck(r.Deck)
	p.writePlayers(r.Players)
	return p.w.Flush()
}

// PrintDeck prints one "<Rank> <Suit>" line per card
func (p *Printer) PrintDeck(deck *cards.Deck) error {
	p.writeDeck(deck)
	return p.w.Flush()
}

// PrintPlayers prints a separator, the player's name and their cards for each player
func (p *Printer) PrintPlayers(players []*common.Player) error {
	p.writePlayers(players)
	return p.w.Flush()
}

func (p *Printer) writeDeck(deck *cards.Deck) {
	if deck == nil {
		return
	}
	p.writeCards(deck.Cards)
}

func (p *Printer) writePlayers(players []*common.Player) {
	for _, player := range players {
		fmt.Fprintln(p.w, Separator)
		fmt.Fprintf(p.w, "%s :\n", player.Name)
		p.writeCards(player.Hand)
	}
}

func (p *Printer) writeCards(hand []cards.Card) {
	for _, card := range hand {
		fmt.Fprintln(p.w, card.String())
	}
}
