package shared

import (
	"math/rand"
)

// DeckSize is the number of cards in a full Briscola deck.
const DeckSize = 40

// Deck represents the draw pile. Cards are drawn from the end of the
// slice; index 0 is the bottom of the pile.
type Deck struct {
	Cards []Card
}

// NewDeck creates a standard 40-card Briscola deck in suit order.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := 1; rank <= 10; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the top card. The second return value is
// false when the deck is empty; an empty deck is never an error.
func (d *Deck) Draw() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card, true
}

// DrawMultiple draws up to n cards from the top, stopping early if the
// deck runs out.
func (d *Deck) DrawMultiple(n int) []Card {
	drawn := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Draw()
		if !ok {
			break
		}
		drawn = append(drawn, card)
	}
	return drawn
}

// PeekBottom returns the bottom card without removing it.
func (d *Deck) PeekBottom() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	return d.Cards[0], true
}

// TakeBottom removes and returns the bottom card. Used once per game to
// claim the trump indicator after the opening deal.
func (d *Deck) TakeBottom() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, true
}

// Remaining returns the number of drawable cards left in the pile.
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
