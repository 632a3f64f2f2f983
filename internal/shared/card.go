package shared

import (
	"fmt"
	"strconv"
)

// Suit represents the suit of a card (Denari, Coppe, Spade, Bastoni).
// The constant values double as the wire identifiers.
type Suit string

const (
	Denari  Suit = "denari"
	Coppe   Suit = "coppe"
	Spade   Suit = "spade"
	Bastoni Suit = "bastoni"
)

// Suits lists the four suits in deck-building order.
var Suits = []Suit{Denari, Coppe, Spade, Bastoni}

// suitNames maps wire identifiers to display names.
var suitNames = map[Suit]string{
	Denari:  "Denari",
	Coppe:   "Coppe",
	Spade:   "Spade",
	Bastoni: "Bastoni",
}

// Valid reports whether s is one of the four Briscola suits.
func (s Suit) Valid() bool {
	_, ok := suitNames[s]
	return ok
}

// Name returns the display name of the suit (e.g. "Denari").
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return string(s)
}

// Card represents a single card in the Briscola game. Identity is the
// (Suit, Rank) pair, so cards compare with ==.
type Card struct {
	Suit Suit // The suit of the card
	Rank int  // The rank of the card, 1 to 10
}

// Define card points for scoring. The total over a full deck is 120.
var cardPoints = map[int]int{
	1:  11,
	3:  10,
	10: 4, // Re
	9:  3, // Cavallo
	8:  2, // Fante
}

// Define card strength for trick comparison (higher beats lower):
// 1, 3, 10, 9, 8, 7, 6, 5, 4, 2 from strongest to weakest.
var cardStrength = map[int]int{
	1:  10,
	3:  9,
	10: 8,
	9:  7,
	8:  6,
	7:  5,
	6:  4,
	5:  3,
	4:  2,
	2:  1,
}

var rankNames = map[int]string{
	1:  "Asso",
	8:  "Fante",
	9:  "Cavallo",
	10: "Re",
}

// NewCard builds a card after validating suit and rank.
func NewCard(suit Suit, rank int) (Card, bool) {
	if !suit.Valid() || rank < 1 || rank > 10 {
		return Card{}, false
	}
	return Card{Suit: suit, Rank: rank}, true
}

// Points returns the card's scoring value (Asso 11, Tre 10, Re 4,
// Cavallo 3, Fante 2, everything else 0).
func (c Card) Points() int {
	return cardPoints[c.Rank]
}

// Strength returns the card's rank order within a suit (higher is better).
func (c Card) Strength() int {
	return cardStrength[c.Rank]
}

// IsTrump reports whether the card belongs to the trump suit.
func (c Card) IsTrump(trump Suit) bool {
	return c.Suit == trump
}

// Hidden reports whether the card is an opaque placeholder standing in
// for an opponent card the server has not revealed.
func (c Card) Hidden() bool {
	return c.Rank == 0
}

// ID returns the stable wire identifier for the card, e.g. "denari_3".
func (c Card) ID() string {
	return fmt.Sprintf("%s_%d", c.Suit, c.Rank)
}

// RankName returns the Italian rank name for face cards and the digit
// otherwise.
func (c Card) RankName() string {
	if name, ok := rankNames[c.Rank]; ok {
		return name
	}
	return strconv.Itoa(c.Rank)
}

func (c Card) String() string {
	if c.Hidden() {
		return "???"
	}
	return fmt.Sprintf("%s di %s", c.RankName(), c.Suit.Name())
}

// Compare decides a trick between two cards, where a was played first.
// It returns 1 if a keeps the trick and 2 if b takes it:
// a trump card beats any non-trump card; between two trumps the higher
// strength wins; a card of the led suit beats an off-suit card; between
// two cards of the led suit the higher strength wins; if neither card
// is trump nor of the led suit, the first card played stands.
func Compare(a, b Card, trump, lead Suit) int {
	if a.Suit == trump || b.Suit == trump {
		if a.Suit != trump {
			return 2
		}
		if b.Suit != trump {
			return 1
		}
		if b.Strength() > a.Strength() {
			return 2
		}
		return 1
	}
	if a.Suit == lead || b.Suit == lead {
		if a.Suit != lead {
			return 2
		}
		if b.Suit != lead {
			return 1
		}
		if b.Strength() > a.Strength() {
			return 2
		}
		return 1
	}
	return 1
}

// PointsOf sums the point values of the given cards.
func PointsOf(cards []Card) int {
	total := 0
	for _, card := range cards {
		total += card.Points()
	}
	return total
}
