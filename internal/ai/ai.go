// Package ai implements the three computer opponents: a random one, a
// rule-following one and a phase-aware one that counts cards.
package ai

import (
	"briscola-game/internal/shared"
)

// Level selects an AI difficulty tier.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// View is the read-only projection of game state handed to a Brain for
// one decision. It never aliases engine memory.
type View struct {
	Hand          []shared.Card
	Led           *shared.Card // Card led this trick; nil when leading
	Trump         shared.Suit
	MyScore       int
	OppScore      int
	DeckRemaining int // Drawable cards left, counting the held briscola
}

// Brain chooses a card to play for one seat.
type Brain interface {
	// ChooseCard picks a card from view.Hand. The second return value
	// is false only when the hand is empty.
	ChooseCard(view *View) (shared.Card, bool)
	// OnEvent feeds match happenings to brains that keep state between
	// decisions. Uninterested brains ignore it.
	OnEvent(event any)
}

// MatchStarted tells a brain a fresh match began.
type MatchStarted struct{}

// CardsPlayed reports the cards revealed by a resolved trick.
type CardsPlayed struct {
	Cards []shared.Card
}

// NewBrain returns the strategy for the requested difficulty. Unknown
// levels fall back to Easy.
func NewBrain(level Level) Brain {
	switch level {
	case Hard:
		return NewHardBot()
	case Medium:
		return &MediumBot{}
	default:
		return &EasyBot{}
	}
}

// split partitions a hand into plain cards and trumps.
func split(cards []shared.Card, trump shared.Suit) (plain, trumps []shared.Card) {
	for _, c := range cards {
		if c.IsTrump(trump) {
			trumps = append(trumps, c)
		} else {
			plain = append(plain, c)
		}
	}
	return plain, trumps
}

// beats reports whether answering with c takes a trick led with led.
func beats(c, led shared.Card, trump shared.Suit) bool {
	return shared.Compare(led, c, trump, led.Suit) == 2
}

// lowestByPoints picks the cheapest card, breaking ties by strength.
func lowestByPoints(cards []shared.Card) shared.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Points() < best.Points() ||
			(c.Points() == best.Points() && c.Strength() < best.Strength()) {
			best = c
		}
	}
	return best
}

// discardPlain throws the cheapest non-trump card, falling back to the
// cheapest trump when the hand holds nothing else.
func discardPlain(hand []shared.Card, trump shared.Suit) shared.Card {
	plain, trumps := split(hand, trump)
	if len(plain) > 0 {
		return lowestByPoints(plain)
	}
	return lowestByPoints(trumps)
}
