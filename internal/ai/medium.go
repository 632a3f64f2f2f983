package ai

import (
	"briscola-game/internal/shared"
)

// MediumBot follows fixed rules: lead cheap, beat valuable led cards as
// cheaply as possible, never answer a trump lead with trump.
type MediumBot struct{}

func (b *MediumBot) ChooseCard(view *View) (shared.Card, bool) {
	if len(view.Hand) == 0 {
		return shared.Card{}, false
	}
	if len(view.Hand) == 1 {
		return view.Hand[0], true
	}
	if view.Led == nil {
		return b.lead(view), true
	}
	return b.follow(view), true
}

// lead plays the lowest-points non-trump card; an all-trump hand falls
// back to the lowest trump.
func (b *MediumBot) lead(view *View) shared.Card {
	return discardPlain(view.Hand, view.Trump)
}

func (b *MediumBot) follow(view *View) shared.Card {
	led := *view.Led

	// A valuable led card is worth beating even at a price.
	if led.Points() >= 10 {
		if c, ok := cheapestBeater(view.Hand, led, view.Trump); ok {
			return c
		}
		return lowestByPoints(view.Hand)
	}

	// Never spend trump to take a cheap trump lead.
	if led.IsTrump(view.Trump) {
		return discardPlain(view.Hand, view.Trump)
	}

	// Take a cheap win inside the led suit when one exists.
	var suited []shared.Card
	for _, c := range view.Hand {
		if c.Suit == led.Suit {
			suited = append(suited, c)
		}
	}
	if c, ok := cheapestBeater(suited, led, view.Trump); ok {
		return c
	}
	return lowestByPoints(view.Hand)
}

// cheapestBeater finds the least costly card that takes the led card:
// non-trump beaters win over trump ones, then lower points, then lower
// strength.
func cheapestBeater(cards []shared.Card, led shared.Card, trump shared.Suit) (shared.Card, bool) {
	var best shared.Card
	found := false
	for _, c := range cards {
		if !beats(c, led, trump) {
			continue
		}
		if !found || cheaperBeater(c, best, trump) {
			best = c
			found = true
		}
	}
	return best, found
}

func cheaperBeater(a, b shared.Card, trump shared.Suit) bool {
	if a.IsTrump(trump) != b.IsTrump(trump) {
		return !a.IsTrump(trump)
	}
	if a.Points() != b.Points() {
		return a.Points() < b.Points()
	}
	return a.Strength() < b.Strength()
}
