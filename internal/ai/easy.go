package ai

import (
	"math/rand"

	"briscola-game/internal/shared"
)

// EasyBot plays a uniformly random card from its hand.
type EasyBot struct{}

func (b *EasyBot) ChooseCard(view *View) (shared.Card, bool) {
	if len(view.Hand) == 0 {
		return shared.Card{}, false
	}
	if len(view.Hand) == 1 {
		return view.Hand[0], true
	}
	return view.Hand[rand.Intn(len(view.Hand))], true
}

func (b *EasyBot) OnEvent(event any) {}
