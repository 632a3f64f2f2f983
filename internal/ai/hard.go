package ai

import (
	"briscola-game/internal/shared"
)

// costWeights prices what a winning card gives away and fixes the
// phase thresholds used by the hard bot.
var costWeights = struct {
	Trump       int // any trump spent on a take
	BigTrump    int // extra for a trump ace or three
	Ace         int // any ace spent on a take
	Three       int // any three spent on a take
	ScarceTrump int // extra for trump once the deck is nearly out
	ScarceDeck  int // deck size at which trumps become precious
	TakePoints  int // table points that always justify the take
	FarBehind   int // score gap that forces aggressive leads
	LateDeck    int // deck size where late-game leads kick in
}{
	Trump:       5,
	BigTrump:    10,
	Ace:         8,
	Three:       7,
	ScarceTrump: 15,
	ScarceDeck:  3,
	TakePoints:  10,
	FarBehind:   20,
	LateDeck:    6,
}

// HardBot plays with phase awareness: endgame detection, the score
// differential, trump conservation and an ace-bait lead. It counts the
// cards it has seen across the match.
type HardBot struct {
	memory *Memory
}

func NewHardBot() *HardBot {
	return &HardBot{memory: NewMemory()}
}

func (b *HardBot) OnEvent(event any) {
	switch e := event.(type) {
	case MatchStarted:
		b.memory.Reset()
	case CardsPlayed:
		b.memory.MarkSeen(e.Cards...)
	}
}

func (b *HardBot) ChooseCard(view *View) (shared.Card, bool) {
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

func (b *HardBot) lead(view *View) shared.Card {
	// Ahead with no deck left: give nothing away.
	if isEndGame(view) && view.MyScore > view.OppScore {
		return safestLead(view.Hand, view.Trump)
	}

	// Far behind: force points onto the table with a high plain card.
	if view.OppScore-view.MyScore > costWeights.FarBehind {
		if c, ok := forcingLead(view.Hand, view.Trump); ok {
			return c
		}
	}

	// Late game ace bait: the same-suit three covers the answer.
	if isLateGame(view) {
		if ace, ok := aceBait(view.Hand); ok {
			return ace
		}
	}

	return b.exhaustionLead(view.Hand, view.Trump)
}

func (b *HardBot) follow(view *View) shared.Card {
	led := *view.Led
	tablePoints := led.Points()

	var winner shared.Card
	winnerCost := 0
	found := false
	for _, c := range view.Hand {
		if !beats(c, led, view.Trump) {
			continue
		}
		cost := takeCost(c, view)
		if !found || cost < winnerCost ||
			(cost == winnerCost && c.Strength() < winner.Strength()) {
			winner = c
			winnerCost = cost
			found = true
		}
	}
	if !found {
		return discardPlain(view.Hand, view.Trump)
	}

	if isEndGame(view) && view.MyScore < view.OppScore {
		// Behind with no deck left: every trick matters, take it.
		return winner
	}
	if tablePoints >= winnerCost || finalTrick(view) || tablePoints >= costWeights.TakePoints {
		return winner
	}
	return discardPlain(view.Hand, view.Trump)
}

// takeCost prices winning the trick with the card: its own points plus
// penalties for spending trump, aces and threes, with trump growing
// dearer as the deck runs out.
func takeCost(c shared.Card, view *View) int {
	cost := c.Points()
	if c.IsTrump(view.Trump) {
		cost += costWeights.Trump
		if c.Strength() >= 9 {
			cost += costWeights.BigTrump
		}
		if view.DeckRemaining <= costWeights.ScarceDeck {
			cost += costWeights.ScarceTrump
		}
	}
	if c.Rank == 1 {
		cost += costWeights.Ace
	}
	if c.Rank == 3 {
		cost += costWeights.Three
	}
	return cost
}

// exhaustionLead throws the lightest card, preferring suits the bot
// holds several of and, on equal weight, suits the table has already
// seen more of.
func (b *HardBot) exhaustionLead(hand []shared.Card, trump shared.Suit) shared.Card {
	counts := map[shared.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}

	pool, trumps := split(hand, trump)
	if len(pool) == 0 {
		pool = trumps
	}
	best := pool[0]
	for _, c := range pool[1:] {
		if b.leadBefore(c, best, counts) {
			best = c
		}
	}
	return best
}

// leadBefore orders lead candidates: lighter weight first, then longer
// held suits, then suits with more cards already out of play.
func (b *HardBot) leadBefore(c, incumbent shared.Card, counts map[shared.Suit]int) bool {
	if leadWeight(c) != leadWeight(incumbent) {
		return leadWeight(c) < leadWeight(incumbent)
	}
	if counts[c.Suit] != counts[incumbent.Suit] {
		return counts[c.Suit] > counts[incumbent.Suit]
	}
	return b.memory.SeenInSuit(c.Suit) > b.memory.SeenInSuit(incumbent.Suit)
}

// leadWeight combines points and strength; points dominate, strength
// separates the zero-point ranks.
func leadWeight(c shared.Card) int {
	return c.Points()*3 + c.Strength()
}

// safestLead is the lightest card by combined weight, non-trump first.
func safestLead(hand []shared.Card, trump shared.Suit) shared.Card {
	pool, trumps := split(hand, trump)
	if len(pool) == 0 {
		pool = trumps
	}
	best := pool[0]
	for _, c := range pool[1:] {
		if leadWeight(c) < leadWeight(best) {
			best = c
		}
	}
	return best
}

// forcingLead picks the strongest plain card to push the opponent into
// answering or conceding points.
func forcingLead(hand []shared.Card, trump shared.Suit) (shared.Card, bool) {
	plain, _ := split(hand, trump)
	if len(plain) == 0 {
		return shared.Card{}, false
	}
	best := plain[0]
	for _, c := range plain[1:] {
		if c.Strength() > best.Strength() {
			best = c
		}
	}
	return best, true
}

// aceBait finds an ace whose suit three is also in hand.
func aceBait(hand []shared.Card) (shared.Card, bool) {
	for _, c := range hand {
		if c.Rank != 1 {
			continue
		}
		for _, other := range hand {
			if other.Rank == 3 && other.Suit == c.Suit {
				return c, true
			}
		}
	}
	return shared.Card{}, false
}

func isLateGame(view *View) bool {
	return view.DeckRemaining <= costWeights.LateDeck
}

func isEndGame(view *View) bool {
	return view.DeckRemaining == 0
}

// finalTrick reports whether this play closes the match.
func finalTrick(view *View) bool {
	return view.DeckRemaining == 0 && len(view.Hand) == 1
}
