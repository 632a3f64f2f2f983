package ai

import "briscola-game/internal/shared"

// CardStatus tracks what the bot knows about one of the 40 cards.
type CardStatus int

const (
	StatusUnseen CardStatus = iota
	StatusSeen
)

var suitSlots = map[shared.Suit]int{
	shared.Denari:  0,
	shared.Coppe:   1,
	shared.Spade:   2,
	shared.Bastoni: 3,
}

// Memory remembers which cards have hit the table. One instance lives
// for a whole match and is reset between matches.
type Memory struct {
	cards [shared.DeckSize]CardStatus
}

func NewMemory() *Memory {
	return &Memory{}
}

// index maps a card to its slot: ten ranks per suit.
func index(c shared.Card) (int, bool) {
	slot, ok := suitSlots[c.Suit]
	if !ok || c.Rank < 1 || c.Rank > 10 {
		return 0, false
	}
	return slot*10 + c.Rank - 1, true
}

// MarkSeen records cards revealed by play. Placeholders and junk are
// ignored.
func (m *Memory) MarkSeen(cards ...shared.Card) {
	for _, c := range cards {
		if i, ok := index(c); ok {
			m.cards[i] = StatusSeen
		}
	}
}

// Seen reports whether the card has already been played.
func (m *Memory) Seen(c shared.Card) bool {
	i, ok := index(c)
	return ok && m.cards[i] == StatusSeen
}

// SeenInSuit counts how many cards of the suit are out of play.
func (m *Memory) SeenInSuit(suit shared.Suit) int {
	slot, ok := suitSlots[suit]
	if !ok {
		return 0
	}
	count := 0
	for rank := 0; rank < 10; rank++ {
		if m.cards[slot*10+rank] == StatusSeen {
			count++
		}
	}
	return count
}

// Reset wipes the memory for a new match.
func (m *Memory) Reset() {
	m.cards = [shared.DeckSize]CardStatus{}
}
