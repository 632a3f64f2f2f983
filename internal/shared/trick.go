package shared

// PlayedCard stores a card along with the seat of the player who played it.
type PlayedCard struct {
	Card   Card
	Player int
}

// Trick represents a single trick. First and Second are filled in play
// order; the lead suit and the leader are recorded from the first card.
// A trick exists only between the first card and resolution.
type Trick struct {
	First    *PlayedCard
	Second   *PlayedCard
	LeadSuit Suit
	Leader   int
}

// NewTrick creates an empty trick.
func NewTrick() *Trick {
	return &Trick{}
}

// Play records a card for the given seat. The first card played sets
// the lead suit and the leader.
func (t *Trick) Play(player int, card Card) {
	played := &PlayedCard{Card: card, Player: player}
	if t.First == nil {
		t.First = played
		t.LeadSuit = card.Suit
		t.Leader = player
		return
	}
	t.Second = played
}

// Complete reports whether both cards have been played.
func (t *Trick) Complete() bool {
	return t.First != nil && t.Second != nil
}

// Winner determines the winning seat of a complete trick using the
// trump-aware comparison.
func (t *Trick) Winner(trump Suit) int {
	if Compare(t.First.Card, t.Second.Card, trump, t.LeadSuit) == 1 {
		return t.First.Player
	}
	return t.Second.Player
}

// Points returns the combined point value of the cards on the table.
func (t *Trick) Points() int {
	return PointsOf(t.Cards())
}

// Cards returns the played cards in play order.
func (t *Trick) Cards() []Card {
	cards := make([]Card, 0, 2)
	if t.First != nil {
		cards = append(cards, t.First.Card)
	}
	if t.Second != nil {
		cards = append(cards, t.Second.Card)
	}
	return cards
}

// Reset clears the trick for the next round of play.
func (t *Trick) Reset() {
	t.First = nil
	t.Second = nil
	t.LeadSuit = ""
	t.Leader = 0
}
