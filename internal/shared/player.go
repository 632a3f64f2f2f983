package shared

// Player represents one seat in a Briscola game.
type Player struct {
	ID        string // Unique identifier for the player
	Name      string // Player's chosen name
	Hand      []Card // Cards currently held by the player
	Captured  []Card // Cards won in resolved tricks
	Score     int    // Running score; rebuilt from Captured at game end
	TricksWon int    // Number of tricks taken this game
}

// NewPlayer creates a new player with the given ID and name.
func NewPlayer(id string, name string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Hand:     []Card{},
		Captured: []Card{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// AddCards adds several cards to the player's hand.
func (p *Player) AddCards(cards []Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the card is currently in the player's hand.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

func (p *Player) FindCard(suit Suit, rank int) (Card, bool) {
	for _, card := range p.Hand {
		if card.Suit == suit && card.Rank == rank {
			return card, true
		}
	}
	return Card{}, false
}

func (p *Player) HasSuit(suit Suit) bool {
	for _, card := range p.Hand {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// Capture moves won trick cards into the player's pile and bumps the
// running score and trick counter.
func (p *Player) Capture(cards []Card) int {
	points := PointsOf(cards)
	p.Captured = append(p.Captured, cards...)
	p.Score += points
	p.TricksWon++
	return points
}

// CapturedPoints sums the pile directly. Game-end scoring trusts this
// over the running Score.
func (p *Player) CapturedPoints() int {
	return PointsOf(p.Captured)
}

// HandCopy returns a defensive copy of the player's hand.
func (p *Player) HandCopy() []Card {
	hand := make([]Card, len(p.Hand))
	copy(hand, p.Hand)
	return hand
}
