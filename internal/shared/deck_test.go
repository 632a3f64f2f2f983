package shared

import "testing"

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck.Cards) != DeckSize {
		t.Fatalf("deck has %d cards, want %d", len(deck.Cards), DeckSize)
	}
	seen := map[Card]bool{}
	perSuit := map[Suit]int{}
	for _, card := range deck.Cards {
		if seen[card] {
			t.Fatalf("duplicate card %v in fresh deck", card)
		}
		seen[card] = true
		perSuit[card.Suit]++
	}
	for _, suit := range Suits {
		if perSuit[suit] != 10 {
			t.Errorf("suit %s has %d cards, want 10", suit, perSuit[suit])
		}
	}
}

func TestDrawConservation(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle()

	drawn := []Card{}
	for i := 0; i < 13; i++ {
		card, ok := deck.Draw()
		if !ok {
			t.Fatalf("deck ran out after %d draws", i)
		}
		drawn = append(drawn, card)
	}
	if len(drawn)+deck.Remaining() != DeckSize {
		t.Fatalf("drawn %d + remaining %d != %d", len(drawn), deck.Remaining(), DeckSize)
	}

	// Drawing everything else must produce the rest of the deck exactly once.
	rest := deck.DrawMultiple(DeckSize)
	seen := map[Card]bool{}
	for _, card := range append(drawn, rest...) {
		if seen[card] {
			t.Fatalf("card %v drawn twice", card)
		}
		seen[card] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("drew %d distinct cards, want %d", len(seen), DeckSize)
	}
	if _, ok := deck.Draw(); ok {
		t.Error("draw from an empty deck should report no card")
	}
}

func TestDrawMultipleShortCircuits(t *testing.T) {
	deck := &Deck{Cards: []Card{
		{Suit: Denari, Rank: 2},
		{Suit: Denari, Rank: 4},
	}}
	drawn := deck.DrawMultiple(3)
	if len(drawn) != 2 {
		t.Fatalf("drew %d cards from a 2-card deck, want 2", len(drawn))
	}
	if deck.Remaining() != 0 {
		t.Errorf("deck should be empty, has %d", deck.Remaining())
	}
}

func TestBottomOperations(t *testing.T) {
	deck := NewDeck()
	bottom := deck.Cards[0]

	peeked, ok := deck.PeekBottom()
	if !ok || peeked != bottom {
		t.Fatalf("PeekBottom = %v, want %v", peeked, bottom)
	}
	if deck.Remaining() != DeckSize {
		t.Fatal("peek must not remove the card")
	}

	taken, ok := deck.TakeBottom()
	if !ok || taken != bottom {
		t.Fatalf("TakeBottom = %v, want %v", taken, bottom)
	}
	if deck.Remaining() != DeckSize-1 {
		t.Fatalf("remaining %d after TakeBottom, want %d", deck.Remaining(), DeckSize-1)
	}

	// Draw never returns the taken card again.
	for {
		card, ok := deck.Draw()
		if !ok {
			break
		}
		if card == taken {
			t.Fatalf("taken card %v reappeared in the draw pile", taken)
		}
	}

	if _, ok := deck.TakeBottom(); ok {
		t.Error("TakeBottom on an empty deck should report no card")
	}
	if _, ok := deck.PeekBottom(); ok {
		t.Error("PeekBottom on an empty deck should report no card")
	}
}
