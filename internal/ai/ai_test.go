package ai

import (
	"testing"

	"briscola-game/internal/shared"
)

func TestEveryLevelPlaysLastCard(t *testing.T) {
	only := shared.Card{Suit: shared.Spade, Rank: 7}
	for _, level := range []Level{Easy, Medium, Hard} {
		brain := NewBrain(level)
		led := shared.Card{Suit: shared.Coppe, Rank: 1}
		view := &View{
			Hand:          []shared.Card{only},
			Led:           &led,
			Trump:         shared.Denari,
			DeckRemaining: 0,
		}
		card, ok := brain.ChooseCard(view)
		if !ok || card != only {
			t.Errorf("%s: hand of one returned %v ok=%v, want the held card", level, card, ok)
		}
	}
}

func TestEveryLevelHandlesEmptyHand(t *testing.T) {
	for _, level := range []Level{Easy, Medium, Hard} {
		brain := NewBrain(level)
		if _, ok := brain.ChooseCard(&View{Trump: shared.Denari}); ok {
			t.Errorf("%s: empty hand should produce no move", level)
		}
	}
}

func TestFactoryFallsBackToEasy(t *testing.T) {
	if _, ok := NewBrain(Level("nightmare")).(*EasyBot); !ok {
		t.Error("unknown level should build the easy bot")
	}
	if _, ok := NewBrain(Hard).(*HardBot); !ok {
		t.Error("hard level should build the hard bot")
	}
}

func TestEasyStaysInsideHand(t *testing.T) {
	hand := []shared.Card{
		{Suit: shared.Denari, Rank: 2},
		{Suit: shared.Coppe, Rank: 10},
		{Suit: shared.Bastoni, Rank: 1},
	}
	brain := &EasyBot{}
	for i := 0; i < 25; i++ {
		card, ok := brain.ChooseCard(&View{Hand: hand, Trump: shared.Spade})
		if !ok {
			t.Fatal("easy bot refused to move")
		}
		found := false
		for _, c := range hand {
			if c == card {
				found = true
			}
		}
		if !found {
			t.Fatalf("easy bot played %v, not in hand", card)
		}
	}
}

func TestMediumLeadsCheapestPlain(t *testing.T) {
	// Hand: denari ace (11), spade 4 (0), coppe re (4). Trump bastoni.
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Denari, Rank: 1},
			{Suit: shared.Spade, Rank: 4},
			{Suit: shared.Coppe, Rank: 10},
		},
		Trump:         shared.Bastoni,
		DeckRemaining: 30,
	}
	card, _ := (&MediumBot{}).ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 4}) {
		t.Errorf("medium led %v, want the spade 4", card)
	}
}

func TestMediumBeatsValuableLeadWithoutTrump(t *testing.T) {
	// Led: coppe three (10 points). The coppe ace wins in-suit, so the
	// trump two stays in hand.
	led := shared.Card{Suit: shared.Coppe, Rank: 3}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Coppe, Rank: 1},
			{Suit: shared.Denari, Rank: 2},
			{Suit: shared.Spade, Rank: 4},
		},
		Led:           &led,
		Trump:         shared.Denari,
		DeckRemaining: 20,
	}
	card, _ := (&MediumBot{}).ChooseCard(view)
	if (card != shared.Card{Suit: shared.Coppe, Rank: 1}) {
		t.Errorf("medium answered %v, want the coppe ace", card)
	}
}

func TestMediumNeverTrumpsCheapTrumpLead(t *testing.T) {
	// Led: denari 4, a worthless trump. Holding the denari re could win
	// the trick, but the rule is to shed instead.
	led := shared.Card{Suit: shared.Denari, Rank: 4}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Denari, Rank: 10},
			{Suit: shared.Spade, Rank: 2},
			{Suit: shared.Coppe, Rank: 10},
		},
		Led:           &led,
		Trump:         shared.Denari,
		DeckRemaining: 20,
	}
	card, _ := (&MediumBot{}).ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 2}) {
		t.Errorf("medium answered %v, want the spade 2 discard", card)
	}
}

func TestMediumTakesTrumpThreeWithTrumpAce(t *testing.T) {
	// A led trump three is worth 10 points, which outweighs the
	// no-trump-over-trump rule.
	led := shared.Card{Suit: shared.Denari, Rank: 3}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Denari, Rank: 1},
			{Suit: shared.Coppe, Rank: 4},
		},
		Led:           &led,
		Trump:         shared.Denari,
		DeckRemaining: 20,
	}
	card, _ := (&MediumBot{}).ChooseCard(view)
	if (card != shared.Card{Suit: shared.Denari, Rank: 1}) {
		t.Errorf("medium answered %v, want the trump ace", card)
	}
}

func TestMediumCheapSuitedWin(t *testing.T) {
	led := shared.Card{Suit: shared.Spade, Rank: 5}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Spade, Rank: 7},
			{Suit: shared.Denari, Rank: 2},
			{Suit: shared.Coppe, Rank: 1},
		},
		Led:           &led,
		Trump:         shared.Denari,
		DeckRemaining: 20,
	}
	card, _ := (&MediumBot{}).ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 7}) {
		t.Errorf("medium answered %v, want the spade 7 in-suit win", card)
	}
}

func TestHardSafeLeadWhenAheadInEndgame(t *testing.T) {
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Coppe, Rank: 1},
			{Suit: shared.Spade, Rank: 2},
		},
		Trump:         shared.Bastoni,
		MyScore:       61,
		OppScore:      40,
		DeckRemaining: 0,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 2}) {
		t.Errorf("hard led %v, want the safe spade 2", card)
	}
}

func TestHardForcesWhenFarBehind(t *testing.T) {
	// Thirty points down: lead the strongest plain card.
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Spade, Rank: 1},
			{Suit: shared.Coppe, Rank: 4},
			{Suit: shared.Denari, Rank: 5},
		},
		Trump:         shared.Denari,
		MyScore:       10,
		OppScore:      40,
		DeckRemaining: 20,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 1}) {
		t.Errorf("hard led %v, want the forcing spade ace", card)
	}
}

func TestHardAceBaitInLateGame(t *testing.T) {
	// Deck at six and the coppe three in hand: lead the coppe ace.
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Coppe, Rank: 1},
			{Suit: shared.Coppe, Rank: 3},
			{Suit: shared.Spade, Rank: 4},
		},
		Trump:         shared.Denari,
		MyScore:       30,
		OppScore:      30,
		DeckRemaining: 6,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Coppe, Rank: 1}) {
		t.Errorf("hard led %v, want the ace bait", card)
	}
}

func TestHardPrefersLongerSuitOnEqualWeight(t *testing.T) {
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Coppe, Rank: 4},
			{Suit: shared.Coppe, Rank: 5},
			{Suit: shared.Spade, Rank: 4},
		},
		Trump:         shared.Denari,
		MyScore:       20,
		OppScore:      20,
		DeckRemaining: 30,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Coppe, Rank: 4}) {
		t.Errorf("hard led %v, want the coppe 4 from the longer suit", card)
	}
}

func TestHardMemoryBreaksLeadTies(t *testing.T) {
	bot := NewHardBot()
	bot.OnEvent(MatchStarted{})
	bot.OnEvent(CardsPlayed{Cards: []shared.Card{
		{Suit: shared.Spade, Rank: 10},
		{Suit: shared.Spade, Rank: 9},
		{Suit: shared.Spade, Rank: 8},
	}})

	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Coppe, Rank: 4},
			{Suit: shared.Spade, Rank: 4},
		},
		Trump:         shared.Denari,
		MyScore:       20,
		OppScore:      20,
		DeckRemaining: 30,
	}
	card, _ := bot.ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 4}) {
		t.Errorf("hard led %v, want the spade 4 from the better-seen suit", card)
	}
}

func TestHardDeclinesExpensiveTake(t *testing.T) {
	// Led: a worthless spade. Winning would spend the trump three.
	led := shared.Card{Suit: shared.Spade, Rank: 4}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Denari, Rank: 3},
			{Suit: shared.Coppe, Rank: 2},
			{Suit: shared.Bastoni, Rank: 7},
		},
		Led:           &led,
		Trump:         shared.Denari,
		MyScore:       20,
		OppScore:      20,
		DeckRemaining: 20,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Coppe, Rank: 2}) {
		t.Errorf("hard answered %v, want the coppe 2 discard", card)
	}
}

func TestHardTakesFreeTrickInSuit(t *testing.T) {
	led := shared.Card{Suit: shared.Spade, Rank: 4}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Spade, Rank: 7},
			{Suit: shared.Coppe, Rank: 2},
		},
		Led:           &led,
		Trump:         shared.Denari,
		DeckRemaining: 20,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 7}) {
		t.Errorf("hard answered %v, want the free spade 7 take", card)
	}
}

func TestHardTakesBigTableWithCheapTrump(t *testing.T) {
	led := shared.Card{Suit: shared.Coppe, Rank: 1}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Denari, Rank: 4},
			{Suit: shared.Spade, Rank: 2},
		},
		Led:           &led,
		Trump:         shared.Denari,
		DeckRemaining: 20,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Denari, Rank: 4}) {
		t.Errorf("hard answered %v, want the cheap trump take", card)
	}
}

func TestHardTrumpGrowsDearWhenDeckRunsOut(t *testing.T) {
	// Led coppe three, holding the coppe ace and the trump two. With a
	// healthy deck the trump two is the cheaper winner; with three
	// cards left its scarcity premium hands the trick to the ace.
	led := shared.Card{Suit: shared.Coppe, Rank: 3}
	hand := []shared.Card{
		{Suit: shared.Coppe, Rank: 1},
		{Suit: shared.Denari, Rank: 2},
	}

	early := &View{Hand: hand, Led: &led, Trump: shared.Denari, DeckRemaining: 10}
	card, _ := NewHardBot().ChooseCard(early)
	if (card != shared.Card{Suit: shared.Denari, Rank: 2}) {
		t.Errorf("early answer %v, want the trump two", card)
	}

	late := &View{Hand: hand, Led: &led, Trump: shared.Denari, DeckRemaining: 3}
	card, _ = NewHardBot().ChooseCard(late)
	if (card != shared.Card{Suit: shared.Coppe, Rank: 1}) {
		t.Errorf("late answer %v, want the coppe ace", card)
	}
}

func TestHardForcesWinWhenBehindInEndgame(t *testing.T) {
	// Deck empty, ten points down: the take happens whatever it costs.
	led := shared.Card{Suit: shared.Spade, Rank: 4}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Denari, Rank: 1},
			{Suit: shared.Coppe, Rank: 5},
		},
		Led:           &led,
		Trump:         shared.Denari,
		MyScore:       40,
		OppScore:      50,
		DeckRemaining: 0,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Denari, Rank: 1}) {
		t.Errorf("hard answered %v, want the forced trump ace take", card)
	}
}

func TestHardWithoutWinnerShedsPlain(t *testing.T) {
	led := shared.Card{Suit: shared.Denari, Rank: 1}
	view := &View{
		Hand: []shared.Card{
			{Suit: shared.Denari, Rank: 3},
			{Suit: shared.Spade, Rank: 2},
		},
		Led:           &led,
		Trump:         shared.Denari,
		DeckRemaining: 10,
	}
	card, _ := NewHardBot().ChooseCard(view)
	if (card != shared.Card{Suit: shared.Spade, Rank: 2}) {
		t.Errorf("hard answered %v, want the spade 2 (keep the trump three)", card)
	}
}
