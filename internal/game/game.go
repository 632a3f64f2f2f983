package game

import (
	"errors"
	"log"
	"math/rand"
	"sync"

	"briscola-game/internal/ai"
	"briscola-game/internal/shared"

	"github.com/google/uuid"
)

// Phase represents the current state of the turn machine.
type Phase string

const (
	AwaitingFirstCard  Phase = "AwaitingFirstCard"  // Table empty, leader to act
	AwaitingSecondCard Phase = "AwaitingSecondCard" // One card on the table
	Resolving          Phase = "Resolving"          // Trick being resolved; never outlives a call
	GameOver           Phase = "GameOver"           // Both hands empty
)

// Mode selects who owns state mutation for the session.
type Mode string

const (
	ModeAI     Mode = "ai"     // Seat 2 is driven by the AI module
	ModeLocal  Mode = "local"  // Two humans sharing one terminal
	ModeOnline Mode = "online" // Authoritative server; the reconciler overlays state
)

// Illegal plays are reported as values and never mutate state.
var (
	ErrNotCurrentPlayer = errors.New("not this player's turn")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrGameOver         = errors.New("game is already over")
)

// Config describes a new game session.
type Config struct {
	Mode        Mode
	Difficulty  ai.Level // Used when Mode is ModeAI
	Player1Name string
	Player2Name string
}

// Game is the turn engine for a single Briscola match. In offline modes
// it is the only writer of its state; in online mode the reconciler
// overlays the network-visible fields through ApplyServerState and the
// resolution logic stays dormant.
type Game struct {
	ID            string
	Mode          Mode
	Players       [2]*shared.Player
	Deck          *shared.Deck
	BriscolaCard  *shared.Card // Held trump indicator; nil once claimed or cleared
	BriscolaSuit  shared.Suit  // Fixed for the whole match
	CurrentTrick  *shared.Trick
	CurrentPlayer int // Seat to act, 1 or 2
	Phase         Phase
	Winner        int          // Valid once Phase is GameOver; 0 means draw
	LastTrick     *TrickResult // Most recently resolved trick
	DeckRemaining int          // Server-declared count, online mode only

	brain     ai.Brain
	listeners []Listener
	pending   []Event
	mu        sync.Mutex
}

// TrickResult describes one atomic trick resolution.
type TrickResult struct {
	Winner    int
	Points    int
	Cards     [2]shared.Card // Play order
	GameEnded bool
}

// PlayOutcome reports what a successful PlayCard did.
type PlayOutcome struct {
	TrickComplete bool
	Result        *TrickResult // nil while the trick is still open
}

// NewGame creates a game from the config and deals the opening hands.
func NewGame(cfg Config) *Game {
	name1 := cfg.Player1Name
	if name1 == "" {
		name1 = "Player 1"
	}
	name2 := cfg.Player2Name
	if name2 == "" {
		name2 = "Player 2"
	}

	g := &Game{
		ID:   uuid.New().String(),
		Mode: cfg.Mode,
		Players: [2]*shared.Player{
			shared.NewPlayer(uuid.NewString(), name1),
			shared.NewPlayer(uuid.NewString(), name2),
		},
		CurrentTrick: shared.NewTrick(),
	}
	if cfg.Mode == ModeAI {
		g.brain = ai.NewBrain(cfg.Difficulty)
	}
	g.Reset()
	return g
}

// Reset starts a fresh match: new shuffled deck, three cards to each
// hand, trump indicator exposed, random starting player.
func (g *Game) Reset() {
	g.mu.Lock()
	g.resetLocked()
	events, listeners := g.flushLocked()
	g.mu.Unlock()
	dispatch(events, listeners)
}

// resetLocked rebuilds the match state. Assumes lock is held.
func (g *Game) resetLocked() {
	for _, p := range g.Players {
		p.Hand = []shared.Card{}
		p.Captured = []shared.Card{}
		p.Score = 0
		p.TricksWon = 0
	}
	g.CurrentTrick.Reset()
	g.Winner = 0
	g.LastTrick = nil
	g.Phase = AwaitingFirstCard

	if g.Mode == ModeOnline {
		// The server deals; everything arrives with the first snapshot.
		g.Deck = &shared.Deck{}
		g.BriscolaCard = nil
		g.BriscolaSuit = ""
		g.DeckRemaining = 0
		g.CurrentPlayer = 2
		g.queue(Event{Kind: EventStateChanged, Payload: StateChangedPayload{State: g.snapshotLocked()}})
		return
	}

	g.Deck = shared.NewDeck()
	g.Deck.Shuffle()
	for _, p := range g.Players {
		p.AddCards(g.Deck.DrawMultiple(3))
	}
	indicator, _ := g.Deck.TakeBottom()
	g.BriscolaCard = &indicator
	g.BriscolaSuit = indicator.Suit
	g.CurrentPlayer = rand.Intn(2) + 1

	if g.brain != nil {
		g.brain.OnEvent(ai.MatchStarted{})
	}

	log.Printf("Game %s: new match, briscola %s, player %d (%s) leads.",
		g.ID, indicator, g.CurrentPlayer, g.Players[g.CurrentPlayer-1].Name)
	g.queue(Event{Kind: EventStateChanged, Payload: StateChangedPayload{State: g.snapshotLocked()}})
}

// PlayCard plays one card for the given seat. An illegal play returns a
// sentinel error and leaves the state untouched. The second card of a
// trick triggers the full resolution before the call returns.
func (g *Game) PlayCard(player int, card shared.Card) (PlayOutcome, error) {
	g.mu.Lock()

	if g.Mode == ModeOnline {
		// The reconciler owns online state; local resolution stays off.
		g.mu.Unlock()
		return PlayOutcome{}, ErrWrongMode
	}
	if g.Phase == GameOver {
		g.mu.Unlock()
		log.Printf("Game %s: play received from player %d but game is over.", g.ID, player)
		return PlayOutcome{}, ErrGameOver
	}
	if player != g.CurrentPlayer {
		g.mu.Unlock()
		log.Printf("Game %s: player %d tried to play out of turn (current: %d).", g.ID, player, g.CurrentPlayer)
		return PlayOutcome{}, ErrNotCurrentPlayer
	}
	acting := g.Players[player-1]
	if !acting.RemoveCard(card) {
		g.mu.Unlock()
		log.Printf("Game %s: player %d (%s) tried to play %s, not in hand.", g.ID, player, acting.Name, card)
		return PlayOutcome{}, ErrCardNotInHand
	}

	g.CurrentTrick.Play(player, card)
	log.Printf("Game %s: player %d (%s) played %s.", g.ID, player, acting.Name, card)
	g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueCardPlay}})

	outcome := PlayOutcome{}
	if !g.CurrentTrick.Complete() {
		g.Phase = AwaitingSecondCard
		g.CurrentPlayer = otherSeat(player)
	} else {
		outcome.TrickComplete = true
		outcome.Result = g.resolveTrickLocked()
	}
	g.queue(Event{Kind: EventStateChanged, Payload: StateChangedPayload{State: g.snapshotLocked()}})

	events, listeners := g.flushLocked()
	g.mu.Unlock()
	dispatch(events, listeners)
	return outcome, nil
}

// resolveTrickLocked scores the complete trick, moves cards to the
// winner's pile, runs the draw phase and hands the lead to the winner.
// Assumes lock is held.
func (g *Game) resolveTrickLocked() *TrickResult {
	g.Phase = Resolving

	winner := g.CurrentTrick.Winner(g.BriscolaSuit)
	cards := g.CurrentTrick.Cards()
	points := g.Players[winner-1].Capture(cards)
	log.Printf("Game %s: trick to player %d (%s) for %d points.",
		g.ID, winner, g.Players[winner-1].Name, points)

	if g.brain != nil {
		g.brain.OnEvent(ai.CardsPlayed{Cards: cards})
	}

	// Winner draws first, then the loser.
	g.drawForLocked(winner)
	g.drawForLocked(otherSeat(winner))

	g.CurrentTrick.Reset()
	g.CurrentPlayer = winner

	result := &TrickResult{
		Winner: winner,
		Points: points,
		Cards:  [2]shared.Card{cards[0], cards[1]},
	}
	g.LastTrick = result

	if len(g.Players[0].Hand) == 0 && len(g.Players[1].Hand) == 0 {
		result.GameEnded = true
		g.finishLocked()
	} else {
		g.Phase = AwaitingFirstCard
	}

	g.queue(Event{Kind: EventTrickEnded, Payload: TrickEndedPayload{
		Winner:    winner,
		Points:    points,
		Cards:     result.Cards,
		Scores:    [2]int{g.Players[0].Score, g.Players[1].Score},
		GameEnded: result.GameEnded,
	}})
	if winner == 1 {
		g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueTrickWin}})
	} else {
		g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueTrickLose}})
	}
	if points > 0 {
		g.queue(Event{Kind: EventPointsPopup, Payload: PointsPopupPayload{Player: winner, Points: points}})
	}
	if result.GameEnded {
		g.queue(Event{Kind: EventGameOver, Payload: GameOverPayload{
			Winner: g.Winner,
			Scores: [2]int{g.Players[0].Score, g.Players[1].Score},
		}})
		switch g.Winner {
		case 1:
			g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueGameWin}})
		case 2:
			g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueGameLose}})
		}
	}
	return result
}

// drawForLocked gives one card to the seat: from the stack, or the held
// briscola once the stack is out. With neither, no draw occurs.
// Assumes lock is held.
func (g *Game) drawForLocked(player int) {
	if card, ok := g.Deck.Draw(); ok {
		g.Players[player-1].AddCard(card)
		return
	}
	if g.BriscolaCard != nil {
		g.Players[player-1].AddCard(*g.BriscolaCard)
		log.Printf("Game %s: player %d takes the briscola card %s.", g.ID, player, *g.BriscolaCard)
		g.BriscolaCard = nil
	}
}

// finishLocked closes the match. Scores are rebuilt from the captured
// piles, which win over the running totals. Assumes lock is held.
func (g *Game) finishLocked() {
	for i, p := range g.Players {
		pile := p.CapturedPoints()
		if pile != p.Score {
			log.Printf("Game %s: score drift for player %d (running %d, pile %d), pile wins.",
				g.ID, i+1, p.Score, pile)
		}
		p.Score = pile
	}

	g.Phase = GameOver
	switch {
	case g.Players[0].Score > g.Players[1].Score:
		g.Winner = 1
	case g.Players[1].Score > g.Players[0].Score:
		g.Winner = 2
	default:
		g.Winner = 0
	}

	if g.Winner == 0 {
		log.Printf("Game %s: over, drawn at %d-%d.", g.ID, g.Players[0].Score, g.Players[1].Score)
	} else {
		log.Printf("Game %s: over, player %d (%s) wins %d-%d.", g.ID, g.Winner,
			g.Players[g.Winner-1].Name, g.Players[0].Score, g.Players[1].Score)
	}
}

// AIMove asks the configured AI to pick a card for the acting seat.
// The second return value is false when no move is possible.
func (g *Game) AIMove() (shared.Card, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.brain == nil || g.Phase == GameOver {
		return shared.Card{}, false
	}
	acting := g.Players[g.CurrentPlayer-1]
	opponent := g.Players[otherSeat(g.CurrentPlayer)-1]

	view := &ai.View{
		Hand:          acting.HandCopy(),
		Trump:         g.BriscolaSuit,
		MyScore:       acting.Score,
		OppScore:      opponent.Score,
		DeckRemaining: g.deckCountLocked(),
	}
	if g.CurrentTrick.First != nil {
		led := g.CurrentTrick.First.Card
		view.Led = &led
	}
	return g.brain.ChooseCard(view)
}

// PlayableCards returns the cards the seat may play right now. Briscola
// has no follow-suit duty, so a seat on turn may play its whole hand.
func (g *Game) PlayableCards(player int) []shared.Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase == GameOver || player != g.CurrentPlayer {
		return nil
	}
	return g.Players[player-1].HandCopy()
}

// Subscribe registers a listener for engine events.
func (g *Game) Subscribe(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// Snapshot is a defensive copy of the observable game state.
type Snapshot struct {
	Phase         Phase
	Names         [2]string
	Hands         [2][]shared.Card
	Scores        [2]int
	TricksWon     [2]int
	BriscolaSuit  shared.Suit
	BriscolaCard  *shared.Card
	CurrentPlayer int
	DeckRemaining int
	PlayedCard1   *shared.Card
	PlayedCard2   *shared.Card
	LeadSuit      shared.Suit
	LastTrick     *TrickResult
	GameOver      bool
	Winner        int
}

// Snapshot returns a copy of the current state safe to hold across
// further plays.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// snapshotLocked builds the defensive copy. Assumes lock is held.
func (g *Game) snapshotLocked() Snapshot {
	snap := Snapshot{
		Phase:         g.Phase,
		BriscolaSuit:  g.BriscolaSuit,
		CurrentPlayer: g.CurrentPlayer,
		DeckRemaining: g.deckCountLocked(),
		LeadSuit:      g.CurrentTrick.LeadSuit,
		GameOver:      g.Phase == GameOver,
		Winner:        g.Winner,
	}
	for i, p := range g.Players {
		snap.Names[i] = p.Name
		snap.Hands[i] = p.HandCopy()
		snap.Scores[i] = p.Score
		snap.TricksWon[i] = p.TricksWon
	}
	if g.BriscolaCard != nil {
		card := *g.BriscolaCard
		snap.BriscolaCard = &card
	}
	if g.CurrentTrick.First != nil {
		card := g.CurrentTrick.First.Card
		snap.PlayedCard1 = &card
	}
	if g.CurrentTrick.Second != nil {
		card := g.CurrentTrick.Second.Card
		snap.PlayedCard2 = &card
	}
	if g.LastTrick != nil {
		last := *g.LastTrick
		snap.LastTrick = &last
	}
	return snap
}

// deckCountLocked reports the cards still to be drawn, counting the
// held briscola. Online mode trusts the server's number instead.
// Assumes lock is held.
func (g *Game) deckCountLocked() int {
	if g.Mode == ModeOnline {
		return g.DeckRemaining
	}
	count := g.Deck.Remaining()
	if g.BriscolaCard != nil {
		count++
	}
	return count
}

// queue stages an event for dispatch after the lock is released.
// Assumes lock is held.
func (g *Game) queue(e Event) {
	g.pending = append(g.pending, e)
}

// flushLocked hands back the staged events plus a stable copy of the
// listener list. Assumes lock is held.
func (g *Game) flushLocked() ([]Event, []Listener) {
	events := g.pending
	g.pending = nil
	listeners := make([]Listener, len(g.listeners))
	copy(listeners, g.listeners)
	return events, listeners
}

func dispatch(events []Event, listeners []Listener) {
	for _, e := range events {
		for _, l := range listeners {
			l(e)
		}
	}
}

func otherSeat(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}
