package game

import (
	"errors"
	"log"

	"briscola-game/internal/shared"
)

// ErrWrongMode guards the online-only entry points.
var ErrWrongMode = errors.New("operation requires online mode")

// ServerState carries the network-visible fields of an authoritative
// server snapshot, already converted to engine types. Seat 1 is the
// local player, seat 2 the opponent.
type ServerState struct {
	Hand              []shared.Card
	OpponentName      string
	OpponentCardCount int
	Briscola          *shared.Card
	BriscolaSuit      shared.Suit
	YourScore         int
	OpponentScore     int
	DeckRemaining     int
	YourTurn          bool
	PlayedCard1       *shared.Card
	PlayedCard2       *shared.Card
}

// ApplyServerState overwrites the network-visible fields from a server
// snapshot: both hands (the opponent's as hidden placeholders sized to
// the reported count), scores, trump, table slots and turn ownership.
// Everything else the engine computes locally stays dormant in online
// mode.
func (g *Game) ApplyServerState(ss ServerState) {
	g.mu.Lock()
	if g.Mode != ModeOnline {
		g.mu.Unlock()
		log.Printf("Game %s: server snapshot ignored in %s mode.", g.ID, g.Mode)
		return
	}

	g.Players[0].Hand = append([]shared.Card{}, ss.Hand...)
	g.Players[1].Hand = make([]shared.Card, ss.OpponentCardCount)
	g.Players[0].Score = ss.YourScore
	g.Players[1].Score = ss.OpponentScore
	g.DeckRemaining = ss.DeckRemaining
	if ss.OpponentName != "" {
		g.Players[1].Name = ss.OpponentName
	}

	if ss.BriscolaSuit != "" {
		g.BriscolaSuit = ss.BriscolaSuit
	}
	if ss.Briscola != nil && ss.DeckRemaining > 0 {
		card := *ss.Briscola
		g.BriscolaCard = &card
	} else {
		// Deck exhausted server-side: the indicator is gone.
		g.BriscolaCard = nil
	}

	// Table slots. With one card down and the turn ours, the opponent
	// led it; with one card down and the turn theirs, it is our own
	// play echoed back.
	g.CurrentTrick.Reset()
	if ss.PlayedCard1 != nil {
		leader := 2
		if ss.PlayedCard2 == nil && !ss.YourTurn {
			leader = 1
		}
		g.CurrentTrick.Play(leader, *ss.PlayedCard1)
		if ss.PlayedCard2 != nil {
			g.CurrentTrick.Play(otherSeat(leader), *ss.PlayedCard2)
		}
	}

	switch {
	case ss.PlayedCard1 == nil:
		g.Phase = AwaitingFirstCard
	case ss.PlayedCard2 == nil:
		g.Phase = AwaitingSecondCard
	default:
		g.Phase = Resolving
	}

	if ss.YourTurn {
		g.CurrentPlayer = 1
	} else {
		g.CurrentPlayer = 2
	}

	g.queue(Event{Kind: EventStateChanged, Payload: StateChangedPayload{State: g.snapshotLocked()}})
	events, listeners := g.flushLocked()
	g.mu.Unlock()
	dispatch(events, listeners)
}

// PlayLocal removes a card from seat 1's hand and puts it on the table
// without resolving anything; the next authoritative snapshot is the
// truth from here. Online mode only.
func (g *Game) PlayLocal(card shared.Card) error {
	g.mu.Lock()
	if g.Mode != ModeOnline {
		g.mu.Unlock()
		return ErrWrongMode
	}
	if g.Phase == GameOver {
		g.mu.Unlock()
		return ErrGameOver
	}
	if g.CurrentPlayer != 1 {
		g.mu.Unlock()
		return ErrNotCurrentPlayer
	}
	if !g.Players[0].RemoveCard(card) {
		g.mu.Unlock()
		return ErrCardNotInHand
	}

	g.CurrentTrick.Play(1, card)
	if g.CurrentTrick.Complete() {
		g.Phase = Resolving
	} else {
		g.Phase = AwaitingSecondCard
	}
	g.CurrentPlayer = 2
	log.Printf("Game %s: played %s, waiting on the server.", g.ID, card)

	g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueCardPlay}})
	g.queue(Event{Kind: EventStateChanged, Payload: StateChangedPayload{State: g.snapshotLocked()}})
	events, listeners := g.flushLocked()
	g.mu.Unlock()
	dispatch(events, listeners)
	return nil
}

// OpponentPlayed puts the opponent's revealed card on the table and
// takes the server's word for whose turn it is. Online mode only.
func (g *Game) OpponentPlayed(card shared.Card, yourTurn bool) {
	g.mu.Lock()
	if g.Mode != ModeOnline {
		g.mu.Unlock()
		log.Printf("Game %s: opponent play ignored in %s mode.", g.ID, g.Mode)
		return
	}

	g.CurrentTrick.Play(2, card)
	if g.CurrentTrick.Complete() {
		g.Phase = Resolving
	} else {
		g.Phase = AwaitingSecondCard
	}
	if yourTurn {
		g.CurrentPlayer = 1
	} else {
		g.CurrentPlayer = 2
	}

	g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueCardPlay}})
	g.queue(Event{Kind: EventStateChanged, Payload: StateChangedPayload{State: g.snapshotLocked()}})
	events, listeners := g.flushLocked()
	g.mu.Unlock()
	dispatch(events, listeners)
}

// ApplyServerResult records the final standing the server reported.
// Online mode only.
func (g *Game) ApplyServerResult(winner, score1, score2 int) {
	g.mu.Lock()
	if g.Mode != ModeOnline {
		g.mu.Unlock()
		log.Printf("Game %s: server result ignored in %s mode.", g.ID, g.Mode)
		return
	}

	g.Players[0].Score = score1
	g.Players[1].Score = score2
	g.Winner = winner
	g.Phase = GameOver
	log.Printf("Game %s: server closed the match %d-%d (winner %d).", g.ID, score1, score2, winner)

	g.queue(Event{Kind: EventGameOver, Payload: GameOverPayload{
		Winner: winner,
		Scores: [2]int{score1, score2},
	}})
	switch winner {
	case 1:
		g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueGameWin}})
	case 2:
		g.queue(Event{Kind: EventSound, Payload: SoundPayload{Cue: CueGameLose}})
	}
	g.queue(Event{Kind: EventStateChanged, Payload: StateChangedPayload{State: g.snapshotLocked()}})
	events, listeners := g.flushLocked()
	g.mu.Unlock()
	dispatch(events, listeners)
}
