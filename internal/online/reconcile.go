// Package online keeps a local game mirror in sync with an
// authoritative Briscola server. The engine never resolves tricks in
// online mode; this layer feeds it server snapshots and holds them back
// while the round-end presentation is still running.
package online

import (
	"errors"
	"log"
	"strings"
	"sync"

	"briscola-game/internal/game"
	"briscola-game/internal/protocol"
	"briscola-game/internal/shared"
)

const roomCodeLength = 4

// ErrBadRoomCode rejects join attempts before they reach the server.
var ErrBadRoomCode = errors.New("room code must be 4 characters")

// EventKind tags a room-lifecycle notification.
type EventKind string

const (
	EventRoomCreated    EventKind = "room_created"    // Detail: room code
	EventOpponentJoined EventKind = "opponent_joined" // Detail: opponent name
	EventGameStarted    EventKind = "game_started"    // Detail: opponent name
	EventRematchOffered EventKind = "rematch_offered"
	EventRematchStarted EventKind = "rematch_started"
	EventServerError    EventKind = "server_error" // Detail: message text
	EventOpponentGone   EventKind = "opponent_disconnected"
	EventConnectionLost EventKind = "connection_lost"
)

// Event is a notification for the caller's front end. Game state
// changes travel through the engine's own events instead.
type Event struct {
	Kind   EventKind
	Detail string
}

// Animator runs the round-end presentation. Implementations must
// return promptly and call FinishRoundAnimation when the presentation
// is done; snapshots arriving in between are buffered.
type Animator interface {
	AnimateRoundEnd(winner int, points int)
}

// Reconciler applies server messages to the local game in arrival
// order. It is the only writer of the game in online mode.
type Reconciler struct {
	game    *game.Game
	session *Session
	notify  func(Event)

	playerID     string
	roomCode     string
	username     string
	opponentName string

	animator        Animator
	processingRound bool
	pending         *protocol.GameSnapshot // Last snapshot held back, depth 1

	mu sync.Mutex
}

// NewReconciler wires a session to an online-mode game. notify may be
// nil when the caller has no use for room events.
func NewReconciler(g *game.Game, s *Session, notify func(Event)) *Reconciler {
	if notify == nil {
		notify = func(Event) {}
	}
	return &Reconciler{game: g, session: s, notify: notify}
}

// SetAnimator installs the round-end presentation hook.
func (r *Reconciler) SetAnimator(a Animator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.animator = a
}

// Run consumes the session until the connection is gone. Callers
// usually run it on its own goroutine.
func (r *Reconciler) Run() {
	for msg := range r.session.Incoming() {
		r.handle(msg)
	}
	if !r.session.Closing() {
		log.Printf("Online: connection lost.")
		r.notify(Event{Kind: EventConnectionLost})
	}
}

// handle applies one decoded server message.
func (r *Reconciler) handle(msg any) {
	switch m := msg.(type) {
	case protocol.RoomCreated:
		r.mu.Lock()
		r.roomCode = m.RoomCode
		r.playerID = m.PlayerID
		r.mu.Unlock()
		log.Printf("Online: room %s created, playing as %s.", m.RoomCode, m.PlayerID)
		r.notify(Event{Kind: EventRoomCreated, Detail: m.RoomCode})

	case protocol.PlayerJoined:
		r.mu.Lock()
		if r.playerID == "" && m.Username == r.username {
			// Our own join echoed back with our server-side id.
			r.playerID = m.PlayerID
			r.mu.Unlock()
			log.Printf("Online: joined room as %s (%s).", m.Username, m.PlayerID)
			return
		}
		r.opponentName = m.Username
		r.mu.Unlock()
		log.Printf("Online: %s joined the room.", m.Username)
		r.notify(Event{Kind: EventOpponentJoined, Detail: m.Username})

	case protocol.GameStart:
		r.mu.Lock()
		r.opponentName = m.OpponentName
		r.processingRound = false
		r.pending = nil
		r.mu.Unlock()
		log.Printf("Online: game starting against %s.", m.OpponentName)
		r.apply(m.GameState)
		r.notify(Event{Kind: EventGameStarted, Detail: m.OpponentName})

	case protocol.CardPlayed:
		r.mu.Lock()
		self := m.PlayerID == r.playerID
		r.mu.Unlock()
		if self {
			// Our optimistic play already sits on the table.
			return
		}
		card, ok := m.Card.Card()
		if !ok {
			return
		}
		if m.RoundComplete {
			// Show the card; resolution arrives with the next snapshot.
			r.game.OpponentPlayed(card, false)
		} else {
			r.game.OpponentPlayed(card, bool(m.IsYourTurn))
		}

	case protocol.RoundEnd:
		winner := r.seatOf(m.Winner)
		r.mu.Lock()
		animator := r.animator
		if animator != nil {
			r.processingRound = true
		}
		r.mu.Unlock()
		log.Printf("Online: round to seat %d for %d points.", winner, m.Points)
		if animator != nil {
			animator.AnimateRoundEnd(winner, m.Points)
		}

	case protocol.StateUpdate:
		r.mu.Lock()
		if r.processingRound {
			state := m.State
			r.pending = &state
			r.mu.Unlock()
			log.Printf("Online: snapshot held back during round presentation.")
			return
		}
		r.mu.Unlock()
		r.apply(m.State)

	case protocol.GameEnd:
		r.mu.Lock()
		r.processingRound = false
		r.pending = nil
		r.mu.Unlock()
		r.game.ApplyServerResult(r.seatOf(m.Winner), m.Player1Score, m.Player2Score)

	case protocol.RematchRequested:
		log.Printf("Online: opponent wants a rematch.")
		r.notify(Event{Kind: EventRematchOffered})

	case protocol.RematchStart:
		r.mu.Lock()
		r.processingRound = false
		r.pending = nil
		r.mu.Unlock()
		r.game.Reset()
		r.apply(m.GameState)
		log.Printf("Online: rematch starting.")
		r.notify(Event{Kind: EventRematchStarted})

	case protocol.ErrorMessage:
		log.Printf("Online: server error %s: %s", m.Code, m.Message)
		r.notify(Event{Kind: EventServerError, Detail: m.Message})

	case protocol.OpponentDisconnected:
		log.Printf("Online: opponent disconnected.")
		r.notify(Event{Kind: EventOpponentGone})

	default:
		log.Printf("Online: no handler for message %T.", msg)
	}
}

// FinishRoundAnimation closes the presentation window and applies the
// snapshot buffered while it was open, if any.
func (r *Reconciler) FinishRoundAnimation() {
	r.mu.Lock()
	r.processingRound = false
	buffered := r.pending
	r.pending = nil
	r.mu.Unlock()

	if buffered != nil {
		r.apply(*buffered)
	}
}

// PlayCard removes the card locally and tells the server. The next
// authoritative snapshot confirms or corrects the result.
func (r *Reconciler) PlayCard(c shared.Card) error {
	if err := r.game.PlayLocal(c); err != nil {
		return err
	}
	data, err := protocol.NewPlayCard(c)
	if err != nil {
		return err
	}
	r.session.Send(data)
	return nil
}

// CreateRoom asks the server for a fresh room.
func (r *Reconciler) CreateRoom(username string) error {
	r.mu.Lock()
	r.username = username
	r.mu.Unlock()

	data, err := protocol.NewCreateRoom(username)
	if err != nil {
		return err
	}
	r.session.Send(data)
	return nil
}

// JoinRoom validates the code locally before bothering the server.
func (r *Reconciler) JoinRoom(roomCode, username string) error {
	code := strings.ToUpper(strings.TrimSpace(roomCode))
	if len(code) != roomCodeLength {
		return ErrBadRoomCode
	}
	r.mu.Lock()
	r.username = username
	r.roomCode = code
	r.mu.Unlock()

	data, err := protocol.NewJoinRoom(code, username)
	if err != nil {
		return err
	}
	r.session.Send(data)
	return nil
}

// RequestRematch offers the opponent another game.
func (r *Reconciler) RequestRematch() error {
	data, err := protocol.NewRematch()
	if err != nil {
		return err
	}
	r.session.Send(data)
	return nil
}

// Leave tells the server we are gone; the caller closes the session.
func (r *Reconciler) Leave() error {
	data, err := protocol.NewLeave()
	if err != nil {
		return err
	}
	r.session.Send(data)
	return nil
}

// RoomCode returns the current room code, if any.
func (r *Reconciler) RoomCode() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roomCode
}

// OpponentName returns the opponent's name once known.
func (r *Reconciler) OpponentName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opponentName
}

// seatOf maps a server player id to a local seat: 1 for us, 2 for the
// opponent, 0 for no player (a drawn game).
func (r *Reconciler) seatOf(playerID string) int {
	if playerID == "" {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if playerID == r.playerID {
		return 1
	}
	return 2
}

// apply feeds one server snapshot to the engine.
func (r *Reconciler) apply(s protocol.GameSnapshot) {
	r.mu.Lock()
	opponent := r.opponentName
	r.mu.Unlock()
	r.game.ApplyServerState(toServerState(s, opponent))
}

// toServerState converts the wire snapshot to engine types, dropping
// any card the deck cannot contain.
func toServerState(s protocol.GameSnapshot, opponentName string) game.ServerState {
	ss := game.ServerState{
		OpponentName:      opponentName,
		OpponentCardCount: s.OpponentCardCount,
		YourScore:         s.YourScore,
		OpponentScore:     s.OpponentScore,
		DeckRemaining:     s.DeckRemaining,
		YourTurn:          bool(s.IsYourTurn),
	}
	for _, w := range s.YourHand {
		if c, ok := w.Card(); ok {
			ss.Hand = append(ss.Hand, c)
		}
	}
	if suit := shared.Suit(s.BriscolaSuit); suit.Valid() {
		ss.BriscolaSuit = suit
	}
	if s.Briscola != nil {
		if c, ok := s.Briscola.Card(); ok {
			ss.Briscola = &c
		}
	}
	if s.PlayedCard1 != nil {
		if c, ok := s.PlayedCard1.Card(); ok {
			ss.PlayedCard1 = &c
		}
	}
	if s.PlayedCard2 != nil {
		if c, ok := s.PlayedCard2.Card(); ok {
			ss.PlayedCard2 = &c
		}
	}
	return ss
}
