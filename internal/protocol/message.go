// Package protocol defines the JSON messages exchanged with a Briscola
// game server. The envelope is flat: a "type" tag sits beside the
// payload fields of each message.
package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"briscola-game/internal/shared"
)

// MessageType tags a wire message.
type MessageType string

// Server -> client message types.
const (
	TypeRoomCreated          MessageType = "roomCreated"
	TypePlayerJoined         MessageType = "playerJoined"
	TypeGameStart            MessageType = "gameStart"
	TypeCardPlayed           MessageType = "cardPlayed"
	TypeRoundEnd             MessageType = "roundEnd"
	TypeStateUpdate          MessageType = "stateUpdate"
	TypeGameEnd              MessageType = "gameEnd"
	TypeRematchRequested     MessageType = "rematchRequested"
	TypeRematchStart         MessageType = "rematchStart"
	TypeError                MessageType = "error"
	TypeOpponentDisconnected MessageType = "opponentDisconnected"
	TypePing                 MessageType = "ping"
)

// Client -> server message types.
const (
	TypeCreateRoom MessageType = "createRoom"
	TypeJoinRoom   MessageType = "joinRoom"
	TypePlayCard   MessageType = "playCard"
	TypeRematch    MessageType = "rematch"
	TypeLeave      MessageType = "leave"
	TypePong       MessageType = "pong"
)

// ErrUnknownMessage reports a message type the decoder has no arm for.
var ErrUnknownMessage = errors.New("unknown message type")

// envelope is the first decoding stage: just the tag.
type envelope struct {
	Type MessageType `json:"type"`
}

// StrictBool decodes to true only for a literal JSON true. Anything
// else, including junk the server should not send, reads as false
// rather than failing the whole message.
type StrictBool bool

func (b *StrictBool) UnmarshalJSON(data []byte) error {
	*b = StrictBool(bytes.Equal(bytes.TrimSpace(data), []byte("true")))
	return nil
}

// WireCard is the card representation used on the wire.
type WireCard struct {
	ID    string `json:"id"`
	Suit  string `json:"suit"`
	Value int    `json:"value"`
}

// NewWireCard converts an engine card for sending.
func NewWireCard(c shared.Card) WireCard {
	return WireCard{ID: c.ID(), Suit: string(c.Suit), Value: c.Rank}
}

// Card converts back to an engine card. A card the deck cannot contain
// returns false with a warning, never an error.
func (w WireCard) Card() (shared.Card, bool) {
	c, ok := shared.NewCard(shared.Suit(w.Suit), w.Value)
	if !ok {
		log.Printf("Protocol: discarding wire card with suit %q value %d.", w.Suit, w.Value)
	}
	return c, ok
}

// --- Server -> Client Messages ---

type RoomCreated struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

type PlayerJoined struct {
	Username string `json:"username"`
	PlayerID string `json:"playerId"`
}

type GameStart struct {
	OpponentName string       `json:"opponentName"`
	GameState    GameSnapshot `json:"gameState"`
}

type CardPlayed struct {
	PlayerID      string     `json:"playerId"`
	Card          WireCard   `json:"card"`
	RoundComplete bool       `json:"roundComplete"`
	IsYourTurn    StrictBool `json:"isYourTurn"`
}

type RoundEnd struct {
	Winner string `json:"winner"` // Winning player's id; empty means drawn trick
	Points int    `json:"points"`
}

type StateUpdate struct {
	State GameSnapshot `json:"state"`
}

type GameEnd struct {
	Winner       string `json:"winner"` // Winning player's id; empty means draw
	Player1Score int    `json:"player1Score"`
	Player2Score int    `json:"player2Score"`
}

type RematchRequested struct{}

type RematchStart struct {
	GameState GameSnapshot `json:"gameState"`
}

type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OpponentDisconnected struct{}

type Ping struct{}

// GameSnapshot is the authoritative server view of a match, always
// phrased from the receiving player's perspective.
type GameSnapshot struct {
	YourHand          []WireCard `json:"your_hand"`
	OpponentCardCount int        `json:"opponent_card_count"`
	Briscola          *WireCard  `json:"briscola"`
	BriscolaSuit      string     `json:"briscola_suit"`
	YourScore         int        `json:"your_score"`
	OpponentScore     int        `json:"opponent_score"`
	DeckRemaining     int        `json:"deck_remaining"`
	IsYourTurn        StrictBool `json:"is_your_turn"`
	PlayedCard1       *WireCard  `json:"played_card_1"`
	PlayedCard2       *WireCard  `json:"played_card_2"`
}

// Decode parses one inbound message into its concrete struct. Types
// without an arm return ErrUnknownMessage so the caller can log and
// keep reading.
func Decode(data []byte) (any, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	switch env.Type {
	case TypeRoomCreated:
		var msg RoomCreated
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypePlayerJoined:
		var msg PlayerJoined
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeGameStart:
		var msg GameStart
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeCardPlayed:
		var msg CardPlayed
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeRoundEnd:
		var msg RoundEnd
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeStateUpdate:
		var msg StateUpdate
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeGameEnd:
		var msg GameEnd
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeRematchRequested:
		return RematchRequested{}, nil
	case TypeRematchStart:
		var msg RematchStart
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeError:
		var msg ErrorMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeOpponentDisconnected:
		return OpponentDisconnected{}, nil
	case TypePing:
		return Ping{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, env.Type)
	}
}

// --- Client -> Server Messages ---

type createRoomMessage struct {
	Type     MessageType `json:"type"`
	Username string      `json:"username"`
}

type joinRoomMessage struct {
	Type     MessageType `json:"type"`
	RoomCode string      `json:"roomCode"`
	Username string      `json:"username"`
}

type playCardMessage struct {
	Type MessageType `json:"type"`
	Card WireCard    `json:"card"`
}

type typeOnlyMessage struct {
	Type MessageType `json:"type"`
}

func NewCreateRoom(username string) ([]byte, error) {
	return json.Marshal(createRoomMessage{Type: TypeCreateRoom, Username: username})
}

func NewJoinRoom(roomCode, username string) ([]byte, error) {
	return json.Marshal(joinRoomMessage{Type: TypeJoinRoom, RoomCode: roomCode, Username: username})
}

func NewPlayCard(c shared.Card) ([]byte, error) {
	return json.Marshal(playCardMessage{Type: TypePlayCard, Card: NewWireCard(c)})
}

func NewRematch() ([]byte, error) {
	return json.Marshal(typeOnlyMessage{Type: TypeRematch})
}

func NewLeave() ([]byte, error) {
	return json.Marshal(typeOnlyMessage{Type: TypeLeave})
}

func NewPong() ([]byte, error) {
	return json.Marshal(typeOnlyMessage{Type: TypePong})
}
