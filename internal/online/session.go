package online

import (
	"errors"
	"log"
	"sync"

	"briscola-game/internal/protocol"

	"github.com/gorilla/websocket"
)

// Session owns a single WebSocket connection to the game server.
// ReadPump decodes inbound messages onto Incoming; WritePump drains the
// send buffer. Server pings are answered inline and never surface.
type Session struct {
	conn       *websocket.Conn
	send       chan []byte
	incoming   chan any
	closed     bool // send channel closed
	userClosed bool // Close called by the owner, not a dropped connection
	mu         sync.Mutex
}

// Dial connects to the server and starts both pumps.
func Dial(serverURL string) (*Session, error) {
	conn, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return nil, err
	}

	s := &Session{
		conn:     conn,
		send:     make(chan []byte, 256),
		incoming: make(chan any),
	}
	go s.WritePump()
	go s.ReadPump()
	return s, nil
}

// Incoming delivers decoded server messages in arrival order. The
// channel closes when the connection is gone.
func (s *Session) Incoming() <-chan any {
	return s.incoming
}

// ReadPump handles incoming messages from the WebSocket connection.
func (s *Session) ReadPump() {
	defer func() {
		s.conn.Close()
		s.teardown()
		close(s.incoming)
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Online: unexpected close: %v", err)
			}
			break
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			if errors.Is(err, protocol.ErrUnknownMessage) {
				log.Printf("Online: %v, skipping.", err)
			} else {
				log.Printf("Online: dropping undecodable message: %v", err)
			}
			continue
		}

		if _, ok := msg.(protocol.Ping); ok {
			if pong, err := protocol.NewPong(); err == nil {
				s.Send(pong)
			}
			continue
		}

		log.Printf("Online: received %T.", msg)
		s.incoming <- msg
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (s *Session) WritePump() {
	defer s.conn.Close()

	for message := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Online: write error: %v", err)
			break
		}
	}
}

// Send queues a message without blocking. A full buffer means the
// connection has stalled, so the session shuts down instead of wedging
// the caller.
func (s *Session) Send(message []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.send <- message:
	default:
		log.Printf("Online: send buffer full, closing session.")
		s.closeLocked()
	}
}

// Close shuts the session down deliberately. Safe to call more than
// once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userClosed = true
	s.closeLocked()
}

// teardown stops the writer after the connection is already gone.
func (s *Session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

// closeLocked releases the writer goroutine. Assumes lock is held.
func (s *Session) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// Closing reports whether the owner shut the session down, telling a
// deliberate exit from a dropped connection.
func (s *Session) Closing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userClosed
}
