package game

import "briscola-game/internal/shared"

// EventKind identifies an engine event.
type EventKind string

const (
	EventStateChanged EventKind = "state_changed"
	EventTrickEnded   EventKind = "trick_ended"
	EventGameOver     EventKind = "game_over"
	EventSound        EventKind = "sound"
	EventPointsPopup  EventKind = "points_popup"
)

// SoundCue names the sound effects the presentation layer may play.
// Win/lose cues are from seat 1's point of view.
type SoundCue string

const (
	CueCardPlay  SoundCue = "card_play"
	CueTrickWin  SoundCue = "trick_win"
	CueTrickLose SoundCue = "trick_lose"
	CueGameWin   SoundCue = "game_win"
	CueGameLose  SoundCue = "game_lose"
)

// Event is delivered to subscribed listeners. Payload holds one of the
// typed payload structs below, keyed by Kind.
type Event struct {
	Kind    EventKind
	Payload any
}

// Listener receives engine events. Listeners run after the originating
// operation has released the state lock, so they may call back into
// the game.
type Listener func(Event)

// StateChangedPayload carries a fresh snapshot of the game.
type StateChangedPayload struct {
	State Snapshot
}

// TrickEndedPayload describes a resolved trick.
type TrickEndedPayload struct {
	Winner    int              // Seat that took the trick
	Points    int              // Points moved to the winner's pile
	Cards     [2]shared.Card   // The trick's cards in play order
	Scores    [2]int           // Running scores after capture
	GameEnded bool             // True when this was the final trick
}

// GameOverPayload reports the final result.
type GameOverPayload struct {
	Winner int    // 1, 2, or 0 for a drawn match
	Scores [2]int // Final scores from the captured piles
}

// SoundPayload asks the presentation layer to play a cue.
type SoundPayload struct {
	Cue SoundCue
}

// PointsPopupPayload asks the presentation layer for a transient
// points display over the winning seat.
type PointsPopupPayload struct {
	Player int
	Points int
}
