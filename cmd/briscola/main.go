package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"briscola-game/internal/config"
	"briscola-game/internal/game"
	"briscola-game/internal/online"
	"briscola-game/internal/shared"

	"github.com/pterm/pterm"
)

func main() {
	cfg := config.Load()

	mode := flag.String("mode", string(cfg.Mode), "ai, local or online")
	difficulty := flag.String("difficulty", string(cfg.Difficulty), "easy, medium or hard")
	name := flag.String("name", cfg.Username, "your player name")
	opponent := flag.String("opponent", cfg.OpponentName, "second player's name (local mode)")
	server := flag.String("server", cfg.ServerURL, "game server websocket URL")
	room := flag.String("room", cfg.RoomCode, "room code to join (online mode)")
	flag.Parse()

	cfg.Mode = config.ParseMode(*mode)
	cfg.Difficulty = config.ParseDifficulty(*difficulty)
	cfg.Username = *name
	cfg.OpponentName = *opponent
	cfg.ServerURL = *server
	cfg.RoomCode = *room

	// Keep the table clean; the engine logs go to a file.
	if f, err := os.OpenFile("briscola.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	switch cfg.Mode {
	case game.ModeOnline:
		runOnline(cfg)
	case game.ModeLocal:
		runLocal(cfg)
	default:
		runSolo(cfg)
	}
}

// narrate prints engine happenings as they occur. you is the local
// seat, 0 when both seats share the terminal.
func narrate(g *game.Game, you int) {
	names := g.Snapshot().Names
	g.Subscribe(func(e game.Event) {
		switch e.Kind {
		case game.EventTrickEnded:
			p := e.Payload.(game.TrickEndedPayload)
			who, verb := names[p.Winner-1], "takes"
			if p.Winner == you {
				who, verb = "You", "take"
			}
			pterm.Printf("\n%s %s the trick. Score: %d-%d.\n", who, verb, p.Scores[0], p.Scores[1])
		case game.EventPointsPopup:
			p := e.Payload.(game.PointsPopupPayload)
			pterm.Println(pterm.Yellow(fmt.Sprintf("  +%d points", p.Points)))
		case game.EventSound:
			cue := e.Payload.(game.SoundPayload).Cue
			if cue == game.CueTrickWin || cue == game.CueGameWin {
				fmt.Print("\a")
			}
		}
	})
}

// runSolo plays against the computer.
func runSolo(cfg config.Config) {
	g := game.NewGame(game.Config{
		Mode:        game.ModeAI,
		Difficulty:  cfg.Difficulty,
		Player1Name: cfg.Username,
		Player2Name: fmt.Sprintf("Computer (%s)", cfg.Difficulty),
	})
	narrate(g, 1)
	scanner := bufio.NewScanner(os.Stdin)
	pterm.Printf("Briscola against the computer, %s difficulty. Good luck.\n", cfg.Difficulty)

	for {
		snap := g.Snapshot()
		if snap.GameOver {
			showResult(snap, 1)
			if !askYesNo(scanner, "Play again?") {
				return
			}
			g.Reset()
			continue
		}

		if snap.CurrentPlayer == 1 {
			renderTable(snap, 1)
			card, ok := promptCard(scanner, snap.Hands[0])
			if !ok {
				return
			}
			if _, err := g.PlayCard(1, card); err != nil {
				pterm.Println(pterm.Red("Cannot play that: " + err.Error()))
			}
			continue
		}

		card, ok := g.AIMove()
		if !ok {
			log.Printf("Briscola: no AI move available, stopping.")
			return
		}
		time.Sleep(600 * time.Millisecond)
		pterm.Printf("%s plays %s.\n", snap.Names[1], cardLabel(card))
		if _, err := g.PlayCard(2, card); err != nil {
			log.Printf("Briscola: AI play rejected: %v", err)
			return
		}
	}
}

// runLocal is pass-and-play: two humans, one terminal.
func runLocal(cfg config.Config) {
	g := game.NewGame(game.Config{
		Mode:        game.ModeLocal,
		Player1Name: cfg.Username,
		Player2Name: cfg.OpponentName,
	})
	narrate(g, 0)
	scanner := bufio.NewScanner(os.Stdin)
	pterm.Println("Pass-and-play Briscola. Hand the keyboard over between turns.")

	for {
		snap := g.Snapshot()
		if snap.GameOver {
			showResult(snap, 0)
			if !askYesNo(scanner, "Play again?") {
				return
			}
			g.Reset()
			continue
		}

		seat := snap.CurrentPlayer
		pterm.Printf("\n%s, press enter when you have the screen.", snap.Names[seat-1])
		if !scanner.Scan() {
			return
		}
		renderTable(snap, seat)
		card, ok := promptCard(scanner, snap.Hands[seat-1])
		if !ok {
			return
		}
		if _, err := g.PlayCard(seat, card); err != nil {
			pterm.Println(pterm.Red("Cannot play that: " + err.Error()))
		}
	}
}

// trickPause keeps a finished online trick on screen before the next
// snapshot replaces it.
type trickPause struct {
	rec   *online.Reconciler
	names [2]string
}

func (a trickPause) AnimateRoundEnd(winner, points int) {
	go func() {
		who, verb := "You", "take"
		if winner == 2 {
			who, verb = a.names[1], "takes"
		}
		suffix := ""
		if points > 0 {
			suffix = fmt.Sprintf(" (+%d)", points)
		}
		pterm.Printf("\n%s %s the trick%s.\n", who, verb, suffix)
		time.Sleep(800 * time.Millisecond)
		a.rec.FinishRoundAnimation()
	}()
}

// runOnline plays against a remote opponent through the game server.
func runOnline(cfg config.Config) {
	g := game.NewGame(game.Config{Mode: game.ModeOnline, Player1Name: cfg.Username})
	narrate(g, 1)

	session, err := online.Dial(cfg.ServerURL)
	if err != nil {
		pterm.Println(pterm.Red("Cannot reach " + cfg.ServerURL + ": " + err.Error()))
		os.Exit(1)
	}
	defer session.Close()

	events := make(chan online.Event, 16)
	rec := online.NewReconciler(g, session, func(e online.Event) { events <- e })
	go rec.Run()

	if cfg.RoomCode != "" {
		if err := rec.JoinRoom(cfg.RoomCode, cfg.Username); err != nil {
			pterm.Println(pterm.Red(err.Error()))
			return
		}
		pterm.Println("Joining the room…")
	} else {
		if err := rec.CreateRoom(cfg.Username); err != nil {
			pterm.Println(pterm.Red(err.Error()))
			return
		}
	}

	turns := make(chan game.Snapshot, 8)
	g.Subscribe(func(e game.Event) {
		if e.Kind == game.EventStateChanged {
			select {
			case turns <- e.Payload.(game.StateChangedPayload).State:
			default:
			}
		}
	})

	inputs := make(chan string)
	go func() {
		defer close(inputs)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs <- strings.TrimSpace(scanner.Text())
		}
	}()

	pterm.Println("Type a card number to play it, 'rematch' after a game, 'q' to leave.")
	for {
		select {
		case e := <-events:
			switch e.Kind {
			case online.EventRoomCreated:
				pterm.Printf("Room %s is open — your opponent joins with this code.\n", pterm.Cyan(e.Detail))
			case online.EventOpponentJoined:
				pterm.Printf("%s joined the room.\n", e.Detail)
			case online.EventGameStarted:
				pterm.Printf("Game on against %s.\n", e.Detail)
				rec.SetAnimator(trickPause{rec: rec, names: g.Snapshot().Names})
			case online.EventRematchOffered:
				pterm.Println("Your opponent wants a rematch — type 'rematch' to accept.")
			case online.EventRematchStarted:
				pterm.Println("Rematch starting.")
			case online.EventServerError:
				pterm.Println(pterm.Red("Server: " + e.Detail))
			case online.EventOpponentGone:
				pterm.Println(pterm.Red("Your opponent disconnected."))
				time.Sleep(2 * time.Second)
				return
			case online.EventConnectionLost:
				pterm.Println(pterm.Red("Connection to the server lost."))
				time.Sleep(2 * time.Second)
				return
			}

		case snap := <-turns:
			if snap.GameOver {
				showResult(snap, 1)
				pterm.Println("Type 'rematch' for another game or 'q' to leave.")
			} else if snap.CurrentPlayer == 1 && snap.Phase != game.Resolving {
				renderTable(snap, 1)
			}

		case line, ok := <-inputs:
			if !ok {
				rec.Leave()
				return
			}
			switch line {
			case "":
			case "q", "quit":
				rec.Leave()
				return
			case "rematch":
				if err := rec.RequestRematch(); err == nil {
					pterm.Println("Rematch requested, waiting for your opponent.")
				}
			default:
				hand := g.Snapshot().Hands[0]
				idx, err := strconv.Atoi(line)
				if err != nil || idx < 1 || idx > len(hand) {
					pterm.Println(pterm.Red("Pick a card number from your hand."))
					continue
				}
				if err := rec.PlayCard(hand[idx-1]); err != nil {
					pterm.Println(pterm.Red("Cannot play that now: " + err.Error()))
				}
			}
		}
	}
}

// promptCard reads a 1-based index into hand. ok is false when the
// player quit or stdin closed.
func promptCard(scanner *bufio.Scanner, hand []shared.Card) (shared.Card, bool) {
	for {
		pterm.Printf("Card to play [1-%d], q to quit: ", len(hand))
		if !scanner.Scan() {
			return shared.Card{}, false
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "q" || text == "quit" {
			return shared.Card{}, false
		}
		idx, err := strconv.Atoi(text)
		if err != nil || idx < 1 || idx > len(hand) {
			pterm.Println(pterm.Red("Pick one of the numbers shown."))
			continue
		}
		return hand[idx-1], true
	}
}

func askYesNo(scanner *bufio.Scanner, prompt string) bool {
	pterm.Printf("%s [y/n]: ", prompt)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
