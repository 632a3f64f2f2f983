package main

import (
	"fmt"
	"strings"

	"briscola-game/internal/game"
	"briscola-game/internal/shared"

	"github.com/pterm/pterm"
)

// faceDown is the display glyph for cards the player may not see.
const faceDown = "▓▓"

// suitGlyph returns a colored terminal symbol for the suit.
func suitGlyph(s shared.Suit) string {
	switch s {
	case shared.Denari:
		return pterm.Yellow("♦")
	case shared.Coppe:
		return pterm.LightRed("♥")
	case shared.Spade:
		return pterm.LightBlue("♠")
	case shared.Bastoni:
		return pterm.Green("♣")
	default:
		return "?"
	}
}

// cardLabel renders one card as rank plus suit symbol.
func cardLabel(c shared.Card) string {
	if c.Hidden() {
		return pterm.Gray(faceDown)
	}
	return c.RankName() + suitGlyph(c.Suit)
}

// renderTable prints the match from one seat's point of view.
func renderTable(snap game.Snapshot, seat int) {
	you := seat - 1
	other := 2 - seat

	pterm.Println()
	briscola := suitGlyph(snap.BriscolaSuit) + " " + snap.BriscolaSuit.Name()
	if snap.BriscolaCard != nil {
		briscola = cardLabel(*snap.BriscolaCard) + " (under the deck)"
	}
	pterm.Printf("Briscola: %s   Deck: %d\n", briscola, snap.DeckRemaining)
	pterm.Printf("%s: %d points, %d cards\n",
		snap.Names[other], snap.Scores[other], len(snap.Hands[other]))

	if snap.PlayedCard1 != nil {
		table := cardLabel(*snap.PlayedCard1)
		if snap.PlayedCard2 != nil {
			table += "  " + cardLabel(*snap.PlayedCard2)
		}
		pterm.Printf("On the table: %s\n", table)
	}

	pterm.Printf("%s: %d points\n", snap.Names[you], snap.Scores[you])
	var hand strings.Builder
	for i, c := range snap.Hands[you] {
		fmt.Fprintf(&hand, "[%d] %s   ", i+1, cardLabel(c))
	}
	pterm.Println("Hand: " + hand.String())
}

// showResult prints the final standing. you is the local seat, 0 when
// both seats share the terminal.
func showResult(snap game.Snapshot, you int) {
	w := snap.Winner
	pterm.Println()
	if w == 0 {
		pterm.Println(pterm.Yellow(fmt.Sprintf("Drawn game at %d-%d.", snap.Scores[0], snap.Scores[1])))
		return
	}
	line := fmt.Sprintf("%s wins %d-%d.", snap.Names[w-1], snap.Scores[w-1], snap.Scores[2-w])
	switch {
	case w == you:
		pterm.Println(pterm.Green(fmt.Sprintf("You win %d-%d!", snap.Scores[w-1], snap.Scores[2-w])))
	case you != 0:
		pterm.Println(pterm.Red(line))
	default:
		pterm.Println(pterm.Green(line))
	}
}
