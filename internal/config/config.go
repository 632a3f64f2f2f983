// Package config reads client settings from BRISCOLA_* environment
// variables, with a .env file applied automatically when present.
package config

import (
	"os"
	"strings"

	"briscola-game/internal/ai"
	"briscola-game/internal/game"

	_ "github.com/joho/godotenv/autoload"
)

// Defaults used when the environment says nothing.
const (
	DefaultServerURL = "ws://localhost:8080/ws"
	DefaultUsername  = "Player 1"
	DefaultOpponent  = "Player 2"
)

// Config collects everything the client needs to start.
type Config struct {
	ServerURL    string
	Username     string
	OpponentName string // Second seat's name in pass-and-play
	Mode         game.Mode
	Difficulty   ai.Level
	RoomCode     string // Pre-filled room to join, optional
}

// Load builds a Config from the environment.
func Load() Config {
	return Config{
		ServerURL:    getenv("BRISCOLA_SERVER_URL", DefaultServerURL),
		Username:     getenv("BRISCOLA_USERNAME", DefaultUsername),
		OpponentName: getenv("BRISCOLA_OPPONENT_NAME", DefaultOpponent),
		Mode:         ParseMode(os.Getenv("BRISCOLA_MODE")),
		Difficulty:   ParseDifficulty(os.Getenv("BRISCOLA_DIFFICULTY")),
		RoomCode:     os.Getenv("BRISCOLA_ROOM"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ParseMode maps a mode name onto the engine constant. Anything
// unrecognized means a single-player game.
func ParseMode(s string) game.Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return game.ModeLocal
	case "online":
		return game.ModeOnline
	default:
		return game.ModeAI
	}
}

// ParseDifficulty maps a difficulty name onto an AI level, medium when
// unrecognized.
func ParseDifficulty(s string) ai.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return ai.Easy
	case "hard":
		return ai.Hard
	default:
		return ai.Medium
	}
}
