package config

import (
	"testing"

	"briscola-game/internal/ai"
	"briscola-game/internal/game"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want game.Mode
	}{
		{"ai", game.ModeAI},
		{"local", game.ModeLocal},
		{"online", game.ModeOnline},
		{" ONLINE ", game.ModeOnline},
		{"", game.ModeAI},
		{"garbage", game.ModeAI},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want ai.Level
	}{
		{"easy", ai.Easy},
		{"Hard", ai.Hard},
		{"medium", ai.Medium},
		{"", ai.Medium},
		{"nightmare", ai.Medium},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"BRISCOLA_SERVER_URL", "BRISCOLA_USERNAME", "BRISCOLA_OPPONENT_NAME",
		"BRISCOLA_MODE", "BRISCOLA_DIFFICULTY", "BRISCOLA_ROOM",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("server URL %q, want %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.Username != DefaultUsername || cfg.OpponentName != DefaultOpponent {
		t.Errorf("names %q/%q, want defaults", cfg.Username, cfg.OpponentName)
	}
	if cfg.Mode != game.ModeAI || cfg.Difficulty != ai.Medium {
		t.Errorf("mode/difficulty %s/%s, want ai/medium", cfg.Mode, cfg.Difficulty)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("BRISCOLA_SERVER_URL", "ws://example.test/ws")
	t.Setenv("BRISCOLA_USERNAME", "Anna")
	t.Setenv("BRISCOLA_MODE", "online")
	t.Setenv("BRISCOLA_DIFFICULTY", "hard")
	t.Setenv("BRISCOLA_ROOM", "XKCD")

	cfg := Load()
	if cfg.ServerURL != "ws://example.test/ws" || cfg.Username != "Anna" {
		t.Errorf("loaded %q/%q", cfg.ServerURL, cfg.Username)
	}
	if cfg.Mode != game.ModeOnline || cfg.Difficulty != ai.Hard || cfg.RoomCode != "XKCD" {
		t.Errorf("loaded %s/%s/%s", cfg.Mode, cfg.Difficulty, cfg.RoomCode)
	}
}
