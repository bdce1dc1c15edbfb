package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"verbose", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitWriterFiltersByLevel(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	InitWriter(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Str("file", "a.jpg").Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "a.jpg") {
		t.Fatalf("expected warn message with field, got: %s", out)
	}
}

func TestInitWriterUsesEnv(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	t.Setenv(EnvLevel, "debug")
	var buf bytes.Buffer
	InitWriter(&buf, "")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level from env, got %v", zerolog.GlobalLevel())
	}
}
