package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
)

func keysOf(t *testing.T, typed string) []core.Key {
	t.Helper()
	keys := make([]core.Key, 0, len(typed))
	for _, r := range typed {
		k, ok := core.KeyFromRune(r)
		if !ok {
			t.Fatalf("rune %q is not a buffer key", r)
		}
		keys = append(keys, k)
	}
	return keys
}

func TestDecodeRewind(t *testing.T) {
	tests := []struct {
		typed   string
		want    int
		wantErr bool
	}{
		{"c\n", 0, false},
		{"c1\n", 1, false},
		{"c12\n", 21, false},
		{"c120\n", 21, false},
		{"c012\n", 210, false},
		{"c12345678\n", 87654321, false},
		{"c123456789\n", 0, true},
		{"1\n", 0, true},
		{"\n", 0, true},
		{"c1", 0, true},
		{"cc\n", 0, true},
		{"c1w\n", 0, true},
	}

	for _, tt := range tests {
		got, err := core.DecodeRewind(keysOf(t, tt.typed))
		if tt.wantErr {
			if !errors.Is(err, core.ErrInvalidRewind) {
				t.Errorf("DecodeRewind(%q): expected ErrInvalidRewind, got %v (%d)", tt.typed, err, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeRewind(%q): unexpected error %v", tt.typed, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeRewind(%q) = %d, want %d", tt.typed, got, tt.want)
		}
	}
}

func TestKeyBuffer(t *testing.T) {
	var b core.KeyBuffer

	for _, k := range keysOf(t, "c12") {
		if _, done := b.Push(k); done {
			t.Fatal("buffer finished before Enter")
		}
	}
	if b.String() != "C12" {
		t.Errorf("pending = %q, want C12", b.String())
	}

	cmd, done := b.Push(core.KeyEnter)
	if !done || cmd.Err != nil || cmd.Steps != 21 {
		t.Errorf("got %+v done=%v, want 21 steps", cmd, done)
	}
	if len(b.Keys()) != 0 {
		t.Error("buffer should be cleared after Enter")
	}
}

func TestKeyBufferDiscardsGarbage(t *testing.T) {
	var b core.KeyBuffer
	for _, k := range keysOf(t, "1c2") {
		b.Push(k)
	}
	cmd, done := b.Push(core.KeyEnter)
	if !done || !errors.Is(cmd.Err, core.ErrInvalidRewind) {
		t.Errorf("got %+v, want invalid rewind", cmd)
	}
	if len(b.Keys()) != 0 {
		t.Error("invalid buffer should be cleared")
	}
}

func TestKeyBufferEasterEgg(t *testing.T) {
	var b core.KeyBuffer
	for _, k := range keysOf(t, "uwu") {
		b.Push(k)
	}
	cmd, done := b.Push(core.KeyEnter)
	if !done || !errors.Is(cmd.Err, core.ErrEasterEgg) {
		t.Errorf("got %+v, want easter egg", cmd)
	}
}

func TestKeyFromRuneRejectsMovementLetters(t *testing.T) {
	for _, r := range []rune{'a', 'h', 'x', ' '} {
		if _, ok := core.KeyFromRune(r); ok {
			t.Errorf("rune %q should not be a buffer key", r)
		}
	}
}

func TestKeyBufferOverflowClears(t *testing.T) {
	var b core.KeyBuffer

	// C plus the longest digit run still fits with room for Enter.
	for _, k := range keysOf(t, "c12345678") {
		b.Push(k)
	}
	if len(b.Keys()) != core.MaxRewindDigits+1 {
		t.Fatalf("pending = %q, want C and 8 digits", b.String())
	}

	b.Push(core.Key9)
	if len(b.Keys()) != 0 {
		t.Fatalf("overflowing buffer should clear, pending = %q", b.String())
	}

	for range 100 {
		b.Push(core.Key1)
		if len(b.Keys()) >= core.MaxBufferedKeys {
			t.Fatalf("buffer grew to %d keys", len(b.Keys()))
		}
	}
}
