package core

import (
	"errors"
	"math"
)

// Key is a key that feeds the rewind buffer.
type Key int

const (
	KeyNone Key = iota
	KeyC
	KeyU
	KeyW
	KeyEnter
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// MaxRewindDigits is the longest digit run accepted after C.
const MaxRewindDigits = 8

// MaxBufferedKeys is the longest pending buffer: C, the digits and Enter.
// Pushing past it without Enter clears the buffer.
const MaxBufferedKeys = MaxRewindDigits + 2

var (
	ErrInvalidRewind = errors.New("invalid rewind command")
	ErrEasterEgg     = errors.New("uwu")
)

// KeyFromRune maps a typed character to a buffer key.
func KeyFromRune(r rune) (Key, bool) {
	switch {
	case r == 'c' || r == 'C':
		return KeyC, true
	case r == 'u' || r == 'U':
		return KeyU, true
	case r == 'w' || r == 'W':
		return KeyW, true
	case r == '\n' || r == '\r':
		return KeyEnter, true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), true
	default:
		return KeyNone, false
	}
}

// Digit returns the numeric value of a digit key.
func (k Key) Digit() (int, bool) {
	if k < Key0 || k > Key9 {
		return 0, false
	}
	return int(k - Key0), true
}

// String returns the key as typed.
func (k Key) String() string {
	switch k {
	case KeyC:
		return "C"
	case KeyU:
		return "U"
	case KeyW:
		return "W"
	case KeyEnter:
		return "⏎"
	}
	if d, ok := k.Digit(); ok {
		return string(rune('0' + d))
	}
	return "?"
}

// DecodeRewind parses "C d0 d1 ... Enter". Digits are read least significant
// first in the order they were typed, so C 1 2 Enter is 21 and C Enter is 0.
func DecodeRewind(keys []Key) (int, error) {
	if len(keys) < 2 || keys[0] != KeyC || keys[len(keys)-1] != KeyEnter {
		return 0, ErrInvalidRewind
	}
	digits := keys[1 : len(keys)-1]
	if len(digits) > MaxRewindDigits {
		return 0, ErrInvalidRewind
	}

	steps := 0
	place := 1
	for i, k := range digits {
		d, ok := k.Digit()
		if !ok {
			return 0, ErrInvalidRewind
		}
		if d > 0 && steps > math.MaxInt-d*place {
			return 0, ErrInvalidRewind
		}
		steps += d * place
		if i < len(digits)-1 {
			place *= 10
		}
	}
	return steps, nil
}

// Command is the outcome of a finished buffer.
type Command struct {
	Steps int
	Err   error
}

// KeyBuffer collects rewind keystrokes until Enter.
type KeyBuffer struct {
	keys []Key
}

// Push appends k. When k is Enter the buffer is decoded and cleared and done
// is true; cmd.Err is set when the buffer did not hold a valid rewind.
func (b *KeyBuffer) Push(k Key) (cmd Command, done bool) {
	if k == KeyNone {
		return Command{}, false
	}
	b.keys = append(b.keys, k)
	if k != KeyEnter {
		if len(b.keys) >= MaxBufferedKeys {
			b.keys = nil
		}
		return Command{}, false
	}

	keys := b.keys
	b.keys = nil

	if len(keys) >= 3 && keys[0] == KeyU && keys[1] == KeyW && keys[2] == KeyU {
		return Command{Err: ErrEasterEgg}, true
	}
	steps, err := DecodeRewind(keys)
	return Command{Steps: steps, Err: err}, true
}

// Keys returns a copy of the pending keys.
func (b *KeyBuffer) Keys() []Key {
	out := make([]Key, len(b.keys))
	copy(out, b.keys)
	return out
}

// String renders the pending keys for the HUD.
func (b *KeyBuffer) String() string {
	s := make([]byte, 0, len(b.keys))
	for _, k := range b.keys {
		s = append(s, k.String()...)
	}
	return string(s)
}

// Reset drops pending keys.
func (b *KeyBuffer) Reset() {
	b.keys = nil
}
