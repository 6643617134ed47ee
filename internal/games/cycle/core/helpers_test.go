package core_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/levels"
)

// quietOptions disables transit gating and fades so moves apply back to back.
func quietOptions() core.Options {
	opts := core.DefaultOptions()
	opts.MoveDuration = 0
	opts.FadeDuration = 0
	opts.Logger = log.New(io.Discard)
	return opts
}

// newEngine builds an engine from board rows written top row first.
func newEngine(t *testing.T, opts core.Options, rows ...string) *core.Engine {
	t.Helper()
	lvl, err := levels.Parse("test", []byte(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	e, err := core.New(lvl.Grid, opts)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func right() core.Vec { return core.DirRight.Vec() }
func left() core.Vec  { return core.DirLeft.Vec() }
func up() core.Vec    { return core.DirUp.Vec() }

func mustMove(t *testing.T, e *core.Engine, v core.Vec) core.MoveResult {
	t.Helper()
	res := e.Move(v)
	if !res.Moved {
		t.Fatalf("move %v rejected", v)
	}
	return res
}

func headAt(t *testing.T, e *core.Engine) core.Pos {
	t.Helper()
	p, ok := e.Head()
	if !ok {
		t.Fatal("no head")
	}
	return p
}

const ms = time.Millisecond
