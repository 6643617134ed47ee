package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("edges = %d,%d, want 6,5", r.Right(), r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		outer Rect
		w, h  int
		want  Rect
	}{
		{NewRect(0, 0, 80, 24), 10, 4, NewRect(35, 10, 10, 4)},
		{NewRect(5, 5, 11, 3), 4, 1, NewRect(8, 6, 4, 1)},
		{NewRect(0, 0, 4, 4), 6, 6, NewRect(-1, -1, 6, 6)},
	}
	for _, tt := range tests {
		if got := tt.outer.Centered(tt.w, tt.h); got != tt.want {
			t.Errorf("%+v.Centered(%d,%d) = %+v, want %+v", tt.outer, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ val, lo, hi, want int }{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d,%d,%d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF = %v, want 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF = %v, want 0", got)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright_green"); !ok || c != ColorBrightGreen {
		t.Errorf("bright_green = %v, %v", c, ok)
	}
	if c, ok := ParseColor("grey"); !ok || c != ColorGray {
		t.Errorf("grey = %v, %v", c, ok)
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("unknown colors should report false")
	}
}

func TestTickDuration(t *testing.T) {
	if d := (RuntimeConfig{TickRate: 50}).TickDuration(); d.Milliseconds() != 20 {
		t.Errorf("50 Hz tick = %v, want 20ms", d)
	}
	if d := (RuntimeConfig{}).TickDuration(); d != DefaultConfig().TickDuration() {
		t.Errorf("zero rate should use 60 Hz, got %v", d)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Type('c')
	f.Type(KeyEnter)

	if !f.Has(ActionUp) || len(f.Typed) != 2 {
		t.Fatalf("frame = %+v", f)
	}
	f.Clear()
	if f.Has(ActionUp) || len(f.Typed) != 0 {
		t.Errorf("frame not cleared: %+v", f)
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame has no actions")
	}
}
