package sim

import (
	"errors"
	"testing"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	g, err := ParseLayout(DefaultLayout())
	if err != nil {
		t.Fatalf("ParseLayout(DefaultLayout()) failed: %v", err)
	}
	if g.W != Width || g.H != Height {
		t.Errorf("grid is %dx%d, expected %dx%d", g.W, g.H, Width, Height)
	}
	if got := g.At(C(10, 1)); got != KindPower {
		t.Errorf("At(10,1) = %v, expected power", got)
	}
	if got := g.At(C(0, 0)); got != KindWall {
		t.Errorf("At(0,0) = %v, expected wall", got)
	}
}

func TestParseLayoutRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Layout)
		code   string
	}{
		{
			name:   "missing row",
			mutate: func(l *Layout) { l.Rows = l.Rows[:Height-1] },
			code:   "ROW_COUNT",
		},
		{
			name:   "extra row",
			mutate: func(l *Layout) { l.Rows = append(l.Rows, "###############") },
			code:   "ROW_COUNT",
		},
		{
			name:   "short row",
			mutate: func(l *Layout) { l.Rows[3] = "#.....#" },
			code:   "ROW_WIDTH",
		},
		{
			name:   "unknown glyph",
			mutate: func(l *Layout) { l.Rows[5] = "#......X......#" },
			code:   "GLYPH",
		},
		{
			name:   "open border",
			mutate: func(l *Layout) { l.Rows[5] = "..............#" },
			code:   "BORDER",
		},
		{
			name:   "player inside wall",
			mutate: func(l *Layout) { l.Player = C(6, 6) },
			code:   "PLAYER_SPAWN",
		},
		{
			name:   "player out of bounds",
			mutate: func(l *Layout) { l.Player = C(-1, 6) },
			code:   "PLAYER_SPAWN",
		},
		{
			name:   "too few adversaries",
			mutate: func(l *Layout) { l.Adversaries = l.Adversaries[:2] },
			code:   "ADVERSARY_COUNT",
		},
		{
			name:   "adversary inside wall",
			mutate: func(l *Layout) { l.Adversaries[2] = C(2, 2) },
			code:   "ADVERSARY_SPAWN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := DefaultLayout()
			tc.mutate(&l)

			_, err := ParseLayout(l)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			var le *LayoutError
			if !errors.As(err, &le) {
				t.Fatalf("expected *LayoutError, got %T", err)
			}
			if le.Code != tc.code {
				t.Errorf("Code = %q, expected %q (%v)", le.Code, tc.code, err)
			}
		})
	}
}

func TestNewRejectsMalformedLayout(t *testing.T) {
	l := DefaultLayout()
	l.Rows[0] = "##"

	if _, err := New(l, DefaultRules(), &script{}); err == nil {
		t.Error("New should fail on a malformed layout")
	}
	if err := ValidateLayout(l); err == nil {
		t.Error("ValidateLayout should fail on a malformed layout")
	}
}

func TestGridPassable(t *testing.T) {
	g, err := ParseLayout(DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		c        Coord
		expected bool
	}{
		{"pickup", C(1, 1), true},
		{"power", C(10, 1), true},
		{"wall", C(6, 1), false},
		{"border", C(0, 5), false},
		{"left of board", C(-1, 5), false},
		{"right of board", C(Width, 5), false},
		{"above board", C(5, -1), false},
		{"below board", C(5, Height), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Passable(tc.c); got != tc.expected {
				t.Errorf("Passable(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridConsume(t *testing.T) {
	g, err := ParseLayout(DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	before := g.Remaining()

	if got := g.Consume(C(1, 1)); got != ConsumedPickup {
		t.Errorf("Consume(pickup) = %v, expected ConsumedPickup", got)
	}
	if got := g.At(C(1, 1)); got != KindEmpty {
		t.Errorf("pickup cell should be empty after consume, got %v", got)
	}
	if got := g.Consume(C(1, 1)); got != ConsumedNone {
		t.Errorf("second Consume = %v, expected ConsumedNone", got)
	}

	if got := g.Consume(C(10, 1)); got != ConsumedPower {
		t.Errorf("Consume(power) = %v, expected ConsumedPower", got)
	}
	if got := g.Consume(C(0, 0)); got != ConsumedNone {
		t.Errorf("Consume(wall) = %v, expected ConsumedNone", got)
	}
	if got := g.At(C(0, 0)); got != KindWall {
		t.Errorf("wall should stay a wall, got %v", got)
	}

	if g.Remaining() != before-2 {
		t.Errorf("Remaining() = %d, expected %d", g.Remaining(), before-2)
	}
}

func TestGridClone(t *testing.T) {
	g, err := ParseLayout(DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	clone := g.Clone()
	clone.Consume(C(1, 1))

	if g.At(C(1, 1)) != KindPickup {
		t.Error("consuming on a clone should not affect the original")
	}
}
