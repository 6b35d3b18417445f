package sim

import "fmt"

// Board dimensions. The board is fixed; layouts of any other size are rejected.
const (
	Width          = 15
	Height         = 13
	AdversaryCount = 4
)

// Layout glyphs.
const (
	GlyphWall   = '#'
	GlyphPickup = '.'
	GlyphPower  = 'O'
	GlyphEmpty  = ' '
)

// Layout is the literal description a game starts from.
type Layout struct {
	Rows        []string
	Player      Coord
	Adversaries []Coord
}

// DefaultLayout returns the built-in maze with its spawn points.
func DefaultLayout() Layout {
	return Layout{
		Rows: []string{
			"###############",
			"#.....#...O...#",
			"#.###.#.###.#.#",
			"#.....#.....#.#",
			"#.#.#######.#.#",
			"#.............#",
			"#.###.#.###.#.#",
			"#...#.#.#...#.#",
			"###.#.#.#.#.###",
			"#.............#",
			"#.###.#.###.#.#",
			"#O....#.....O.#",
			"###############",
		},
		Player: C(7, 6),
		Adversaries: []Coord{
			C(1, 1),
			C(13, 1),
			C(1, 11),
			C(13, 11),
		},
	}
}

// LayoutError describes why a layout was rejected.
type LayoutError struct {
	Code    string
	Message string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func layoutErr(code, format string, args ...any) *LayoutError {
	return &LayoutError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ParseLayout validates l and builds its grid.
// Any mismatch against the fixed board is a *LayoutError.
func ParseLayout(l Layout) (*Grid, error) {
	if len(l.Rows) != Height {
		return nil, layoutErr("ROW_COUNT", "layout has %d rows, want %d", len(l.Rows), Height)
	}

	g := newGrid(Width, Height)
	for y, row := range l.Rows {
		runes := []rune(row)
		if len(runes) != Width {
			return nil, layoutErr("ROW_WIDTH", "row %d has %d columns, want %d", y, len(runes), Width)
		}
		for x, r := range runes {
			k, ok := kindForGlyph(r)
			if !ok {
				return nil, layoutErr("GLYPH", "unknown glyph %q at (%d,%d)", r, x, y)
			}
			onBorder := x == 0 || y == 0 || x == Width-1 || y == Height-1
			if onBorder && k != KindWall {
				return nil, layoutErr("BORDER", "border cell (%d,%d) is not a wall", x, y)
			}
			g.set(C(x, y), k)
		}
	}

	if !g.Passable(l.Player) {
		return nil, layoutErr("PLAYER_SPAWN", "player spawn %v is not passable", l.Player)
	}
	if len(l.Adversaries) != AdversaryCount {
		return nil, layoutErr("ADVERSARY_COUNT", "layout has %d adversary spawns, want %d", len(l.Adversaries), AdversaryCount)
	}
	for i, c := range l.Adversaries {
		if !g.Passable(c) {
			return nil, layoutErr("ADVERSARY_SPAWN", "adversary %d spawn %v is not passable", i, c)
		}
	}

	return g, nil
}

// ValidateLayout checks l without keeping the grid.
func ValidateLayout(l Layout) error {
	_, err := ParseLayout(l)
	return err
}

func kindForGlyph(r rune) (Kind, bool) {
	switch r {
	case GlyphWall:
		return KindWall, true
	case GlyphPickup:
		return KindPickup, true
	case GlyphPower:
		return KindPower, true
	case GlyphEmpty:
		return KindEmpty, true
	}
	return KindWall, false
}
