package sim

// Kind is the static contents of a grid cell.
type Kind uint8

const (
	KindWall Kind = iota
	KindEmpty
	KindPickup
	KindPower
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindEmpty:
		return "empty"
	case KindPickup:
		return "pickup"
	case KindPower:
		return "power"
	default:
		return "unknown"
	}
}

// Consumed reports what a Consume call picked up.
type Consumed int

const (
	ConsumedNone Consumed = iota
	ConsumedPickup
	ConsumedPower
)

// Grid is the static board. It never records where entities stand;
// positions are layered over it by Sim.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	cells []Kind
}

func newGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, cells: make([]Kind, w*h)}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the cell kind at c. Out-of-bounds coordinates read as walls.
func (g *Grid) At(c Coord) Kind {
	if !g.InBounds(c) {
		return KindWall
	}
	return g.cells[g.index(c)]
}

func (g *Grid) set(c Coord, k Kind) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = k
	}
}

// Passable reports whether an entity may stand on c.
// It is the only movement check for the player and every adversary.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != KindWall
}

// Consume empties a pickup or power pickup at c and reports which it was.
// Any other cell is left untouched and yields ConsumedNone.
func (g *Grid) Consume(c Coord) Consumed {
	switch g.At(c) {
	case KindPickup:
		g.set(c, KindEmpty)
		return ConsumedPickup
	case KindPower:
		g.set(c, KindEmpty)
		return ConsumedPower
	}
	return ConsumedNone
}

// Remaining returns the number of pickups and power pickups left.
func (g *Grid) Remaining() int {
	n := 0
	for _, k := range g.cells {
		if k == KindPickup || k == KindPower {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Kind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}
