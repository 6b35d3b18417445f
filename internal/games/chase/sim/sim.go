// Package sim is the maze chase simulation: the board, the player, the
// adversaries and the score/lives/power bookkeeping, advanced one tick at a
// time. It has no terminal or timing dependencies; the platform drives it.
package sim

// Rules holds the tunable constants of a game.
type Rules struct {
	PickupPoints int // Score for a pickup
	PowerPoints  int // Score for a power pickup
	CatchPoints  int // Score for catching an adversary in power mode
	PowerTicks   int // Power mode duration, reset on every power pickup
	Lives        int // Starting lives
}

// DefaultRules returns the standard scoring and timing.
func DefaultRules() Rules {
	return Rules{
		PickupPoints: 10,
		PowerPoints:  50,
		CatchPoints:  200,
		PowerTicks:   20,
		Lives:        3,
	}
}

// State is the mutable game bookkeeping. Sim is its only writer.
type State struct {
	Score      int
	Lives      int
	GameOver   bool
	Won        bool
	PowerMode  bool
	PowerTimer int
}

// Phase is the macro state of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "playing"
	}
}

// Player is the controlled entity.
type Player struct {
	Pos   Coord
	Spawn Coord
}

// Adversary is a roaming entity. It returns to Spawn when caught.
type Adversary struct {
	Pos   Coord
	Spawn Coord
}

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// Outcome summarizes what happened during one tick.
type Outcome struct {
	Moved      bool     // Player input was applied
	Consumed   Consumed // What the player picked up, if anything
	LivesLost  int
	Caught     int // Adversaries sent back to spawn
	PowerEnded bool
	Won        bool
	Lost       bool
}

// Sim owns every piece of game state.
type Sim struct {
	grid        *Grid
	player      Player
	adversaries []Adversary
	state       State
	rules       Rules
	rng         Chooser
	tick        uint64
}

// New builds a simulation from a layout. The layout is validated here;
// a malformed one is returned as a *LayoutError.
func New(layout Layout, rules Rules, rng Chooser) (*Sim, error) {
	grid, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}

	// The player stands on its spawn cell from the start.
	grid.set(layout.Player, KindEmpty)

	advs := make([]Adversary, len(layout.Adversaries))
	for i, c := range layout.Adversaries {
		advs[i] = Adversary{Pos: c, Spawn: c}
	}

	return &Sim{
		grid:        grid,
		player:      Player{Pos: layout.Player, Spawn: layout.Player},
		adversaries: advs,
		state:       State{Lives: rules.Lives},
		rules:       rules,
		rng:         rng,
	}, nil
}

// Grid returns the static board.
func (s *Sim) Grid() *Grid { return s.grid }

// Player returns the player entity.
func (s *Sim) Player() Player { return s.player }

// Adversaries returns a copy of the adversary list in iteration order.
func (s *Sim) Adversaries() []Adversary {
	out := make([]Adversary, len(s.adversaries))
	copy(out, s.adversaries)
	return out
}

// State returns a copy of the bookkeeping.
func (s *Sim) State() State { return s.state }

// Rules returns the rules the game was created with.
func (s *Sim) Rules() Rules { return s.rules }

// Ticks returns the number of ticks processed while playing.
func (s *Sim) Ticks() uint64 { return s.tick }

// Phase reports whether the game is running, won or lost.
func (s *Sim) Phase() Phase {
	switch {
	case !s.state.GameOver:
		return PhasePlaying
	case s.state.Won:
		return PhaseWon
	default:
		return PhaseLost
	}
}

// Tick advances the game one step: player input, adversaries, win check,
// power timer, strictly in that order. It does nothing once the game is over.
func (s *Sim) Tick(d Dir) Outcome {
	var out Outcome
	if s.state.GameOver {
		return out
	}
	s.tick++

	out.Moved, out.Consumed = s.movePlayer(d)
	out.LivesLost, out.Caught = s.moveAdversaries()
	if s.state.GameOver {
		out.Lost = true
		return out
	}

	out.Won = s.CheckWin()
	out.PowerEnded = s.UpdatePower()
	return out
}

// MovePlayer steps the player one cell. Blocked moves are ignored and
// return false.
func (s *Sim) MovePlayer(d Dir) bool {
	moved, _ := s.movePlayer(d)
	return moved
}

func (s *Sim) movePlayer(d Dir) (bool, Consumed) {
	if d == DirNone {
		return false, ConsumedNone
	}
	target := s.player.Pos.Step(d)
	if !s.grid.Passable(target) {
		return false, ConsumedNone
	}

	got := s.grid.Consume(target)
	switch got {
	case ConsumedPickup:
		s.state.Score += s.rules.PickupPoints
	case ConsumedPower:
		s.state.Score += s.rules.PowerPoints
		s.state.PowerMode = true
		s.state.PowerTimer = s.rules.PowerTicks
	}
	s.player.Pos = target
	return true, got
}

// MoveAdversaries moves every adversary once and resolves collisions.
func (s *Sim) MoveAdversaries() {
	s.moveAdversaries()
}

func (s *Sim) moveAdversaries() (livesLost, caught int) {
	for i := range s.adversaries {
		a := &s.adversaries[i]
		s.stepAdversary(a)

		if a.Pos != s.player.Pos {
			continue
		}
		if s.state.PowerMode {
			s.state.Score += s.rules.CatchPoints
			a.Pos = a.Spawn
			caught++
			continue
		}

		s.state.Lives--
		livesLost++
		if s.state.Lives <= 0 {
			s.state.Lives = 0
			s.state.GameOver = true
			return livesLost, caught
		}
		s.player.Pos = s.player.Spawn
	}
	return livesLost, caught
}

// stepAdversary performs one random-walk step.
func (s *Sim) stepAdversary(a *Adversary) {
	var options [4]Coord
	n := 0
	for _, d := range neighborOrder {
		c := a.Pos.Step(d)
		if s.grid.Passable(c) {
			options[n] = c
			n++
		}
	}
	if n == 0 {
		return
	}
	a.Pos = options[s.rng.Intn(n)]
}

// CheckWin ends the game as won once no pickups remain.
func (s *Sim) CheckWin() bool {
	if s.state.GameOver {
		return false
	}
	if s.grid.Remaining() == 0 {
		s.state.Won = true
		s.state.GameOver = true
		return true
	}
	return false
}

// UpdatePower counts down power mode. It reports whether power mode ended.
func (s *Sim) UpdatePower() bool {
	if !s.state.PowerMode {
		return false
	}
	s.state.PowerTimer--
	if s.state.PowerTimer <= 0 {
		s.state.PowerTimer = 0
		s.state.PowerMode = false
		return true
	}
	return false
}

// Tile is what occupies a cell once entities are layered over the grid.
type Tile int

const (
	TileWall Tile = iota
	TileEmpty
	TilePickup
	TilePower
	TilePlayer
	TileAdversary
)

// TileAt returns the visible occupant of c. An adversary sharing the
// player's cell is shown over the player.
func (s *Sim) TileAt(c Coord) Tile {
	for _, a := range s.adversaries {
		if a.Pos == c {
			return TileAdversary
		}
	}
	if s.player.Pos == c {
		return TilePlayer
	}
	switch s.grid.At(c) {
	case KindEmpty:
		return TileEmpty
	case KindPickup:
		return TilePickup
	case KindPower:
		return TilePower
	default:
		return TileWall
	}
}
