package sim

// Snapshot captures the complete simulation state for determinism testing
// and debugging. It is comparable with ==.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	Lives       int
	PowerMode   bool
	PowerTimer  int
	Player      Coord
	Adversaries [AdversaryCount]Coord
	Remaining   int
}

// Snapshot returns the current simulation snapshot.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Phase:      s.Phase(),
		Score:      s.state.Score,
		Lives:      s.state.Lives,
		PowerMode:  s.state.PowerMode,
		PowerTimer: s.state.PowerTimer,
		Player:     s.player.Pos,
		Remaining:  s.grid.Remaining(),
	}
	for i, a := range s.adversaries {
		if i < AdversaryCount {
			snap.Adversaries[i] = a.Pos
		}
	}
	return snap
}
