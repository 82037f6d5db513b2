package dodgeball

// EntitySnapshot is the observable part of an entity.
type EntitySnapshot struct {
	Kind  Kind
	X, Y  int
	W, H  int
	Speed int
}

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	GameOver  bool
	Player    EntitySnapshot
	Obstacles []EntitySnapshot
}

func snapshotOf(e Entity) EntitySnapshot {
	return EntitySnapshot{Kind: e.kind, X: e.x, Y: e.y, W: e.w, H: e.h, Speed: e.speed}
}

// Snapshot returns the current game snapshot.
func (s *Simulation) Snapshot() Snapshot {
	obstacles := make([]EntitySnapshot, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = snapshotOf(o)
	}
	return Snapshot{
		Tick:      s.ticks,
		GameOver:  s.over,
		Player:    snapshotOf(s.player),
		Obstacles: obstacles,
	}
}
