package game

// GameState holds the run-wide mutable state. It is owned by Game and touched
// only from the frame-tick context; nothing else writes to it.
type GameState struct {
	Running    bool
	Paused     bool
	GameOver   bool
	AutoPaused bool // pause came from a visibility event, not the player

	Score  int
	Misses int

	// Speed is the base forward speed, bounded to
	// [PlayerSpeedBase, PlayerSpeedMax]. The accelerate boost is applied on
	// top per frame and never stored here.
	Speed float64

	Distance   float64
	LastSpawnZ float64
}

// reset restores the state for a fresh run.
func (s *GameState) reset() {
	s.Running = false
	s.Paused = false
	s.GameOver = false
	s.AutoPaused = false
	s.Score = 0
	s.Misses = 0
	s.Speed = PlayerSpeedBase
	s.Distance = 0
	s.LastSpawnZ = 0
}

// SpeedPercent reports the base speed as a percentage of the maximum, for the
// UI readout.
func (s *GameState) SpeedPercent() int {
	return int(s.Speed / PlayerSpeedMax * 100)
}

// Intensity derives the audio pressure signal from the run state: the miss
// ratio plus a score term, clamped to [0, 1].
func (s *GameState) Intensity() float64 {
	v := float64(s.Misses)/float64(MaxMisses) + float64(s.Score)*0.05
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}
