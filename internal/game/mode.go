package game

// Mode is the phase of a session.
type Mode int

const (
	ModePlaying  Mode = iota // Clock and collisions run
	ModeLevelWon             // Field cleared, waiting for AdvanceLevel
	ModeGameOver             // No lives left
	ModeReport               // Statistics report shown over game over
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeLevelWon:
		return "level-won"
	case ModeGameOver:
		return "game-over"
	case ModeReport:
		return "report"
	default:
		return "unknown"
	}
}

// Running reports whether ticks advance the simulation in this mode.
func (m Mode) Running() bool {
	return m == ModePlaying
}
