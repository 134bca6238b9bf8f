package state

// MatchState represents the current state of a match
type MatchState int

const (
	StateLoading MatchState = iota
	StateRunning
	StateVictory
	StateDefeat
	StateIdle
)

// String returns the string representation of the match state
func (s MatchState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateRunning:
		return "Running"
	case StateVictory:
		return "Victory"
	case StateDefeat:
		return "Defeat"
	case StateIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Ended returns true once the match has a result
func (s MatchState) Ended() bool {
	return s == StateVictory || s == StateDefeat || s == StateIdle
}

// CanTransition reports whether the match may move from s to next.
// Loading only leads to running, running only to a result, a result only
// to idle, and idle back to loading on restart.
func (s MatchState) CanTransition(next MatchState) bool {
	switch s {
	case StateLoading:
		return next == StateRunning
	case StateRunning:
		return next == StateVictory || next == StateDefeat
	case StateVictory, StateDefeat:
		return next == StateIdle
	case StateIdle:
		return next == StateLoading
	default:
		return false
	}
}
