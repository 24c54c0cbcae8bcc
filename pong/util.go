package pong

// Position is a set of coordinates in 2-D plan
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Field is the rectangular play area
type Field struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Center returns the center position of the field
func (f Field) Center() Position {
	return Position{
		X: f.Width / 2,
		Y: f.Height / 2,
	}
}

// GameState is an enum that represents all possible match states
type GameState byte

const (
	IdleState GameState = iota
	PlayState
	PauseState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case IdleState:
		return "idle"
	case PlayState:
		return "running"
	case PauseState:
		return "paused"
	case GameOverState:
		return "ended"
	}
	return "unknown"
}

// MarshalText lets the state travel as a readable string.
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
