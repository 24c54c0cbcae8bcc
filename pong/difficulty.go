package pong

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownPreset   = errors.New("unknown difficulty preset")
	ErrBallCount       = errors.New("ball count out of range")
	ErrSpeedMultiplier = errors.New("speed multiplier out of range")
)

const (
	MinBalls = 1
	MaxBalls = 5

	MaxSpeedMultiplier = 3
)

// Preset is a named difficulty bundle.
type Preset string

const (
	Easy    Preset = "easy"
	Medium  Preset = "medium"
	Hard    Preset = "hard"
	Extreme Preset = "extreme"
	// Custom is reported once ball count or speed was picked by hand.
	Custom Preset = "custom"
)

// Difficulty is the pair a preset fixes.
type Difficulty struct {
	BallCount       int     `json:"ballCount"`
	SpeedMultiplier float32 `json:"speedMultiplier"`
}

var presets = map[Preset]Difficulty{
	Easy:    {BallCount: 1, SpeedMultiplier: 0.8},
	Medium:  {BallCount: 2, SpeedMultiplier: 1.2},
	Hard:    {BallCount: 3, SpeedMultiplier: 1.8},
	Extreme: {BallCount: 5, SpeedMultiplier: 2.5},
}

// Presets lists the selectable presets from easiest to hardest.
func Presets() []Preset {
	return []Preset{Easy, Medium, Hard, Extreme}
}

// ParsePreset resolves a preset name, ignoring case.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Difficulty returns the ball count and speed multiplier for p.
func (p Preset) Difficulty() (Difficulty, bool) {
	d, ok := presets[p]
	return d, ok
}

func validBallCount(n int) error {
	if n < MinBalls || n > MaxBalls {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrBallCount, n, MinBalls, MaxBalls)
	}
	return nil
}

func validSpeedMultiplier(m float32) error {
	if !(m > 0 && m <= MaxSpeedMultiplier) {
		return fmt.Errorf("%w: %v not in (0, %d]", ErrSpeedMultiplier, m, MaxSpeedMultiplier)
	}
	return nil
}
