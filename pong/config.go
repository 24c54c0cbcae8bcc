package pong

import (
	"errors"
	"fmt"
	"math"
)

// Config holds the tunable parameters of a session. Values are in field
// units and ticks.
type Config struct {
	Field Field `json:"field" mapstructure:"field"`

	// Paddles
	PaddleWidth   float32 `json:"paddleWidth" mapstructure:"paddle_width"`
	PaddleHeight  float32 `json:"paddleHeight" mapstructure:"paddle_height"`
	PaddleShift   float32 `json:"paddleShift" mapstructure:"paddle_shift"` // distance of the player paddle from the left wall
	PlayerSpeed   float32 `json:"playerSpeed" mapstructure:"player_speed"`
	OpponentSpeed float32 `json:"opponentSpeed" mapstructure:"opponent_speed"`
	DeadZone      float32 `json:"deadZone" mapstructure:"dead_zone"`

	// Balls
	BallRadius float32 `json:"ballRadius" mapstructure:"ball_radius"`
	BaseSpeed  float32 `json:"baseSpeed" mapstructure:"base_speed"`
	DySpread   float32 `json:"dySpread" mapstructure:"dy_spread"`
	JitterX    float32 `json:"jitterX" mapstructure:"jitter_x"`
	JitterY    float32 `json:"jitterY" mapstructure:"jitter_y"`
	Deflection float32 `json:"deflection" mapstructure:"deflection"`

	// Match
	WinScore       int `json:"winScore" mapstructure:"win_score"`
	WinDelay       int `json:"winDelay" mapstructure:"win_delay"`   // ticks before the automatic reset after a player win
	LoseDelay      int `json:"loseDelay" mapstructure:"lose_delay"` // ticks before the automatic reset after an opponent win
	TicksPerSecond int `json:"ticksPerSecond" mapstructure:"ticks_per_second"`

	BallCount       int     `json:"ballCount" mapstructure:"ball_count"`
	SpeedMultiplier float32 `json:"speedMultiplier" mapstructure:"speed_multiplier"`
	Sound           bool    `json:"sound" mapstructure:"sound"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		Field: Field{Width: 800, Height: 400},

		PaddleWidth:   10,
		PaddleHeight:  100,
		PaddleShift:   20,
		PlayerSpeed:   6,
		OpponentSpeed: 4,
		DeadZone:      10,

		BallRadius: 10,
		BaseSpeed:  4,
		DySpread:   3,
		JitterX:    100,
		JitterY:    50,
		Deflection: 8,

		WinScore:       10,
		WinDelay:       120,
		LoseDelay:      60,
		TicksPerSecond: 60,

		BallCount:       1,
		SpeedMultiplier: 1,
		Sound:           true,
	}
}

func (c Config) floats() map[string]float32 {
	return map[string]float32{
		"field width":    c.Field.Width,
		"field height":   c.Field.Height,
		"paddle width":   c.PaddleWidth,
		"paddle height":  c.PaddleHeight,
		"paddle shift":   c.PaddleShift,
		"player speed":   c.PlayerSpeed,
		"opponent speed": c.OpponentSpeed,
		"dead zone":      c.DeadZone,
		"ball radius":    c.BallRadius,
		"base speed":     c.BaseSpeed,
		"dy spread":      c.DySpread,
		"jitter x":       c.JitterX,
		"jitter y":       c.JitterY,
		"deflection":     c.Deflection,
	}
}

// Validate reports the first inconsistent value in c.
func (c Config) Validate() error {
	for name, v := range c.floats() {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%s must be a finite number, got %v", name, v)
		}
	}
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("field must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return errors.New("paddle dimensions must be positive")
	case c.PaddleHeight > c.Field.Height:
		return fmt.Errorf("paddle height %v exceeds field height %v", c.PaddleHeight, c.Field.Height)
	case c.PaddleShift < 0 || 2*(c.PaddleShift+c.PaddleWidth) >= c.Field.Width:
		return fmt.Errorf("paddle shift %v does not fit the field", c.PaddleShift)
	case c.PlayerSpeed < 0 || c.OpponentSpeed < 0:
		return errors.New("paddle speeds must not be negative")
	case c.DeadZone < 0:
		return errors.New("dead zone must not be negative")
	case c.DySpread < 0 || c.JitterX < 0 || c.JitterY < 0:
		return errors.New("serve spread and jitter must not be negative")
	case c.Deflection < 0:
		return errors.New("deflection must not be negative")
	case c.BallRadius <= 0:
		return errors.New("ball radius must be positive")
	case c.BaseSpeed <= 0:
		return errors.New("base speed must be positive")
	case c.WinScore <= 0:
		return errors.New("win score must be positive")
	case c.WinDelay < 0 || c.LoseDelay < 0:
		return errors.New("reset delays must not be negative")
	case c.TicksPerSecond <= 0:
		return errors.New("ticks per second must be positive")
	}
	if err := validBallCount(c.BallCount); err != nil {
		return err
	}
	return validSpeedMultiplier(c.SpeedMultiplier)
}
