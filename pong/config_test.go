package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty field", func(c *Config) { c.Field = Field{} }},
		{"paddle taller than field", func(c *Config) { c.PaddleHeight = 500 }},
		{"paddles overlap", func(c *Config) { c.PaddleShift = 395 }},
		{"negative speed", func(c *Config) { c.OpponentSpeed = -1 }},
		{"no radius", func(c *Config) { c.BallRadius = 0 }},
		{"no base speed", func(c *Config) { c.BaseSpeed = 0 }},
		{"no win score", func(c *Config) { c.WinScore = 0 }},
		{"negative delay", func(c *Config) { c.LoseDelay = -1 }},
		{"no tick rate", func(c *Config) { c.TicksPerSecond = 0 }},
		{"too many balls", func(c *Config) { c.BallCount = 6 }},
		{"too fast", func(c *Config) { c.SpeedMultiplier = 4 }},
		{"NaN multiplier", func(c *Config) { c.SpeedMultiplier = float32(math.NaN()) }},
		{"NaN base speed", func(c *Config) { c.BaseSpeed = float32(math.NaN()) }},
		{"NaN deflection", func(c *Config) { c.Deflection = float32(math.NaN()) }},
		{"infinite field", func(c *Config) { c.Field.Width = float32(math.Inf(1)) }},
		{"negative dead zone", func(c *Config) { c.DeadZone = -1 }},
		{"negative jitter", func(c *Config) { c.JitterX = -100 }},
		{"negative spread", func(c *Config) { c.DySpread = -3 }},
		{"negative deflection", func(c *Config) { c.Deflection = -8 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
