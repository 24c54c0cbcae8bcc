// Package config loads session settings from an optional file and
// PINGPONG_* environment variables on top of pong.DefaultConfig.
package config

import (
	"fmt"
	"strings"

	"github.com/jtestard/pingpong/pong"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PINGPONG_WIN_SCORE=5 or PINGPONG_FIELD_WIDTH=1024.
const EnvPrefix = "PINGPONG"

// Load returns the default configuration overlaid with the file at path (if
// path is not empty) and the environment. The result is validated.
func Load(path string) (pong.Config, error) {
	v := viper.New()
	setDefaults(v, pong.DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return pong.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg pong.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return pong.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return pong.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can find them during
// Unmarshal.
func setDefaults(v *viper.Viper, d pong.Config) {
	v.SetDefault("field.width", d.Field.Width)
	v.SetDefault("field.height", d.Field.Height)

	v.SetDefault("paddle_width", d.PaddleWidth)
	v.SetDefault("paddle_height", d.PaddleHeight)
	v.SetDefault("paddle_shift", d.PaddleShift)
	v.SetDefault("player_speed", d.PlayerSpeed)
	v.SetDefault("opponent_speed", d.OpponentSpeed)
	v.SetDefault("dead_zone", d.DeadZone)

	v.SetDefault("ball_radius", d.BallRadius)
	v.SetDefault("base_speed", d.BaseSpeed)
	v.SetDefault("dy_spread", d.DySpread)
	v.SetDefault("jitter_x", d.JitterX)
	v.SetDefault("jitter_y", d.JitterY)
	v.SetDefault("deflection", d.Deflection)

	v.SetDefault("win_score", d.WinScore)
	v.SetDefault("win_delay", d.WinDelay)
	v.SetDefault("lose_delay", d.LoseDelay)
	v.SetDefault("ticks_per_second", d.TicksPerSecond)

	v.SetDefault("ball_count", d.BallCount)
	v.SetDefault("speed_multiplier", d.SpeedMultiplier)
	v.SetDefault("sound", d.Sound)
}
