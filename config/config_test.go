package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jtestard/pingpong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, pong.DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pingpong.yaml")
	data := []byte(`
field:
  width: 1024
  height: 512
win_score: 5
ball_count: 3
speed_multiplier: 1.8
sound: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, pong.Field{Width: 1024, Height: 512}, cfg.Field)
	assert.Equal(t, 5, cfg.WinScore)
	assert.Equal(t, 3, cfg.BallCount)
	assert.Equal(t, float32(1.8), cfg.SpeedMultiplier)
	assert.False(t, cfg.Sound)
	assert.Equal(t, pong.DefaultConfig().PaddleHeight, cfg.PaddleHeight, "unset keys keep their defaults")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PINGPONG_WIN_SCORE", "3")
	t.Setenv("PINGPONG_FIELD_HEIGHT", "600")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.WinScore)
	assert.Equal(t, float32(600), cfg.Field.Height)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ball_count": 9}`), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, pong.ErrBallCount)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_NonFiniteEnv(t *testing.T) {
	t.Setenv("PINGPONG_SPEED_MULTIPLIER", "NaN")
	_, err := Load("")
	assert.ErrorIs(t, err, pong.ErrSpeedMultiplier)
}
