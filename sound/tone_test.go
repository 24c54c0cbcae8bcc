package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/jtestard/pingpong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCues_CoverEveryAudibleEvent(t *testing.T) {
	for k := pong.ScoreChanged; k <= pong.StateChanged; k++ {
		_, ok := Cues[k]
		assert.Equal(t, k.IsCue(), ok, "event %s", k)
	}
}

func TestMix_Length(t *testing.T) {
	tests := []struct {
		kind pong.EventKind
		want time.Duration
	}{
		{pong.Hit, 100 * time.Millisecond},
		{pong.Bounce, 50 * time.Millisecond},
		{pong.Win, 500 * time.Millisecond},
		{pong.Lose, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Len(t, Mix(Cues[tt.kind]), samples(tt.want))
		})
	}
}

func TestMix_EnvelopeStartsSilentAndFades(t *testing.T) {
	buf := Mix([]Tone{{Freq: 440, Duration: 200 * time.Millisecond, Wave: Square, Volume: 0.5}})
	require.NotEmpty(t, buf)

	assert.Zero(t, buf[0])
	assert.InDelta(t, 0, buf[len(buf)-1], 0.002)
	for _, v := range buf {
		assert.LessOrEqual(t, v, 0.5+1e-9)
		assert.GreaterOrEqual(t, v, -0.5-1e-9)
	}
}

func TestOscillate(t *testing.T) {
	assert.InDelta(t, 1, oscillate(Sine, 0.25), 1e-9)
	assert.Equal(t, 1.0, oscillate(Square, 0.1))
	assert.Equal(t, -1.0, oscillate(Square, 0.6))
	assert.InDelta(t, 0, oscillate(Sawtooth, 0.5), 1e-9)
	assert.InDelta(t, 1, oscillate(Triangle, 0.5), 1e-9)
	assert.InDelta(t, -1, oscillate(Triangle, 1.0), 1e-9)
}

func TestPCM_StereoFrames(t *testing.T) {
	tones := []Tone{{Freq: 300, Duration: 20 * time.Millisecond, Wave: Sawtooth, Volume: 1}}
	pcm := PCM(tones)
	mono := Mix(tones)
	require.Len(t, pcm, 4*len(mono))

	for i := 0; i < len(mono); i++ {
		l := binary.LittleEndian.Uint16(pcm[4*i:])
		r := binary.LittleEndian.Uint16(pcm[4*i+2:])
		assert.Equal(t, l, r)
	}
}
