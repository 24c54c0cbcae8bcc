// Package sound synthesizes the short cue tones as 16-bit stereo PCM.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/jtestard/pingpong/pong"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = 44100

// Wave is an oscillator shape.
type Wave byte

const (
	Sine Wave = iota
	Square
	Sawtooth
	Triangle
)

// Tone is one note of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
	Offset   time.Duration // start relative to the cue
}

// Cues maps every audible event to its notes.
var Cues = map[pong.EventKind][]Tone{
	pong.Hit:    {{Freq: 800, Duration: 100 * time.Millisecond, Wave: Square, Volume: 0.2}},
	pong.Miss:   {{Freq: 200, Duration: 300 * time.Millisecond, Wave: Sawtooth, Volume: 0.15}},
	pong.Bounce: {{Freq: 600, Duration: 50 * time.Millisecond, Wave: Triangle, Volume: 0.1}},
	pong.Win: {
		{Freq: 523, Duration: 200 * time.Millisecond, Wave: Sine, Volume: 0.2},
		{Freq: 659, Duration: 200 * time.Millisecond, Wave: Sine, Volume: 0.2, Offset: 100 * time.Millisecond},
		{Freq: 784, Duration: 300 * time.Millisecond, Wave: Sine, Volume: 0.2, Offset: 200 * time.Millisecond},
	},
	pong.Lose: {
		{Freq: 400, Duration: 300 * time.Millisecond, Wave: Sawtooth, Volume: 0.2},
		{Freq: 300, Duration: 400 * time.Millisecond, Wave: Sawtooth, Volume: 0.15, Offset: 100 * time.Millisecond},
	},
}

const (
	attack = 10 * time.Millisecond
	floor  = 0.001
)

func samples(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

func oscillate(w Wave, phase float64) float64 {
	phase -= math.Floor(phase)
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// envelope ramps linearly up to vol over the attack, then decays
// exponentially to the floor at the end of the note.
func envelope(t, length, vol float64) float64 {
	a := attack.Seconds()
	if t < a {
		return vol * t / a
	}
	if length <= a {
		return vol
	}
	k := math.Log(floor/vol) / (length - a)
	return vol * math.Exp(k*(t-a))
}

// Mix renders tones into a mono float buffer.
func Mix(tones []Tone) []float64 {
	n := 0
	for _, t := range tones {
		if end := samples(t.Offset) + samples(t.Duration); end > n {
			n = end
		}
	}
	buf := make([]float64, n)
	for _, t := range tones {
		start := samples(t.Offset)
		length := t.Duration.Seconds()
		for i := 0; i < samples(t.Duration); i++ {
			sec := float64(i) / SampleRate
			buf[start+i] += oscillate(t.Wave, t.Freq*sec) * envelope(sec, length, t.Volume)
		}
	}
	return buf
}

// PCM renders tones as little-endian signed 16-bit stereo frames.
func PCM(tones []Tone) []byte {
	mono := Mix(tones)
	out := make([]byte, len(mono)*4)
	for i, v := range mono {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[4*i:], s)
		binary.LittleEndian.PutUint16(out[4*i+2:], s)
	}
	return out
}
