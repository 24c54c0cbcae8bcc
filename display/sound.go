package display

import (
	"log"

	"github.com/hajimehoshi/ebiten/audio"
	"github.com/jtestard/pingpong/pong"
	"github.com/jtestard/pingpong/sound"
)

// SoundPlayer plays a cue for every audible event it receives. Subscribe it
// with Session.SubscribeCues so muting is handled by the session.
type SoundPlayer struct {
	players map[pong.EventKind]*audio.Player
}

// NewSoundPlayer renders every cue up front. It fails when no audio device
// can be opened; callers are expected to carry on without sound.
func NewSoundPlayer() (*SoundPlayer, error) {
	ctx, err := audio.NewContext(sound.SampleRate)
	if err != nil {
		return nil, err
	}
	sp := &SoundPlayer{players: make(map[pong.EventKind]*audio.Player)}
	for kind, tones := range sound.Cues {
		p, err := audio.NewPlayerFromBytes(ctx, sound.PCM(tones))
		if err != nil {
			return nil, err
		}
		sp.players[kind] = p
	}
	return sp, nil
}

// HandleEvent implements pong.EventSink.
func (sp *SoundPlayer) HandleEvent(e pong.Event) {
	p, ok := sp.players[e.Kind]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind %s: %v", e.Kind, err)
		return
	}
	p.Play()
}
