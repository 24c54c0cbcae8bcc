package display

import (
	"log"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/jtestard/pingpong/pong"
)

var presetKeys = map[ebiten.Key]pong.Preset{
	ebiten.Key1: pong.Easy,
	ebiten.Key2: pong.Medium,
	ebiten.Key3: pong.Hard,
	ebiten.Key4: pong.Extreme,
}

// pollInput copies ebiten's device state into the session's input sources
// and turns shortcut keys into commands. It runs on the update goroutine,
// which is also the session's driver.
func (g *Game) pollInput() {
	s := g.session
	in := s.Input()

	in.Keyboard.Press(pong.Up, ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW))
	in.Keyboard.Press(pong.Down, ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS))

	if ids := ebiten.TouchIDs(); len(ids) > 0 {
		g.touch = true
		_, y := ebiten.TouchPosition(ids[0])
		in.Touch.Touch(float32(y), true)
	} else if in.Touch.Active() {
		in.Touch.Touch(in.Touch.Y(), false)
	}

	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		if s.Running() {
			in.Pointer.MoveTo(float32(y))
		}
	}

	startPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.JustPressedTouchIDs()) > 0
	if startPressed && !s.Running() && s.State() != pong.PauseState {
		s.Start()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.Pause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		log.Printf("sound enabled: %v", s.ToggleSound())
	}
	for k, p := range presetKeys {
		if inpututil.IsKeyJustPressed(k) {
			if err := s.SetPreset(p); err != nil {
				log.Printf("preset %s: %v", p, err)
			}
		}
	}
}
