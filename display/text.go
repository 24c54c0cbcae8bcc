package display

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/jtestard/pingpong/pong"
	"golang.org/x/image/font"
)

const (
	dpi           = 72
	fontSize      = 24
	smallFontSize = fontSize / 2
)

var (
	ArcadeFont      font.Face
	SmallArcadeFont font.Face
)

// InitFonts loads the arcade faces used for scores and captions.
func InitFonts() error {
	tt, err := truetype.Parse(fonts.ArcadeN_ttf)
	if err != nil {
		return fmt.Errorf("parse arcade font: %w", err)
	}
	ArcadeFont = truetype.NewFace(tt, &truetype.Options{
		Size:    fontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	SmallArcadeFont = truetype.NewFace(tt, &truetype.Options{
		Size:    smallFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	return nil
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w, _ := screen.Size()
	text.Draw(screen, s, face, (w-textWidth(face, s))/2, y, clr)
}

// DrawCaption writes the hint line for the current state at the bottom of
// the screen.
func DrawCaption(state pong.GameState, touch bool, clr color.Color, screen *ebiten.Image) {
	_, h := screen.Size()
	var msg string
	switch state {
	case pong.IdleState:
		if touch {
			msg = "TAP TO START, DRAG TO MOVE"
		} else {
			msg = "SPACE OR CLICK TO START, MOUSE OR ARROWS TO MOVE"
		}
	case pong.PlayState:
		msg = "P PAUSE  R RESET  1-4 DIFFICULTY  M SOUND"
	case pong.PauseState:
		msg = "P TO RESUME"
	case pong.GameOverState:
		msg = "SPACE TO PLAY AGAIN"
	}
	drawCentered(screen, msg, SmallArcadeFont, h-smallFontSize, clr)
}

// DrawBigText writes the banner for paused and finished matches.
func DrawBigText(state pong.GameState, winner pong.Side, clr color.Color, screen *ebiten.Image) {
	_, h := screen.Size()
	var msg string
	switch state {
	case pong.IdleState:
		msg = "PING PONG"
	case pong.PauseState:
		msg = "PAUSED"
	case pong.GameOverState:
		if winner == pong.PlayerSide {
			msg = "YOU WIN!"
		} else {
			msg = "COMPUTER WINS"
		}
	default:
		return
	}
	drawCentered(screen, msg, ArcadeFont, h/2-fontSize, clr)
}

// DrawScore writes both scores above each half of the field.
func DrawScore(score pong.Score, clr color.Color, screen *ebiten.Image) {
	w, _ := screen.Size()
	p := fmt.Sprint(score.Player)
	o := fmt.Sprint(score.Opponent)
	text.Draw(screen, p, ArcadeFont, w/4-textWidth(ArcadeFont, p)/2, 2*fontSize, clr)
	text.Draw(screen, o, ArcadeFont, 3*w/4-textWidth(ArcadeFont, o)/2, 2*fontSize, clr)
}
