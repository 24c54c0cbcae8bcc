// Package display runs a session in an ebiten window.
package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/jtestard/pingpong/pong"
)

var (
	BgColor       = color.Black
	ObjColor      = color.RGBA{120, 226, 160, 255}
	NetColor      = color.RGBA{0x94, 0xa3, 0xb8, 0xff}
	PlayerColor   = color.RGBA{0x10, 0xb9, 0x81, 0xff}
	OpponentColor = color.RGBA{0xef, 0x44, 0x44, 0xff}
	BallPalette   = [pong.BallColors]color.RGBA{
		{0x25, 0x63, 0xeb, 0xff},
		{0xef, 0x44, 0x44, 0xff},
		{0x10, 0xb9, 0x81, 0xff},
		{0xf5, 0x9e, 0x0b, 0xff},
		{0x8b, 0x5c, 0xf6, 0xff},
	}
)

const (
	netDash = 5
	netGap  = 15
)

// errQuit ends ebiten's loop once the game's context is done.
var errQuit = errors.New("display: quit")

// Publisher receives a snapshot after every frame.
type Publisher interface {
	Publish(pong.Snapshot)
}

// Game adapts a session to ebiten's game loop. ebiten's update callback is
// the session's frame driver.
type Game struct {
	ctx       context.Context
	session   *pong.Session
	publisher Publisher

	width, height int

	player   *ebiten.Image
	opponent *ebiten.Image
	balls    [pong.BallColors]*ebiten.Image
	net      *ebiten.Image

	cursorX, cursorY int
	touch            bool
}

// NewGame creates and initializes the window resources for s. publisher may
// be nil. The window closes when ctx is done.
func NewGame(ctx context.Context, s *pong.Session, publisher Publisher) (*Game, error) {
	cfg := s.Config()
	g := &Game{
		ctx:       ctx,
		session:   s,
		publisher: publisher,
		width:     int(cfg.Field.Width),
		height:    int(cfg.Field.Height),
	}
	if err := g.init(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) init(cfg pong.Config) error {
	var err error
	if g.player, err = filledImage(int(cfg.PaddleWidth), int(cfg.PaddleHeight), PlayerColor); err != nil {
		return err
	}
	if g.opponent, err = filledImage(int(cfg.PaddleWidth), int(cfg.PaddleHeight), OpponentColor); err != nil {
		return err
	}
	if g.net, err = filledImage(2, netDash, NetColor); err != nil {
		return err
	}
	for i, clr := range BallPalette {
		img, err := ebiten.NewImageFromImage(disc(int(cfg.BallRadius), clr), ebiten.FilterDefault)
		if err != nil {
			return err
		}
		g.balls[i] = img
	}
	return InitFonts()
}

func filledImage(w, h int, clr color.Color) (*ebiten.Image, error) {
	img, err := ebiten.NewImage(w, h, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	if err := img.Fill(clr); err != nil {
		return nil, err
	}
	return img, nil
}

func disc(r int, clr color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2*r, 2*r))
	for y := 0; y < 2*r; y++ {
		for x := 0; x < 2*r; x++ {
			dx, dy := x-r, y-r
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, clr)
			}
		}
	}
	return img
}

// Update updates the game state
func (g *Game) Update(screen *ebiten.Image) error {
	if err := g.quitRequested(); err != nil {
		return err
	}
	g.pollInput()
	g.session.Tick()
	if g.publisher != nil {
		g.publisher.Publish(g.session.Snapshot())
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.Draw(screen)
}

// Draw updates the game screen elements drawn
func (g *Game) Draw(screen *ebiten.Image) error {
	s := g.session
	if err := screen.Fill(BgColor); err != nil {
		return err
	}

	for y := 0; y < g.height; y += netDash + netGap {
		if err := g.blit(screen, g.net, float64(g.width/2-1), float64(y)); err != nil {
			return err
		}
	}

	p, o := s.Player(), s.Opponent()
	if err := g.blit(screen, g.player, float64(p.X), float64(p.Y)); err != nil {
		return err
	}
	if err := g.blit(screen, g.opponent, float64(o.X), float64(o.Y)); err != nil {
		return err
	}
	for _, b := range s.Balls() {
		if err := g.blit(screen, g.balls[b.Color%pong.BallColors], float64(b.Left()), float64(b.Top())); err != nil {
			return err
		}
	}

	DrawScore(s.Score(), ObjColor, screen)
	winner, _ := s.Winner()
	DrawBigText(s.State(), winner, ObjColor, screen)
	DrawCaption(s.State(), g.touch, ObjColor, screen)

	d := s.Difficulty()
	return ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f  %s x%d @%.1f  sound:%v",
		ebiten.CurrentTPS(), s.Preset(), d.BallCount, d.SpeedMultiplier, s.SoundEnabled()))
}

func (g *Game) blit(screen, img *ebiten.Image, x, y float64) error {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	return screen.DrawImage(img, op)
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) quitRequested() error {
	select {
	case <-g.ctx.Done():
		return errQuit
	default:
		return nil
	}
}

// Run opens the window and blocks until it is closed or the game's context
// is done.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetMaxTPS(g.session.Config().TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
