package pong

// Side identifies who owns a paddle
type Side byte

const (
	PlayerSide Side = iota
	OpponentSide
)

func (s Side) String() string {
	if s == PlayerSide {
		return "player"
	}
	return "opponent"
}

// Paddle is a vertical rectangle that deflects balls. X never changes after
// construction; Y is kept within the field.
type Paddle struct {
	Position
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	Speed  float32 `json:"speed"`
	Side   Side    `json:"side"`
}

// Center returns the vertical center of the paddle.
func (p *Paddle) Center() float32 {
	return p.Y + p.Height/2
}

// Right returns the x coordinate of the paddle's right edge.
func (p *Paddle) Right() float32 {
	return p.X + p.Width
}

// ContainsY reports whether y lies within the paddle's vertical span.
func (p *Paddle) ContainsY(y float32) bool {
	return y >= p.Y && y <= p.Y+p.Height
}

// MoveTo sets Y, clamped to [0, fieldHeight-Height].
func (p *Paddle) MoveTo(y float32, f Field) {
	p.Y = clamp(y, 0, f.Height-p.Height)
}

// Recenter puts the paddle back in the middle of the field.
func (p *Paddle) Recenter(f Field) {
	p.MoveTo(f.Height/2-p.Height/2, f)
}

func newPaddle(side Side, cfg Config) *Paddle {
	p := &Paddle{
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Side:   side,
	}
	if side == PlayerSide {
		p.X = cfg.PaddleShift
		p.Speed = cfg.PlayerSpeed
	} else {
		p.X = cfg.Field.Width - cfg.PaddleShift - cfg.PaddleWidth
		p.Speed = cfg.OpponentSpeed
	}
	p.Recenter(cfg.Field)
	return p
}

// MarshalText lets the side travel as a readable string.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
