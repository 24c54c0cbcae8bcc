package pong

// Direction is one of the two keyboard directions.
type Direction byte

const (
	Up Direction = iota
	Down
)

// ParseDirection maps "up"/"down" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	}
	return 0, false
}

// InputSource turns the state of one input device into a target Y for the
// top of the paddle. ok is false when the device has nothing to say this
// tick.
type InputSource interface {
	Target(p *Paddle) (y float32, ok bool)
}

// PointerInput follows a mouse cursor. The paddle center snaps to the last
// pointer position, but only after the pointer moved, so keyboard control
// keeps working while the mouse rests.
type PointerInput struct {
	y     float32
	moved bool
}

// MoveTo records a new pointer y in field coordinates.
func (in *PointerInput) MoveTo(y float32) {
	in.y = y
	in.moved = true
}

// Target implements InputSource.
func (in *PointerInput) Target(p *Paddle) (float32, bool) {
	if !in.moved {
		return 0, false
	}
	in.moved = false
	return in.y - p.Height/2, true
}

// TouchInput follows a finger while it is on the surface.
type TouchInput struct {
	y      float32
	active bool
}

// Touch records the finger position; active is false once it lifts.
func (in *TouchInput) Touch(y float32, active bool) {
	in.y = y
	in.active = active
}

// Active reports whether a finger is down, for drawing an indicator.
func (in *TouchInput) Active() bool { return in.active }

// Y returns the last touch position.
func (in *TouchInput) Y() float32 { return in.y }

// Target implements InputSource.
func (in *TouchInput) Target(p *Paddle) (float32, bool) {
	if !in.active {
		return 0, false
	}
	return in.y - p.Height/2, true
}

// KeyboardInput moves the paddle by its speed each tick a key is held.
type KeyboardInput struct {
	held [2]bool
}

// Press records a key-down (down=true) or key-up event.
func (in *KeyboardInput) Press(d Direction, down bool) {
	in.held[d] = down
}

// Held reports whether d is currently pressed.
func (in *KeyboardInput) Held(d Direction) bool { return in.held[d] }

// Target implements InputSource.
func (in *KeyboardInput) Target(p *Paddle) (float32, bool) {
	if in.held[Up] == in.held[Down] {
		return 0, false
	}
	if in.held[Up] {
		return p.Y - p.Speed, true
	}
	return p.Y + p.Speed, true
}

// InputSampler owns the player's input devices. Sources are consulted in
// order and the first one with a target wins.
type InputSampler struct {
	Touch    TouchInput
	Pointer  PointerInput
	Keyboard KeyboardInput

	sources []InputSource
}

func newInputSampler() *InputSampler {
	in := &InputSampler{}
	in.sources = []InputSource{&in.Touch, &in.Pointer, &in.Keyboard}
	return in
}

// Sample moves p to the target of the first active source. Without input the
// paddle stays where it is.
func (in *InputSampler) Sample(p *Paddle, f Field) {
	for _, src := range in.sources {
		if y, ok := src.Target(p); ok {
			p.MoveTo(y, f)
			return
		}
	}
}

// Release clears held keys and touches.
func (in *InputSampler) Release() {
	in.Keyboard = KeyboardInput{}
	in.Touch.active = false
	in.Pointer.moved = false
}
