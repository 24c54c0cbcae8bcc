package pong

import (
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("unknown command")

// CommandType enumerates what the surrounding UI may ask of a session.
type CommandType string

const (
	CmdStart     CommandType = "start"
	CmdPause     CommandType = "pause"
	CmdReset     CommandType = "reset"
	CmdPreset    CommandType = "preset"
	CmdBallCount CommandType = "balls"
	CmdSpeed     CommandType = "speed"
	CmdSound     CommandType = "sound"
	CmdKeyDown   CommandType = "keydown"
	CmdKeyUp     CommandType = "keyup"
	CmdPointer   CommandType = "pointer"
	CmdTouch     CommandType = "touch"
)

// Command is a request from outside the frame driver. Only the fields
// relevant to Type are read.
type Command struct {
	Type       CommandType
	Preset     Preset
	Count      int
	Multiplier float32
	Direction  Direction
	Y          float32
	Active     bool
}

// Enqueue hands cmd to the frame driver; it is applied at the start of the
// next tick. Safe for concurrent use. It returns false if the queue is full.
func (s *Session) Enqueue(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}

// Apply executes cmd immediately. It must be called from the driver's
// goroutine.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Type {
	case CmdStart:
		s.Start()
	case CmdPause:
		s.Pause()
	case CmdReset:
		s.Reset()
	case CmdPreset:
		return s.SetPreset(cmd.Preset)
	case CmdBallCount:
		return s.SetBallCount(cmd.Count)
	case CmdSpeed:
		return s.SetSpeedMultiplier(cmd.Multiplier)
	case CmdSound:
		s.ToggleSound()
	case CmdKeyDown, CmdKeyUp:
		if cmd.Direction != Up && cmd.Direction != Down {
			return fmt.Errorf("%w: direction %d", ErrUnknownCommand, cmd.Direction)
		}
		s.input.Keyboard.Press(cmd.Direction, cmd.Type == CmdKeyDown)
	case CmdPointer:
		s.input.Pointer.MoveTo(cmd.Y)
	case CmdTouch:
		s.input.Touch.Touch(cmd.Y, cmd.Active)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
	return nil
}
