package memengine

import (
	"fmt"

	"github.com/monokrome/pkhex-go/internal/boundary"
)

type textSpeedWire struct {
	TextSpeed int32 `json:"textSpeed"`
}

const maxTextSpeed = 3

func opGetTextSpeed(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetTextSpeed, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	return textSpeedWire{TextSpeed: s.TextSpeed}, nil
}

func opSetTextSpeed(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpSetTextSpeed, args, 2); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	speed, err := argInt32(args, 1)
	if err != nil {
		return nil, err
	}
	if speed < 0 || speed > maxTextSpeed {
		return nil, fmt.Errorf("text speed out of range: %d", speed)
	}
	s.TextSpeed = speed
	return textSpeedWire{TextSpeed: s.TextSpeed}, nil
}
