package dispatch

import (
	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/engine"
)

// Config groups game option operations.
type Config struct{ c *Client }

func (g Config) TextSpeed(h engine.Handle) (int, error) {
	res, err := decodeCall[struct {
		TextSpeed int `json:"textSpeed"`
	}](g.c, boundary.OpGetTextSpeed, h, g.c.sur.GetTextSpeed(h))
	if err != nil {
		return 0, err
	}
	return res.TextSpeed, nil
}

// SetTextSpeed sets the dialogue speed (0..3; the range is enforced by the
// engine, not here).
func (g Config) SetTextSpeed(h engine.Handle, speed int32) (int, error) {
	res, err := decodeCall[struct {
		TextSpeed int `json:"textSpeed"`
	}](g.c, boundary.OpSetTextSpeed, h, g.c.sur.SetTextSpeed(h, speed))
	if err != nil {
		return 0, err
	}
	return res.TextSpeed, nil
}
