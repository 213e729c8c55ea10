package dispatch

import (
	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/engine"
)

// MiniGames groups colorful-screw and royale-point operations.
type MiniGames struct{ c *Client }

// CollectScrews marks every colorful screw collected and returns the total.
func (m MiniGames) CollectScrews(h engine.Handle) (int, error) {
	res, err := decodeCall[struct {
		Collected int `json:"collected"`
	}](m.c, boundary.OpCollectColorfulScrews, h, m.c.sur.CollectColorfulScrews(h))
	if err != nil {
		return 0, err
	}
	return res.Collected, nil
}

func (m MiniGames) ScrewLocations(h engine.Handle, includeCollected bool) ([]ScrewLocation, error) {
	return decodeCall[[]ScrewLocation](m.c, boundary.OpGetColorfulScrewLocations, h,
		m.c.sur.GetColorfulScrewLocations(h, includeCollected))
}

func (m MiniGames) RoyalePoints(h engine.Handle) (RoyalePoints, error) {
	return decodeCall[RoyalePoints](m.c, boundary.OpGetInfiniteRoyalePoints, h,
		m.c.sur.GetInfiniteRoyalePoints(h))
}

func (m MiniGames) SetRoyalePoints(h engine.Handle, value1, value2 int32) (RoyalePoints, error) {
	return decodeCall[RoyalePoints](m.c, boundary.OpSetInfiniteRoyalePoints, h,
		m.c.sur.SetInfiniteRoyalePoints(h, value1, value2))
}
