package memengine

import (
	"fmt"

	"github.com/monokrome/pkhex-go/internal/boundary"
)

type collectWire struct {
	Collected int `json:"collected"`
}

type screwLocationWire struct {
	LocationIndex int    `json:"locationIndex"`
	Zone          string `json:"zone"`
	Collected     bool   `json:"collected"`
}

type royalePointsWire struct {
	Points1 int32 `json:"points1"`
	Points2 int32 `json:"points2"`
}

func opCollectColorfulScrews(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpCollectColorfulScrews, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	for i := range s.Screws {
		s.Screws[i].Collected = true
	}
	return collectWire{Collected: len(s.Screws)}, nil
}

// opGetColorfulScrewLocations lists screw locations in fixed index order.
// includeCollected=false filters to outstanding screws; the query itself
// never changes state.
func opGetColorfulScrewLocations(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetColorfulScrewLocations, args, 2); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	includeCollected, err := argBool(args, 1)
	if err != nil {
		return nil, err
	}
	out := []screwLocationWire{}
	for i, sc := range s.Screws {
		if sc.Collected && !includeCollected {
			continue
		}
		out = append(out, screwLocationWire{LocationIndex: i, Zone: sc.Zone, Collected: sc.Collected})
	}
	return out, nil
}

func opGetInfiniteRoyalePoints(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetInfiniteRoyalePoints, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	return royalePointsWire{Points1: s.Royale[0], Points2: s.Royale[1]}, nil
}

func opSetInfiniteRoyalePoints(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpSetInfiniteRoyalePoints, args, 3); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	v1, err := argInt32(args, 1)
	if err != nil {
		return nil, err
	}
	v2, err := argInt32(args, 2)
	if err != nil {
		return nil, err
	}
	if v1 < 0 || v2 < 0 {
		return nil, fmt.Errorf("royale points must be non-negative")
	}
	s.Royale[0] = v1
	s.Royale[1] = v2
	return royalePointsWire{Points1: s.Royale[0], Points2: s.Royale[1]}, nil
}
