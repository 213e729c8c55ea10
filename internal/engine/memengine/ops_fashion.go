package memengine

import (
	"fmt"

	"github.com/monokrome/pkhex-go/internal/boundary"
)

type fashionUnlockWire struct {
	Category string `json:"category,omitempty"`
	Unlocked int    `json:"unlocked"`
}

// The valid category set is tuning-owned and may grow; callers are not
// expected to pre-validate it.
func (e *Engine) fashionDef(category string) (FashionDef, bool) {
	for _, f := range e.tun.Fashion {
		if f.Category == category {
			return f, true
		}
	}
	return FashionDef{}, false
}

func opUnlockFashionCategory(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpUnlockFashionCategory, args, 2); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	category, err := argString(args, 1)
	if err != nil {
		return nil, err
	}
	def, ok := e.fashionDef(category)
	if !ok {
		return nil, fmt.Errorf("unknown fashion category: %s", category)
	}
	s.Fashion[category] = def.Pieces
	return fashionUnlockWire{Category: category, Unlocked: def.Pieces}, nil
}

func opUnlockAllFashion(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpUnlockAllFashion, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, def := range e.tun.Fashion {
		s.Fashion[def.Category] = def.Pieces
		total += def.Pieces
	}
	return fashionUnlockWire{Unlocked: total}, nil
}

func opUnlockAllHairMakeup(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpUnlockAllHairMakeup, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, def := range e.tun.Fashion {
		if def.Category != "hair" && def.Category != "makeup" {
			continue
		}
		s.Fashion[def.Category] = def.Pieces
		total += def.Pieces
	}
	return fashionUnlockWire{Unlocked: total}, nil
}
