package boundary

import (
	"fmt"
	"math"

	"github.com/monokrome/pkhex-go/internal/engine"
)

// Surface wraps an engine with one typed function per operation. Each call is
// a pure pass-through: the handle and scalars go to the engine unmodified and
// the envelope string comes back unmodified. No validity is cached between
// calls; the engine re-checks the handle every time.
type Surface struct {
	eng engine.Engine
}

func NewSurface(eng engine.Engine) Surface {
	return Surface{eng: eng}
}

func (s Surface) LoadSave(path string) string {
	return s.eng.Invoke(OpLoadSave, path)
}

func (s Surface) ReleaseSave(h engine.Handle) string {
	return s.eng.Invoke(OpReleaseSave, int32(h))
}

func (s Surface) ExportSave(h engine.Handle, path string) string {
	return s.eng.Invoke(OpExportSave, int32(h), path)
}

func (s Surface) GetTrainerCard(h engine.Handle) string {
	return s.eng.Invoke(OpGetTrainerCard, int32(h))
}

func (s Surface) GetTrainerAppearance(h engine.Handle) string {
	return s.eng.Invoke(OpGetTrainerAppearance, int32(h))
}

func (s Surface) GetBadges(h engine.Handle) string {
	return s.eng.Invoke(OpGetBadges, int32(h))
}

func (s Surface) GetDaycare(h engine.Handle) string {
	return s.eng.Invoke(OpGetDaycare, int32(h))
}

func (s Surface) SetTrainerName(h engine.Handle, name string) string {
	return s.eng.Invoke(OpSetTrainerName, int32(h), name)
}

func (s Surface) SetMoney(h engine.Handle, amount int32) string {
	return s.eng.Invoke(OpSetMoney, int32(h), amount)
}

func (s Surface) GetSpeciesForms(speciesID, generation int32) string {
	return s.eng.Invoke(OpGetSpeciesForms, speciesID, generation)
}

func (s Surface) GetSpeciesEvolutions(speciesID, generation int32) string {
	return s.eng.Invoke(OpGetSpeciesEvolutions, speciesID, generation)
}

func (s Surface) GetPouchItems(h engine.Handle) string {
	return s.eng.Invoke(OpGetPouchItems, int32(h))
}

func (s Surface) AddItemToPouch(h engine.Handle, itemID, count, pouchIndex int32) string {
	return s.eng.Invoke(OpAddItemToPouch, int32(h), itemID, count, pouchIndex)
}

func (s Surface) RemoveItemFromPouch(h engine.Handle, itemID, count int32) string {
	return s.eng.Invoke(OpRemoveItemFromPouch, int32(h), itemID, count)
}

func (s Surface) CollectColorfulScrews(h engine.Handle) string {
	return s.eng.Invoke(OpCollectColorfulScrews, int32(h))
}

func (s Surface) GetColorfulScrewLocations(h engine.Handle, includeCollected bool) string {
	return s.eng.Invoke(OpGetColorfulScrewLocations, int32(h), includeCollected)
}

func (s Surface) GetInfiniteRoyalePoints(h engine.Handle) string {
	return s.eng.Invoke(OpGetInfiniteRoyalePoints, int32(h))
}

func (s Surface) SetInfiniteRoyalePoints(h engine.Handle, value1, value2 int32) string {
	return s.eng.Invoke(OpSetInfiniteRoyalePoints, int32(h), value1, value2)
}

func (s Surface) GetTextSpeed(h engine.Handle) string {
	return s.eng.Invoke(OpGetTextSpeed, int32(h))
}

func (s Surface) SetTextSpeed(h engine.Handle, speed int32) string {
	return s.eng.Invoke(OpSetTextSpeed, int32(h), speed)
}

func (s Surface) UnlockFashionCategory(h engine.Handle, category string) string {
	return s.eng.Invoke(OpUnlockFashionCategory, int32(h), category)
}

func (s Surface) UnlockAllFashion(h engine.Handle) string {
	return s.eng.Invoke(OpUnlockAllFashion, int32(h))
}

func (s Surface) UnlockAllHairMakeup(h engine.Handle) string {
	return s.eng.Invoke(OpUnlockAllHairMakeup, int32(h))
}

// Call invokes an operation by spec with positional untyped arguments, as
// received from a transport. Arguments are coerced to the spec's kinds before
// the engine sees them; a coercion failure is a caller error, not an engine
// envelope.
func (s Surface) Call(spec OpSpec, args []any) (string, error) {
	if len(args) != len(spec.Args) {
		return "", fmt.Errorf("%s expects %d arguments, got %d", spec.Name, len(spec.Args), len(args))
	}
	coerced := make([]any, len(args))
	for i, kind := range spec.Args {
		v, err := coerceArg(kind, args[i])
		if err != nil {
			return "", fmt.Errorf("%s argument %d: %w", spec.Name, i, err)
		}
		coerced[i] = v
	}
	return s.eng.Invoke(spec.Name, coerced...), nil
}

func coerceArg(kind ArgKind, v any) (any, error) {
	switch kind {
	case ArgHandle, ArgInt:
		switch n := v.(type) {
		case int:
			if n < math.MinInt32 || n > math.MaxInt32 {
				return nil, fmt.Errorf("integer out of 32-bit range: %d", n)
			}
			return int32(n), nil
		case int32:
			return n, nil
		case int64:
			if n < math.MinInt32 || n > math.MaxInt32 {
				return nil, fmt.Errorf("integer out of 32-bit range: %d", n)
			}
			return int32(n), nil
		case float64:
			// JSON numbers arrive as float64.
			if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
				return nil, fmt.Errorf("not a 32-bit integer: %v", n)
			}
			return int32(n), nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", v)
		}
	case ArgString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	case ArgBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown argument kind %d", kind)
	}
}
