package boundary_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/catalog"
	"github.com/monokrome/pkhex-go/internal/engine"
	"github.com/monokrome/pkhex-go/internal/engine/memengine"
)

func newSurface(t *testing.T) (boundary.Surface, *memengine.Engine) {
	t.Helper()
	cats, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalogs: %v", err)
	}
	eng := memengine.New(cats, memengine.DefaultTuning())
	return boundary.NewSurface(eng), eng
}

func loadBlank(t *testing.T, sur boundary.Surface) engine.Handle {
	t.Helper()
	var out struct {
		Handle int32 `json:"handle"`
	}
	if err := json.Unmarshal([]byte(sur.LoadSave("")), &out); err != nil {
		t.Fatalf("load blank: %v", err)
	}
	if out.Handle <= 0 {
		t.Fatalf("expected positive handle, got %d", out.Handle)
	}
	return engine.Handle(out.Handle)
}

// Every operation, fed hostile handles and boundary-value scalars, must
// still return syntactically valid JSON.
func TestSurface_EnvelopeAlwaysParseable(t *testing.T) {
	sur, _ := newSurface(t)

	handles := []any{int32(-1), int32(0), int32(7), int32(math.MinInt32), int32(math.MaxInt32)}
	for _, op := range boundary.Ops {
		for _, h := range handles {
			args := make([]any, len(op.Args))
			for i, kind := range op.Args {
				switch kind {
				case boundary.ArgHandle:
					args[i] = h
				case boundary.ArgInt:
					args[i] = int32(math.MaxInt32)
				case boundary.ArgString:
					args[i] = "nonsense"
				case boundary.ArgBool:
					args[i] = true
				}
			}
			raw, err := sur.Call(op, args)
			if err != nil {
				t.Fatalf("%s: call: %v", op.Name, err)
			}
			if !json.Valid([]byte(raw)) {
				t.Fatalf("%s with handle %v: envelope not JSON: %q", op.Name, h, raw)
			}
		}
	}
}

func TestSurface_UnknownOperationIsErrorEnvelope(t *testing.T) {
	_, eng := newSurface(t)
	raw := eng.Invoke("FlyToTheMoon", int32(1))
	var out map[string]string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unknown op envelope not JSON: %q", raw)
	}
	if out["error"] == "" {
		t.Fatalf("expected error envelope, got %q", raw)
	}
}

// The revealed-only toggle is a pure pass-through: both states answer and
// neither mutates the session.
func TestSurface_BooleanPassThrough(t *testing.T) {
	sur, _ := newSurface(t)
	h := loadBlank(t, sur)

	count := func(includeCollected bool) int {
		t.Helper()
		var locs []map[string]any
		raw := sur.GetColorfulScrewLocations(h, includeCollected)
		if err := json.Unmarshal([]byte(raw), &locs); err != nil {
			t.Fatalf("locations(%v): %v in %q", includeCollected, err, raw)
		}
		return len(locs)
	}

	visible := count(false)
	all := count(true)
	if visible != all {
		t.Fatalf("blank save: uncollected %d != total %d", visible, all)
	}
	// Re-query both ways; counts must be stable.
	if count(false) != visible || count(true) != all {
		t.Fatalf("location query mutated session state")
	}
}

// A deliberately maximal 32-bit value must come back as a well-formed
// envelope, success or error, with no truncation garbage.
func TestSurface_Int32Extremes(t *testing.T) {
	sur, _ := newSurface(t)
	h := loadBlank(t, sur)

	raw := sur.SetInfiniteRoyalePoints(h, math.MaxInt32, math.MaxInt32)
	var out struct {
		Points1 *int64 `json:"points1"`
		Points2 *int64 `json:"points2"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("envelope not JSON: %q", raw)
	}
	if out.Error == "" {
		if out.Points1 == nil || *out.Points1 != math.MaxInt32 {
			t.Fatalf("points1 corrupted: %q", raw)
		}
	}
}

func TestSurface_CallArgumentCoercion(t *testing.T) {
	sur, _ := newSurface(t)
	spec, _ := boundary.Lookup(boundary.OpSetTextSpeed)

	if _, err := sur.Call(spec, []any{float64(1)}); err == nil {
		t.Fatalf("arity mismatch accepted")
	}
	if _, err := sur.Call(spec, []any{float64(1), "fast"}); err == nil {
		t.Fatalf("kind mismatch accepted")
	}
	if _, err := sur.Call(spec, []any{float64(1), float64(1.5)}); err == nil {
		t.Fatalf("fractional integer accepted")
	}
	if _, err := sur.Call(spec, []any{float64(1), float64(math.MaxInt32) + 1}); err == nil {
		t.Fatalf("out-of-range integer accepted")
	}
	// JSON-shaped floats for a valid call pass coercion.
	if _, err := sur.Call(spec, []any{float64(1), float64(2)}); err != nil {
		t.Fatalf("valid call rejected: %v", err)
	}
}
