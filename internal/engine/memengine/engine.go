// Package memengine is the in-process save-editing engine behind the
// boundary. It owns the handle registry: handles are allocated monotonically,
// never reused, and checked on every call. Invoke is the only entry point and
// always returns a JSON envelope, error-shaped for any fault.
package memengine

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/catalog"
	"github.com/monokrome/pkhex-go/internal/envelope"
)

type Engine struct {
	cats *catalog.Catalogs
	tun  Tuning

	// savesDir, when set, confines load/export paths to one directory.
	savesDir string

	mu       sync.Mutex
	next     int32
	sessions map[int32]*saveState
}

type Option func(*Engine)

// WithSavesDir confines relative save paths to dir and rejects escapes.
func WithSavesDir(dir string) Option {
	return func(e *Engine) { e.savesDir = dir }
}

func New(cats *catalog.Catalogs, tun Tuning, opts ...Option) *Engine {
	e := &Engine{
		cats:     cats,
		tun:      tun,
		sessions: map[int32]*saveState{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OpenSessions reports how many handles are currently live. Test hook for
// leak detection; not part of the call surface.
func (e *Engine) OpenSessions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

// CatalogDigests exposes the reference-data digests for handshake reporting.
func (e *Engine) CatalogDigests() map[string]string {
	return map[string]string{
		"species":    e.cats.Species.Digest,
		"evolutions": e.cats.Evolutions.Digest,
		"items":      e.cats.Items.Digest,
	}
}

type handler func(e *Engine, args []any) (any, error)

var handlers = map[string]handler{
	boundary.OpLoadSave:    opLoadSave,
	boundary.OpReleaseSave: opReleaseSave,
	boundary.OpExportSave:  opExportSave,

	boundary.OpGetTrainerCard:       opGetTrainerCard,
	boundary.OpGetTrainerAppearance: opGetTrainerAppearance,
	boundary.OpGetBadges:            opGetBadges,
	boundary.OpGetDaycare:           opGetDaycare,
	boundary.OpSetTrainerName:       opSetTrainerName,
	boundary.OpSetMoney:             opSetMoney,

	boundary.OpGetSpeciesForms:      opGetSpeciesForms,
	boundary.OpGetSpeciesEvolutions: opGetSpeciesEvolutions,

	boundary.OpGetPouchItems:       opGetPouchItems,
	boundary.OpAddItemToPouch:      opAddItemToPouch,
	boundary.OpRemoveItemFromPouch: opRemoveItemFromPouch,

	boundary.OpCollectColorfulScrews:     opCollectColorfulScrews,
	boundary.OpGetColorfulScrewLocations: opGetColorfulScrewLocations,
	boundary.OpGetInfiniteRoyalePoints:   opGetInfiniteRoyalePoints,
	boundary.OpSetInfiniteRoyalePoints:   opSetInfiniteRoyalePoints,

	boundary.OpGetTextSpeed: opGetTextSpeed,
	boundary.OpSetTextSpeed: opSetTextSpeed,

	boundary.OpUnlockFashionCategory: opUnlockFashionCategory,
	boundary.OpUnlockAllFashion:      opUnlockAllFashion,
	boundary.OpUnlockAllHairMakeup:   opUnlockAllHairMakeup,
}

// Invoke dispatches one raw call. Whatever goes wrong — unknown op, bad
// argument, dead handle, encode fault — the return value is a parseable
// envelope; Invoke never panics outward.
func (e *Engine) Invoke(op string, args ...any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = envelope.Error(fmt.Sprintf("internal fault in %s: %v", op, r))
		}
	}()

	h, ok := handlers[op]
	if !ok {
		return envelope.Error(fmt.Sprintf("unknown operation: %s", op))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := h(e, args)
	if err != nil {
		return envelope.Error(err.Error())
	}
	b, err := json.Marshal(res)
	if err != nil {
		return envelope.Error(fmt.Sprintf("internal: encode %s result: %v", op, err))
	}
	return string(b)
}

// session resolves the handle argument at position i. Validity is decided
// here, on every call; there is no liveness cache anywhere else.
func (e *Engine) session(args []any, i int) (*saveState, error) {
	h, err := argInt32(args, i)
	if err != nil {
		return nil, err
	}
	s, ok := e.sessions[h]
	if !ok {
		return nil, fmt.Errorf("invalid handle: %d", h)
	}
	return s, nil
}

// resolvePath maps a caller-supplied save path to the filesystem. With a
// saves dir configured, paths are relative to it and may not escape.
func (e *Engine) resolvePath(path string) (string, error) {
	if e.savesDir == "" {
		return path, nil
	}
	if filepath.IsAbs(path) || strings.Contains(path, "..") {
		return "", fmt.Errorf("save path outside saves directory: %s", path)
	}
	return filepath.Join(e.savesDir, filepath.Clean(path)), nil
}

func argCount(op string, args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s expects %d arguments, got %d", op, n, len(args))
	}
	return nil
}

func argInt32(args []any, i int) (int32, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	switch n := args[i].(type) {
	case int32:
		return n, nil
	case int:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("argument %d out of 32-bit range: %d", i, n)
		}
		return int32(n), nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("argument %d out of 32-bit range: %d", i, n)
		}
		return int32(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("argument %d is not a 32-bit integer: %v", i, n)
		}
		return int32(n), nil
	default:
		return 0, fmt.Errorf("argument %d: expected integer, got %T", i, args[i])
	}
}

func argString(args []any, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d: expected string, got %T", i, args[i])
	}
	return s, nil
}

func argBool(args []any, i int) (bool, error) {
	if i >= len(args) {
		return false, fmt.Errorf("missing argument %d", i)
	}
	b, ok := args[i].(bool)
	if !ok {
		return false, fmt.Errorf("argument %d: expected boolean, got %T", i, args[i])
	}
	return b, nil
}
