package memengine

import (
	"fmt"
	"math"
	"os"

	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/persistence/savefile"
)

type handleResult struct {
	Handle int32 `json:"handle"`
}

type ackResult struct {
	OK bool `json:"ok"`
}

// opLoadSave opens a session. An empty path loads a fresh blank save; any
// other path is read as a savefile blob.
func opLoadSave(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpLoadSave, args, 1); err != nil {
		return nil, err
	}
	path, err := argString(args, 0)
	if err != nil {
		return nil, err
	}

	var state *saveState
	if path == "" {
		state = blankSave(e.tun)
	} else {
		resolved, err := e.resolvePath(path)
		if err != nil {
			return nil, err
		}
		state = &saveState{}
		if _, err := savefile.Read(resolved, state); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("save not found: %s", path)
			}
			return nil, fmt.Errorf("load save %s: %v", path, err)
		}
	}

	if e.next == math.MaxInt32 {
		return nil, fmt.Errorf("session table exhausted")
	}
	e.next++
	h := e.next
	e.sessions[h] = state
	return handleResult{Handle: h}, nil
}

func opReleaseSave(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpReleaseSave, args, 1); err != nil {
		return nil, err
	}
	h, err := argInt32(args, 0)
	if err != nil {
		return nil, err
	}
	if _, ok := e.sessions[h]; !ok {
		return nil, fmt.Errorf("invalid handle: %d", h)
	}
	delete(e.sessions, h)
	return ackResult{OK: true}, nil
}

func opExportSave(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpExportSave, args, 2); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	path, err := argString(args, 1)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("export path must not be empty")
	}
	resolved, err := e.resolvePath(path)
	if err != nil {
		return nil, err
	}
	hdr := savefile.Header{Version: savefile.CurrentVersion, Game: s.Trainer.Game}
	if err := savefile.Write(resolved, hdr, s); err != nil {
		return nil, fmt.Errorf("export save: %v", err)
	}
	return ackResult{OK: true}, nil
}
