package dispatch

import (
	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/engine"
)

// Saves is the session lifecycle: load, release, export.
type Saves struct{ c *Client }

// Load opens a save session and returns its handle. An empty path loads a
// blank save. The caller owns the handle until Release; prefer session.With
// over manual pairing.
func (s Saves) Load(path string) (engine.Handle, error) {
	res, err := decodeCall[struct {
		Handle int32 `json:"handle"`
	}](s.c, boundary.OpLoadSave, -1, s.c.sur.LoadSave(path))
	if err != nil {
		return 0, err
	}
	return engine.Handle(res.Handle), nil
}

func (s Saves) Release(h engine.Handle) error {
	return ackCall(s.c, boundary.OpReleaseSave, h, s.c.sur.ReleaseSave(h))
}

func (s Saves) Export(h engine.Handle, path string) error {
	return ackCall(s.c, boundary.OpExportSave, h, s.c.sur.ExportSave(h, path))
}
