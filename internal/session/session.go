// Package session pairs handle acquisition with guaranteed release. One With
// invocation owns exactly one handle for its whole duration; the handle is
// released on normal return, on error, and on panic, so a failing unit of
// work can never leak a live engine session.
package session

import (
	"github.com/monokrome/pkhex-go/internal/dispatch"
	"github.com/monokrome/pkhex-go/internal/engine"
)

// Fn is the unit of work run against a freshly loaded save.
type Fn func(c *dispatch.Client, h engine.Handle) error

// With loads the save at path (empty = blank save), runs fn, and releases
// the handle on every exit path. The release error is reported only when fn
// itself succeeded.
func With(eng engine.Engine, path string, fn Fn, opts ...dispatch.Option) error {
	c := dispatch.New(eng, opts...)
	return WithClient(c, path, fn)
}

// WithClient is With for an already-configured client.
func WithClient(c *dispatch.Client, path string, fn Fn) (err error) {
	h, err := c.Saves().Load(path)
	if err != nil {
		return err
	}
	defer func() {
		// Runs on panic too; the handle never outlives the scope.
		if rerr := c.Saves().Release(h); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn(c, h)
}
