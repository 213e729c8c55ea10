package session_test

import (
	"errors"
	"testing"

	"github.com/monokrome/pkhex-go/internal/catalog"
	"github.com/monokrome/pkhex-go/internal/dispatch"
	"github.com/monokrome/pkhex-go/internal/engine"
	"github.com/monokrome/pkhex-go/internal/engine/memengine"
	"github.com/monokrome/pkhex-go/internal/session"
)

func newEngine(t *testing.T) *memengine.Engine {
	t.Helper()
	cats, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalogs: %v", err)
	}
	return memengine.New(cats, memengine.DefaultTuning())
}

func TestWith_ReleasesOnSuccess(t *testing.T) {
	eng := newEngine(t)

	var seen engine.Handle
	err := session.With(eng, "", func(c *dispatch.Client, h engine.Handle) error {
		seen = h
		_, err := c.Trainer().Card(h)
		return err
	})
	if err != nil {
		t.Fatalf("with: %v", err)
	}
	if seen <= 0 {
		t.Fatalf("fn never ran")
	}
	if n := eng.OpenSessions(); n != 0 {
		t.Fatalf("%d sessions leaked", n)
	}
}

func TestWith_ReleasesOnError(t *testing.T) {
	eng := newEngine(t)
	boom := errors.New("boom")

	err := session.With(eng, "", func(c *dispatch.Client, h engine.Handle) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("fn error lost: %v", err)
	}
	if n := eng.OpenSessions(); n != 0 {
		t.Fatalf("%d sessions leaked after error", n)
	}
}

func TestWith_ReleasesOnPanic(t *testing.T) {
	eng := newEngine(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("panic swallowed")
			}
		}()
		_ = session.With(eng, "", func(c *dispatch.Client, h engine.Handle) error {
			panic("mid-work")
		})
	}()

	if n := eng.OpenSessions(); n != 0 {
		t.Fatalf("%d sessions leaked after panic", n)
	}
}

func TestWith_LoadFailure(t *testing.T) {
	eng := newEngine(t)

	ran := false
	err := session.With(eng, "\x00no-such-save", func(c *dispatch.Client, h engine.Handle) error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatalf("expected load error")
	}
	if ran {
		t.Fatalf("fn ran without a session")
	}
	if n := eng.OpenSessions(); n != 0 {
		t.Fatalf("%d sessions open after failed load", n)
	}
}

func TestWith_HandleDeadAfterScope(t *testing.T) {
	eng := newEngine(t)

	var escaped engine.Handle
	var client *dispatch.Client
	err := session.With(eng, "", func(c *dispatch.Client, h engine.Handle) error {
		escaped = h
		client = c
		return nil
	})
	if err != nil {
		t.Fatalf("with: %v", err)
	}
	if _, err := client.Trainer().Card(escaped); err == nil {
		t.Fatalf("handle survived its scope")
	}
}
