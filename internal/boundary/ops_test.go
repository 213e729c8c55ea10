package boundary

import (
	"testing"

	"github.com/monokrome/pkhex-go/internal/envelope"
)

func TestOps_TableIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range Ops {
		if op.Name == "" || op.Domain == "" {
			t.Fatalf("op with empty name or domain: %+v", op)
		}
		if seen[op.Name] {
			t.Fatalf("duplicate op name: %s", op.Name)
		}
		seen[op.Name] = true

		// Every declared result shape must have a compilable schema.
		if _, err := envelope.SchemaFor(op.Result); err != nil {
			t.Fatalf("%s: result schema %q: %v", op.Name, op.Result, err)
		}

		got, ok := Lookup(op.Name)
		if !ok || got.Name != op.Name {
			t.Fatalf("lookup %s failed", op.Name)
		}
	}
	if _, ok := Lookup("NoSuchOp"); ok {
		t.Fatalf("lookup invented an operation")
	}
}

func TestOps_SessionOpsLeadWithHandle(t *testing.T) {
	for _, op := range Ops {
		if op.Domain == "species" || op.Name == OpLoadSave {
			continue
		}
		if len(op.Args) == 0 || op.Args[0] != ArgHandle {
			t.Fatalf("%s: session op must take the handle first", op.Name)
		}
	}
}
