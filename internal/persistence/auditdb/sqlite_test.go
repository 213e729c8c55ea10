package auditdb

import (
	"path/filepath"
	"testing"
)

func TestRecordAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	d.Record(Call{Op: "LoadSave", Handle: 1, OK: true})
	d.Record(Call{Op: "GetTrainerCard", Handle: 1, OK: true})
	d.Record(Call{Op: "GetTrainerCard", Handle: 99, OK: false, Error: "invalid handle: 99"})
	d.Record(Call{Op: "ReleaseSave", Handle: 1, OK: true})
	if d.Dropped() != 0 {
		t.Fatalf("dropped %d rows", d.Dropped())
	}

	// Rows are written by an async loop; close drains it, then reopen to
	// query a settled database.
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()

	counts, err := d.CallCounts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["GetTrainerCard"] != 2 || counts["LoadSave"] != 1 {
		t.Fatalf("counts: %v", counts)
	}

	balance, err := d.HandleBalance()
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("handle balance %d, want 0", balance)
	}
}

func TestHandleBalance_DetectsLeak(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	d.Record(Call{Op: "LoadSave", Handle: 1, OK: true})
	d.Record(Call{Op: "LoadSave", Handle: 2, OK: true})
	d.Record(Call{Op: "ReleaseSave", Handle: 1, OK: true})
	// Failed releases do not count against the balance.
	d.Record(Call{Op: "ReleaseSave", Handle: 1, OK: false, Error: "invalid handle: 1"})
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()

	balance, err := d.HandleBalance()
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 1 {
		t.Fatalf("handle balance %d, want 1", balance)
	}
}

func TestRecordAfterClose_DropsQuietly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	d.Record(Call{Op: "LoadSave", Handle: 1, OK: true})
	if d.Dropped() != 1 {
		t.Fatalf("dropped %d, want 1", d.Dropped())
	}
	// Idempotent close.
	if err := d.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
