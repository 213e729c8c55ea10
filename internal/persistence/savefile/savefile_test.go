package savefile

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Money int32  `json:"money"`
	Tags  []int  `json:"tags"`
}

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "slot1.sav")
	in := payload{Name: "PLAYER", Money: 3000, Tags: []int{1, 2, 3}}

	hdr := Header{Version: CurrentVersion, Game: "Emerald"}
	if err := Write(path, hdr, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file survived: %v", err)
	}

	var out payload
	got, err := Read(path, &out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != hdr {
		t.Fatalf("header: %+v", got)
	}
	if out.Name != in.Name || out.Money != in.Money || len(out.Tags) != 3 {
		t.Fatalf("payload: %+v", out)
	}
}

func TestRead_RejectsWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.sav")
	if err := Write(path, Header{Version: 99, Game: "Emerald"}, payload{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out payload
	if _, err := Read(path, &out); err == nil {
		t.Fatalf("version 99 accepted")
	}
}

func TestRead_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.sav")
	if err := os.WriteFile(path, []byte("definitely not zstd"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out payload
	if _, err := Read(path, &out); err == nil {
		t.Fatalf("garbage accepted")
	}
}

func TestRead_MissingFile(t *testing.T) {
	var out payload
	_, err := Read(filepath.Join(t.TempDir(), "missing.sav"), &out)
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}
