// Package savefile reads and writes save blobs as zstd-compressed JSON with a
// small typed header, atomically via a temp file rename.
package savefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

type Header struct {
	Version int    `json:"version"`
	Game    string `json:"game"`
}

const CurrentVersion = 1

type fileV1 struct {
	Header Header          `json:"header"`
	Data   json.RawMessage `json:"data"`
}

// Write stores payload under path. Parent directories are created.
func Write(path string, hdr Header, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode save payload: %w", err)
	}
	blob, err := json.Marshal(fileV1{Header: hdr, Data: data})
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return err
	}
	if _, err := enc.Write(blob); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Read loads the save at path into out and returns its header.
func Read(path string, out any) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return Header{}, err
	}
	defer dec.Close()

	blob, err := io.ReadAll(dec)
	if err != nil {
		return Header{}, fmt.Errorf("decompress %s: %w", filepath.Base(path), err)
	}
	var file fileV1
	if err := json.Unmarshal(blob, &file); err != nil {
		return Header{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if file.Header.Version != CurrentVersion {
		return Header{}, fmt.Errorf("unsupported save version %d", file.Header.Version)
	}
	if err := json.Unmarshal(file.Data, out); err != nil {
		return Header{}, fmt.Errorf("decode save payload: %w", err)
	}
	return file.Header, nil
}
