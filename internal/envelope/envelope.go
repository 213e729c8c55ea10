// Package envelope implements the wire contract of the save-engine boundary:
// every raw call returns a JSON string that is either {"error":"..."} or an
// operation-specific success payload. Decode splits the two and keeps the
// failure modes apart — a well-formed engine error is a DomainError, a
// malformed or mis-shaped envelope is a ProtocolViolation.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DomainError is a well-formed error envelope from the engine. The message is
// the engine's text, verbatim. Expected and recoverable.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// ProtocolViolation reports a break of the envelope contract itself: text
// that does not parse, an error field that is not a non-empty string, or a
// success payload that fails its shape schema. Never downgraded to a
// DomainError; it means the boundary is broken, not that an input was bad.
type ProtocolViolation struct {
	Op     string
	Detail string
	Err    error
}

func (e *ProtocolViolation) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol violation in %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("protocol violation in %s: %s", e.Op, e.Detail)
}

func (e *ProtocolViolation) Unwrap() error { return e.Err }

// IsDomainError reports whether err is (or wraps) an engine domain error.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// IsProtocolViolation reports whether err is (or wraps) a boundary fault.
func IsProtocolViolation(err error) bool {
	var pv *ProtocolViolation
	return errors.As(err, &pv)
}

// Decode parses one raw envelope returned by op and returns the success
// payload bytes. The result schema is looked up by name (see SchemaFor); the
// op name is only used for error reporting.
//
// Error and success shapes are exclusive: an object carrying an "error" field
// next to anything else violates the contract.
func Decode(op, result, raw string) (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, &ProtocolViolation{Op: op, Detail: "envelope is not valid JSON", Err: err}
	}

	if obj, ok := v.(map[string]any); ok {
		if ev, present := obj["error"]; present {
			msg, ok := ev.(string)
			if !ok {
				return nil, &ProtocolViolation{Op: op, Detail: "error field is not a string"}
			}
			if msg == "" {
				return nil, &ProtocolViolation{Op: op, Detail: "error envelope with empty message"}
			}
			if len(obj) != 1 {
				return nil, &ProtocolViolation{Op: op, Detail: "error envelope carries extra fields"}
			}
			return nil, &DomainError{Message: msg}
		}
	}

	schema, err := SchemaFor(result)
	if err != nil {
		return nil, &ProtocolViolation{Op: op, Detail: "no result schema", Err: err}
	}
	if err := schema.Validate(v); err != nil {
		return nil, &ProtocolViolation{Op: op, Detail: "success shape mismatch", Err: err}
	}
	return json.RawMessage(raw), nil
}

// Error renders a well-formed error envelope for msg. Engine implementations
// use it so that every failure path still emits parseable JSON.
func Error(msg string) string {
	b, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		// Marshal of map[string]string cannot fail; keep a literal fallback anyway.
		return `{"error":"internal: encode error envelope"}`
	}
	return string(b)
}
