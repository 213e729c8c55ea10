// Package dispatch is the typed facade over the raw call surface: a small
// capability tree grouped by domain. Every method makes one raw call (or a
// short fixed sequence), decodes the envelope, schema-checks the success
// shape, and hands back the typed entity with engine ordering intact.
package dispatch

import (
	"encoding/json"

	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/engine"
	"github.com/monokrome/pkhex-go/internal/envelope"
)

// CallRecord is one audited boundary call.
type CallRecord struct {
	Op            string
	Handle        int32
	OK            bool
	Error         string
	ProtocolFault bool
}

// Auditor receives a record per call. Implementations must not block.
type Auditor interface {
	RecordCall(CallRecord)
}

type Client struct {
	sur   boundary.Surface
	audit Auditor
}

type Option func(*Client)

// WithAuditor attaches a call auditor.
func WithAuditor(a Auditor) Option {
	return func(c *Client) { c.audit = a }
}

func New(eng engine.Engine, opts ...Option) *Client {
	c := &Client{sur: boundary.NewSurface(eng)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Saves() Saves         { return Saves{c} }
func (c *Client) Trainer() Trainer     { return Trainer{c} }
func (c *Client) Species() Species     { return Species{c} }
func (c *Client) Inventory() Inventory { return Inventory{c} }
func (c *Client) MiniGames() MiniGames { return MiniGames{c} }
func (c *Client) Config() Config       { return Config{c} }
func (c *Client) Fashion() Fashion     { return Fashion{c} }

func (c *Client) record(op string, h engine.Handle, err error) {
	if c.audit == nil {
		return
	}
	rec := CallRecord{Op: op, Handle: int32(h), OK: err == nil}
	if err != nil {
		rec.Error = err.Error()
		rec.ProtocolFault = envelope.IsProtocolViolation(err)
	}
	c.audit.RecordCall(rec)
}

// decodeCall runs the full decode pipeline for one raw envelope: envelope
// split, schema check, then unmarshal into the typed entity. A DomainError
// passes through with its message untouched; everything else that goes wrong
// is a ProtocolViolation.
func decodeCall[T any](c *Client, op string, h engine.Handle, raw string) (T, error) {
	var out T
	spec, ok := boundary.Lookup(op)
	if !ok {
		err := &envelope.ProtocolViolation{Op: op, Detail: "operation missing from op table"}
		c.record(op, h, err)
		return out, err
	}
	payload, err := envelope.Decode(op, spec.Result, raw)
	if err != nil {
		c.record(op, h, err)
		return out, err
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		pv := &envelope.ProtocolViolation{Op: op, Detail: "decode typed entity", Err: err}
		c.record(op, h, pv)
		var zero T
		return zero, pv
	}
	c.record(op, h, nil)
	return out, nil
}

// ackCall is decodeCall for operations whose success payload is only an
// acknowledgment.
func ackCall(c *Client, op string, h engine.Handle, raw string) error {
	_, err := decodeCall[struct {
		OK bool `json:"ok"`
	}](c, op, h, raw)
	return err
}
