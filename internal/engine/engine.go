// Package engine defines the narrow call surface of the embedded save-editing
// engine. Everything crossing this boundary is a scalar argument in and one
// JSON envelope string out; richer typing lives in the layers above.
package engine

// Handle identifies one live save session inside the engine. It is opaque to
// callers: validity is decided by the engine on every call, never cached on
// the client side. A released or never-issued handle is still a legal
// argument and produces an error-shaped envelope.
type Handle int32

// Engine is the foreign collaborator behind the boundary.
//
// Invoke accepts only scalar arguments (integers, strings, booleans) and
// always returns a JSON envelope string. Unknown operations, malformed
// arguments, invalid handles and internal faults all come back as
// {"error":"..."} envelopes; Invoke never panics across the boundary.
type Engine interface {
	Invoke(op string, args ...any) string
}
