// Package ws exposes the typed boundary over a WebSocket CALL/RESULT
// protocol. One connection is one synchronous caller: requests are handled in
// arrival order and handles opened on a connection are released when it goes
// away, so a dropped client cannot leak engine sessions.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/dispatch"
	"github.com/monokrome/pkhex-go/internal/engine"
	"github.com/monokrome/pkhex-go/internal/envelope"
)

const Version = "1.0"

// Message types.
const (
	TypeHello   = "HELLO"
	TypeWelcome = "WELCOME"
	TypeCall    = "CALL"
	TypeResult  = "RESULT"
)

type helloMsg struct {
	Type       string `json:"type"`
	ClientName string `json:"client_name,omitempty"`
}

type welcomeMsg struct {
	Type            string            `json:"type"`
	ProtocolVersion string            `json:"protocol_version"`
	Ops             []string          `json:"ops"`
	Catalogs        map[string]string `json:"catalogs,omitempty"`
}

type callMsg struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Op   string `json:"op"`
	Args []any  `json:"args"`
}

type resultMsg struct {
	Type          string          `json:"type"`
	ID            string          `json:"id"`
	OK            bool            `json:"ok"`
	Result        json.RawMessage `json:"result,omitempty"`
	Error         string          `json:"error,omitempty"`
	ProtocolFault bool            `json:"protocol_fault,omitempty"`
}

// catalogDigester is implemented by engines that can report their reference
// data digests for the WELCOME handshake.
type catalogDigester interface {
	CatalogDigests() map[string]string
}

type Server struct {
	eng   engine.Engine
	sur   boundary.Surface
	log   *log.Logger
	audit dispatch.Auditor

	upgrader websocket.Upgrader
}

func NewServer(eng engine.Engine, logger *log.Logger, audit dispatch.Auditor) *Server {
	return &Server{
		eng:   eng,
		sur:   boundary.NewSurface(eng),
		log:   logger,
		audit: audit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if !s.handshake(conn) {
			return
		}

		// Handles opened over this connection, for cleanup on disconnect.
		owned := map[int32]bool{}
		defer s.releaseOwned(owned)

		for {
			_ = conn.SetReadDeadline(time.Now().Add(120 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var call callMsg
			if err := json.Unmarshal(msg, &call); err != nil || call.Type != TypeCall {
				s.write(conn, resultMsg{Type: TypeResult, OK: false, Error: "expected CALL message"})
				continue
			}
			s.write(conn, s.handleCall(call, owned))
		}
	}
}

func (s *Server) handshake(conn *websocket.Conn) bool {
	_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return false
	}
	var hello helloMsg
	if err := json.Unmarshal(msg, &hello); err != nil || hello.Type != TypeHello {
		return false
	}

	welcome := welcomeMsg{
		Type:            TypeWelcome,
		ProtocolVersion: Version,
		Ops:             make([]string, 0, len(boundary.Ops)),
	}
	for _, op := range boundary.Ops {
		welcome.Ops = append(welcome.Ops, op.Name)
	}
	if d, ok := s.eng.(catalogDigester); ok {
		welcome.Catalogs = d.CatalogDigests()
	}
	return s.write(conn, welcome)
}

func (s *Server) handleCall(call callMsg, owned map[int32]bool) resultMsg {
	res := resultMsg{Type: TypeResult, ID: call.ID}

	spec, ok := boundary.Lookup(call.Op)
	if !ok {
		res.Error = "unknown operation: " + call.Op
		return res
	}

	raw, err := s.sur.Call(spec, call.Args)
	if err != nil {
		// Arity/kind mismatch; the engine was never called.
		res.Error = err.Error()
		return res
	}

	payload, err := envelope.Decode(call.Op, spec.Result, raw)
	s.record(call, err)
	if err != nil {
		res.Error = err.Error()
		if envelope.IsProtocolViolation(err) {
			res.ProtocolFault = true
			s.log.Printf("protocol fault in %s: %v", call.Op, err)
		}
		return res
	}

	s.trackHandles(call, spec, payload, owned)
	res.OK = true
	res.Result = payload
	return res
}

// trackHandles keeps the per-connection handle set in sync with successful
// load and release calls.
func (s *Server) trackHandles(call callMsg, spec boundary.OpSpec, payload json.RawMessage, owned map[int32]bool) {
	switch spec.Name {
	case boundary.OpLoadSave:
		var out struct {
			Handle int32 `json:"handle"`
		}
		if err := json.Unmarshal(payload, &out); err == nil {
			owned[out.Handle] = true
		}
	case boundary.OpReleaseSave:
		if len(call.Args) == 1 {
			if f, ok := call.Args[0].(float64); ok {
				delete(owned, int32(f))
			}
		}
	}
}

func (s *Server) releaseOwned(owned map[int32]bool) {
	for h := range owned {
		raw := s.sur.ReleaseSave(engine.Handle(h))
		if _, err := envelope.Decode(boundary.OpReleaseSave, "ack", raw); err != nil {
			s.log.Printf("release handle %d on disconnect: %v", h, err)
		}
	}
}

func (s *Server) record(call callMsg, err error) {
	if s.audit == nil {
		return
	}
	rec := dispatch.CallRecord{Op: call.Op, Handle: -1, OK: err == nil}
	if len(call.Args) > 0 {
		if f, ok := call.Args[0].(float64); ok {
			rec.Handle = int32(f)
		}
	}
	if err != nil {
		rec.Error = err.Error()
		rec.ProtocolFault = envelope.IsProtocolViolation(err)
	}
	s.audit.RecordCall(rec)
}

func (s *Server) write(conn *websocket.Conn, v any) bool {
	b, err := json.Marshal(v)
	if err != nil {
		return false
	}
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b) == nil
}
