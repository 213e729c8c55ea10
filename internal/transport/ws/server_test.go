package ws

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/catalog"
	"github.com/monokrome/pkhex-go/internal/engine/memengine"
)

func dial(t *testing.T) (*websocket.Conn, *memengine.Engine) {
	t.Helper()
	cats, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalogs: %v", err)
	}
	eng := memengine.New(cats, memengine.DefaultTuning())
	logger := log.New(io.Discard, "", 0)
	srv := httptest.NewServer(NewServer(eng, logger, nil).Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn, eng
}

func handshake(t *testing.T, conn *websocket.Conn) welcomeMsg {
	t.Helper()
	if err := conn.WriteJSON(helloMsg{Type: TypeHello, ClientName: "test"}); err != nil {
		t.Fatalf("hello: %v", err)
	}
	var welcome welcomeMsg
	if err := conn.ReadJSON(&welcome); err != nil {
		t.Fatalf("welcome: %v", err)
	}
	return welcome
}

func call(t *testing.T, conn *websocket.Conn, id, op string, args ...any) resultMsg {
	t.Helper()
	if err := conn.WriteJSON(callMsg{Type: TypeCall, ID: id, Op: op, Args: args}); err != nil {
		t.Fatalf("call %s: %v", op, err)
	}
	var res resultMsg
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatalf("result %s: %v", op, err)
	}
	if res.ID != id {
		t.Fatalf("result id %q for call %q", res.ID, id)
	}
	return res
}

func TestHandshake(t *testing.T) {
	conn, _ := dial(t)
	welcome := handshake(t, conn)

	if welcome.Type != TypeWelcome || welcome.ProtocolVersion != Version {
		t.Fatalf("welcome: %+v", welcome)
	}
	if len(welcome.Ops) != len(boundary.Ops) {
		t.Fatalf("advertised %d ops, want %d", len(welcome.Ops), len(boundary.Ops))
	}
	if welcome.Catalogs["species"] == "" {
		t.Fatalf("catalog digests missing: %v", welcome.Catalogs)
	}
}

func TestCallFlow(t *testing.T) {
	conn, _ := dial(t)
	handshake(t, conn)

	res := call(t, conn, "1", boundary.OpLoadSave, "")
	if !res.OK {
		t.Fatalf("load: %+v", res)
	}
	var loaded struct {
		Handle int32 `json:"handle"`
	}
	if err := json.Unmarshal(res.Result, &loaded); err != nil {
		t.Fatalf("load result: %v", err)
	}

	res = call(t, conn, "2", boundary.OpGetTrainerCard, loaded.Handle)
	if !res.OK {
		t.Fatalf("card: %+v", res)
	}
	var card struct {
		TrainerName string `json:"trainerName"`
	}
	if err := json.Unmarshal(res.Result, &card); err != nil || card.TrainerName != "PLAYER" {
		t.Fatalf("card result: %s (%v)", res.Result, err)
	}

	// Engine-rejected call: error text passes through, no protocol fault.
	res = call(t, conn, "3", boundary.OpGetTrainerCard, 999999)
	if res.OK || res.ProtocolFault {
		t.Fatalf("dead handle: %+v", res)
	}
	if !strings.Contains(res.Error, "invalid handle") {
		t.Fatalf("dead handle error: %q", res.Error)
	}

	res = call(t, conn, "4", "NoSuchOp")
	if res.OK || !strings.Contains(res.Error, "unknown operation") {
		t.Fatalf("unknown op: %+v", res)
	}

	// Arity mismatch is rejected before the engine sees it.
	res = call(t, conn, "5", boundary.OpSetTextSpeed, loaded.Handle)
	if res.OK || res.Error == "" {
		t.Fatalf("arity: %+v", res)
	}

	res = call(t, conn, "6", boundary.OpReleaseSave, loaded.Handle)
	if !res.OK {
		t.Fatalf("release: %+v", res)
	}
}

func TestNonCallMessage(t *testing.T) {
	conn, _ := dial(t)
	handshake(t, conn)

	if err := conn.WriteJSON(map[string]string{"type": "PING"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var res resultMsg
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatalf("read: %v", err)
	}
	if res.OK || !strings.Contains(res.Error, "expected CALL") {
		t.Fatalf("non-call answer: %+v", res)
	}
}

func TestDisconnectReleasesHandles(t *testing.T) {
	conn, eng := dial(t)
	handshake(t, conn)

	for i := 0; i < 3; i++ {
		res := call(t, conn, "load", boundary.OpLoadSave, "")
		if !res.OK {
			t.Fatalf("load %d: %+v", i, res)
		}
	}
	if n := eng.OpenSessions(); n != 3 {
		t.Fatalf("open sessions before close: %d", n)
	}

	conn.Close()

	// Cleanup runs on the server goroutine after the read loop notices.
	deadline := time.Now().Add(5 * time.Second)
	for eng.OpenSessions() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("%d sessions still open after disconnect", eng.OpenSessions())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
