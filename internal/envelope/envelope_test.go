package envelope

import (
	"strings"
	"testing"
)

func TestDecode_DomainErrorPassthrough(t *testing.T) {
	_, err := Decode("GetTrainerCard", "trainer_card", `{"error":"invalid handle: -1"}`)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsDomainError(err) {
		t.Fatalf("expected domain error, got %T: %v", err, err)
	}
	if err.Error() != "invalid handle: -1" {
		t.Fatalf("message not preserved verbatim: %q", err.Error())
	}
}

func TestDecode_UnparsableIsProtocolViolation(t *testing.T) {
	cases := []string{
		"",
		"not json",
		`{"error":`,
		"\x00\x01",
	}
	for _, raw := range cases {
		_, err := Decode("GetBadges", "badge_list", raw)
		if !IsProtocolViolation(err) {
			t.Fatalf("raw %q: expected protocol violation, got %v", raw, err)
		}
		if IsDomainError(err) {
			t.Fatalf("raw %q: violation must not double as domain error", raw)
		}
	}
}

func TestDecode_ErrorShapeExclusivity(t *testing.T) {
	// Error next to success fields, non-string error, empty error: all
	// contract breaks, none of them domain errors.
	cases := []string{
		`{"error":"boom","textSpeed":1}`,
		`{"error":42}`,
		`{"error":""}`,
		`{"error":null}`,
	}
	for _, raw := range cases {
		_, err := Decode("GetTextSpeed", "text_speed", raw)
		if !IsProtocolViolation(err) {
			t.Fatalf("raw %s: expected protocol violation, got %v", raw, err)
		}
	}
}

func TestDecode_SuccessShapeValidated(t *testing.T) {
	payload, err := Decode("GetTextSpeed", "text_speed", `{"textSpeed":2}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(payload) != `{"textSpeed":2}` {
		t.Fatalf("payload altered: %s", payload)
	}

	// Right syntax, wrong shape.
	_, err = Decode("GetTextSpeed", "text_speed", `{"speed":2}`)
	if !IsProtocolViolation(err) {
		t.Fatalf("expected protocol violation for missing field, got %v", err)
	}
	_, err = Decode("GetTextSpeed", "text_speed", `{"textSpeed":"fast"}`)
	if !IsProtocolViolation(err) {
		t.Fatalf("expected protocol violation for wrong type, got %v", err)
	}
}

func TestDecode_UnknownSchema(t *testing.T) {
	_, err := Decode("SomeOp", "no_such_schema", `{}`)
	if !IsProtocolViolation(err) {
		t.Fatalf("expected protocol violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "no result schema") {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestError_AlwaysParseable(t *testing.T) {
	raw := Error(`quotes " and \ slashes`)
	_, err := Decode("AnyOp", "ack", raw)
	if !IsDomainError(err) {
		t.Fatalf("expected domain error from Error output, got %v", err)
	}
}
