package ipc

import (
	"encoding/json"
	"testing"

	"github.com/gvassallo/layerwm/internal/wm"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"command":"FOCUS_WINDOW","payload":{"window":7}}`))
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Command != CommandFocusWindow {
		t.Fatalf("expected FOCUS_WINDOW, got %s", req.Command)
	}
	var p WindowPayload
	if err := json.Unmarshal(req.Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.Window != 7 {
		t.Fatalf("expected window 7, got %d", p.Window)
	}
}

func TestParseRequest_Invalid(t *testing.T) {
	if _, err := ParseRequest([]byte("not json")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestResponseRoundTrip(t *testing.T) {
	resp, err := NewOKResponse(StatusData{WindowCount: 3, GapSize: 5, DaemonRunning: true})
	if err != nil {
		t.Fatalf("NewOKResponse: %v", err)
	}
	data, err := resp.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Status != "OK" {
		t.Fatalf("expected OK, got %s", decoded.Status)
	}
	var st StatusData
	if err := json.Unmarshal(decoded.Data, &st); err != nil {
		t.Fatalf("data: %v", err)
	}
	if st.WindowCount != 3 || st.GapSize != 5 || !st.DaemonRunning {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("unknown window: 9")
	if resp.Status != "ERROR" || resp.Error != "unknown window: 9" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := parseDirection(wm.Next); err != nil {
		t.Fatalf("next must be valid: %v", err)
	}
	if _, err := parseDirection("sideways"); err == nil {
		t.Fatalf("expected invalid direction error")
	}
}
