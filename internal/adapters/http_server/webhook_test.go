package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpserver "github.com/Thanhthanh392003/LVTN-homestay/internal/adapters/http_server"
	"github.com/Thanhthanh392003/LVTN-homestay/internal/app"
)

type stubGateway struct {
	payload map[string]any
	ok      bool
}

func (s *stubGateway) Get(context.Context, string, url.Values, map[string]string) (map[string]any, bool) {
	return s.payload, s.ok
}

func (s *stubGateway) Post(context.Context, string, any, map[string]string) (map[string]any, bool) {
	return s.payload, s.ok
}

type webhookResponse struct {
	Events []struct {
		Event string `json:"event"`
		Name  string `json:"name"`
		Value any    `json:"value"`
	} `json:"events"`
	Responses []struct {
		Text string `json:"text"`
	} `json:"responses"`
}

func newTestServer(gw *stubGateway) *httptest.Server {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{A: app.New(gw, "secret")})
	return httptest.NewServer(srv.Mux())
}

func postWebhook(t *testing.T, ts *httptest.Server, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	res, err := http.Post(ts.URL+"/webhook", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST /webhook: %v", err)
	}
	return res
}

func TestWebhook_DispatchesActionAndReturnsSlotEvents(t *testing.T) {
	gw := &stubGateway{ok: false} // booking lookup fails -> not-found + slot clear
	ts := newTestServer(gw)
	defer ts.Close()

	res := postWebhook(t, ts, map[string]any{
		"next_action": "action_check_booking_status",
		"sender_id":   "u1",
		"tracker":     map[string]any{"sender_id": "u1", "slots": map[string]any{"booking_id": "B404"}},
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var out webhookResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Responses) != 1 || !strings.Contains(out.Responses[0].Text, "B404") {
		t.Fatalf("unexpected responses %+v", out.Responses)
	}
	if len(out.Events) != 1 || out.Events[0].Event != "slot" ||
		out.Events[0].Name != "booking_id" || out.Events[0].Value != nil {
		t.Fatalf("expected booking_id clear event, got %+v", out.Events)
	}
}

func TestWebhook_EmptyListsAreNotNull(t *testing.T) {
	gw := &stubGateway{ok: true, payload: map[string]any{
		"status": "success",
		"data":   map[string]any{"promotions": []any{}},
	}}
	ts := newTestServer(gw)
	defer ts.Close()

	res := postWebhook(t, ts, map[string]any{
		"next_action": "action_list_promotions",
		"tracker":     map[string]any{"slots": map[string]any{}},
	})
	defer res.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["events"]) == "null" {
		t.Fatal("events must encode as [] not null")
	}
}

func TestWebhook_UnknownAction404(t *testing.T) {
	ts := newTestServer(&stubGateway{})
	defer ts.Close()

	res := postWebhook(t, ts, map[string]any{
		"next_action": "action_rob_a_bank",
		"tracker":     map[string]any{"slots": map[string]any{}},
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestWebhook_BadRequests(t *testing.T) {
	ts := newTestServer(&stubGateway{})
	defer ts.Close()

	res, err := http.Post(ts.URL+"/webhook", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", res.StatusCode)
	}

	res = postWebhook(t, ts, map[string]any{"tracker": map[string]any{}})
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing next_action: expected 400, got %d", res.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&stubGateway{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}
