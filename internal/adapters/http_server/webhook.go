// internal/adapters/http_server/webhook.go
package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/adapters/observability"
	"github.com/Thanhthanh392003/LVTN-homestay/internal/app"
	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// The dialogue engine invokes actions over the standard action-server
// protocol: POST /webhook carrying the action name and a tracker snapshot,
// answered with slot events and response blocks in emission order.

type webhookRequest struct {
	NextAction string  `json:"next_action"`
	SenderID   string  `json:"sender_id"`
	Tracker    tracker `json:"tracker"`
}

type tracker struct {
	SenderID string         `json:"sender_id"`
	Slots    map[string]any `json:"slots"`
}

// slotEvent carries one proposed mutation; a null value clears the slot.
type slotEvent struct {
	Event string `json:"event"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type responseBlock struct {
	Text string `json:"text"`
}

type webhookResponse struct {
	Events    []slotEvent     `json:"events"`
	Responses []responseBlock `json:"responses"`
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type Handlers struct{ A *app.Actions }

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/webhook", h.runAction)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) runAction(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid payload", "body must be a webhook request")
		return
	}
	if req.NextAction == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid payload", "next_action is required")
		return
	}

	start := time.Now()
	msgs, muts, ok := h.A.Dispatch(r.Context(), req.NextAction, domain.Slots(req.Tracker.Slots))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Unknown action", req.NextAction)
		return
	}
	observability.ObserveAction(req.NextAction, time.Since(start))

	// keep both lists non-null in JSON even when empty
	resp := webhookResponse{Events: []slotEvent{}, Responses: []responseBlock{}}
	for _, m := range muts {
		resp.Events = append(resp.Events, slotEvent{Event: "slot", Name: m.Name, Value: m.Value})
	}
	for _, m := range msgs {
		resp.Responses = append(resp.Responses, responseBlock{Text: m.Text})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Str("action", req.NextAction).Msg("failed to write webhook response")
	}
}
