package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler streams hub events to one client. The optional "types" query
// parameter is a comma separated list of event types; "machine" limits the
// stream to one machine id.
//
// @Summary Live machine events
// @Description Server-sent event stream of spin, reel and bonus events
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma separated event types"
// @Param machine query string false "Machine ID"
// @Success 200 {string} string "event stream"
// @Router /api/v1/events/stream [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		filter := Filter{MachineID: r.URL.Query().Get(QueryMachine)}
		var eventTypes []string
		if raw := r.URL.Query().Get(QueryTypes); raw != "" {
			eventTypes = strings.Split(raw, ",")
			filter.Types = make(map[string]bool, len(eventTypes))
			for _, t := range eventTypes {
				filter.Types[strings.TrimSpace(t)] = true
			}
		}

		client := hub.Register(filter)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"machine", filter.MachineID,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			MachineID: filter.MachineID,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(event) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
