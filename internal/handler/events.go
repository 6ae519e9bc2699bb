package handler

import (
	"net/http"

	"github.com/osse101/reelslot/internal/eventlog"
	"github.com/osse101/reelslot/internal/logger"
)

// HandleMachineHistory returns the newest logged events of a machine
// @Summary Machine event history
// @Tags machines
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} eventlog.Event
// @Router /api/v1/machines/{machineID}/events [get]
func HandleMachineHistory(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := machineIDParam(w, r)
		if !ok {
			return
		}
		limit, ok := GetOptionalIntQuery(w, r, QueryLimit)
		if !ok {
			return
		}

		events, err := svc.History(r.Context(), id.String(), limit)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetHistoryFailed, "machine", id, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetHistoryFailed)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}
		respondJSON(w, http.StatusOK, events)
	}
}
