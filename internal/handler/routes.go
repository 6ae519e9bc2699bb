package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/osse101/reelslot/internal/eventlog"
)

// MachineRoutes mounts the machine API under r
func MachineRoutes(r chi.Router, h *MachineHandler, history eventlog.Service) {
	r.Route("/machines", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleList)

		r.Route("/{"+ParamMachineID+"}", func(r chi.Router) {
			r.Get("/", h.HandleGet)
			r.Delete("/", h.HandleDelete)
			r.Post("/lever", h.HandlePullLever)
			r.Post("/reels/{"+ParamReel+"}/stop", h.HandleStopReel)
			r.Post("/tick", h.HandleTick)
			r.Post("/evaluate", h.HandleEvaluate)
			r.Post("/credit", h.HandleAddCredit)
			r.Get("/events", HandleMachineHistory(history))
		})
	})
}
