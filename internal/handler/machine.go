package handler

import (
	"net/http"

	"github.com/osse101/reelslot/internal/logger"
	"github.com/osse101/reelslot/internal/machine"
)

// MachineHandler exposes hosted machine sessions over HTTP
type MachineHandler struct {
	service machine.Service
}

// NewMachineHandler creates a new machine handler
func NewMachineHandler(service machine.Service) *MachineHandler {
	return &MachineHandler{service: service}
}

// TickRequest advances a machine's animation
type TickRequest struct {
	DT float64 `json:"dt" validate:"gte=0,lte=5,finite"`
}

// AddCreditRequest inserts coins
type AddCreditRequest struct {
	Amount int `json:"amount" validate:"required,min=1,max=10000"`
}

// HandleCreate starts a new session
// @Summary Create machine
// @Tags machines
// @Produce json
// @Success 201 {object} domain.MachineView
// @Router /api/v1/machines [post]
func (h *MachineHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.Create(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgCreateMachineFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgCreateMachineFailed)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// HandleList returns the most recently played sessions
// @Summary List machines
// @Tags machines
// @Produce json
// @Param limit query int false "Maximum number of machines"
// @Success 200 {array} domain.Machine
// @Router /api/v1/machines [get]
func (h *MachineHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQuery(w, r, QueryLimit)
	if !ok {
		return
	}
	machines, err := h.service.List(r.Context(), limit)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListMachinesFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgListMachinesFailed)
		return
	}
	respondJSON(w, http.StatusOK, machines)
}

// HandleGet returns the current view of a session
// @Summary Get machine
// @Tags machines
// @Produce json
// @Param machineID path string true "Machine ID"
// @Success 200 {object} domain.MachineView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/machines/{machineID} [get]
func (h *MachineHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}
	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetMachine, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// HandleDelete removes a session
// @Summary Delete machine
// @Tags machines
// @Param machineID path string true "Machine ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/machines/{machineID} [delete]
func (h *MachineHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, OpDeleteMachine, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMachineDeleted})
}

// HandlePullLever starts a spin
// @Summary Pull lever
// @Tags machines
// @Produce json
// @Param machineID path string true "Machine ID"
// @Success 200 {object} domain.MachineView
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/machines/{machineID}/lever [post]
func (h *MachineHandler) HandlePullLever(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}
	v, err := h.service.PullLever(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpPullLever, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// HandleStopReel presses one stop button
// @Summary Stop reel
// @Tags machines
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param reel path int true "Reel index"
// @Success 200 {object} domain.MachineView
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/machines/{machineID}/reels/{reel}/stop [post]
func (h *MachineHandler) HandleStopReel(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}
	reel, ok := reelParam(w, r)
	if !ok {
		return
	}
	v, err := h.service.RequestStop(r.Context(), id, reel)
	if err != nil {
		respondServiceError(w, r, OpStopReel, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// HandleTick advances the reels by dt seconds
// @Summary Advance animation
// @Tags machines
// @Accept json
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param request body TickRequest true "Frame time"
// @Success 200 {object} domain.MachineView
// @Router /api/v1/machines/{machineID}/tick [post]
func (h *MachineHandler) HandleTick(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}
	var req TickRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpTick); err != nil {
		return
	}
	v, err := h.service.Tick(r.Context(), id, req.DT)
	if err != nil {
		respondServiceError(w, r, OpTick, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// HandleEvaluate settles a stopped spin
// @Summary Evaluate spin
// @Tags machines
// @Produce json
// @Param machineID path string true "Machine ID"
// @Success 200 {object} domain.SpinResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/machines/{machineID}/evaluate [post]
func (h *MachineHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}
	result, err := h.service.Evaluate(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpEvaluate, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleAddCredit inserts coins
// @Summary Add credit
// @Tags machines
// @Accept json
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param request body AddCreditRequest true "Coins"
// @Success 200 {object} domain.MachineView
// @Router /api/v1/machines/{machineID}/credit [post]
func (h *MachineHandler) HandleAddCredit(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}
	var req AddCreditRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpAddCredit); err != nil {
		return
	}
	v, err := h.service.AddCredit(r.Context(), id, req.Amount)
	if err != nil {
		respondServiceError(w, r, OpAddCredit, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}
