package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/reelslot/internal/logger"
)

// Route parameter names
const (
	ParamMachineID = "machineID"
	ParamReel      = "reel"
	QueryLimit     = "limit"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
// Example usage:
//
//	var req AddCreditRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpAddCredit); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Debug(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// machineIDParam parses the machine id path parameter. On failure the
// response has been written and ok is false.
func machineIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, ParamMachineID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMachineID)
		return uuid.Nil, false
	}
	return id, true
}

// reelParam parses the reel path parameter. Range checks belong to the
// machine, which knows its reel count.
func reelParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	reel, err := strconv.Atoi(chi.URLParam(r, ParamReel))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidReel)
		return 0, false
	}
	return reel, true
}

// GetOptionalIntQuery reads an optional integer query parameter. Zero means
// absent; a malformed value writes a 400 and returns ok false.
func GetOptionalIntQuery(w http.ResponseWriter, r *http.Request, paramName string) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return v, true
}
