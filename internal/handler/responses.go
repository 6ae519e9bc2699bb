package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" refused", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgMachineNotFoundError    = "Machine not found"
	ErrMsgInsufficientCreditErr   = "Not enough credit for the bet"
	ErrMsgReelsSpinningError      = "The reels are still spinning"
	ErrMsgNoSpinError             = "No spin in progress"
	ErrMsgInputRejectedError      = "The machine ignored that input"
	ErrMsgInvalidReelIndexError   = "No such reel"
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
	ErrMsgMachineUnavailableError = "Machine state could not be loaded"
)

// mapServiceErrorToUserMessage converts service errors to HTTP status codes
// and messages a client can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMachineNotFound):
		return http.StatusNotFound, ErrMsgMachineNotFoundError
	case errors.Is(err, domain.ErrInsufficientCredit):
		return http.StatusPaymentRequired, ErrMsgInsufficientCreditErr
	case errors.Is(err, domain.ErrReelsSpinning):
		return http.StatusConflict, ErrMsgReelsSpinningError
	case errors.Is(err, domain.ErrNoSpinInProgress):
		return http.StatusConflict, ErrMsgNoSpinError
	case errors.Is(err, domain.ErrInputRejected):
		return http.StatusConflict, ErrMsgInputRejectedError
	case errors.Is(err, domain.ErrInvalidReelIndex):
		return http.StatusBadRequest, ErrMsgInvalidReelIndexError
	case errors.Is(err, domain.ErrUnknownMode), errors.Is(err, domain.ErrRestoreMidSpin):
		return http.StatusInternalServerError, ErrMsgMachineUnavailableError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
