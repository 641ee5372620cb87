package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
	"github.com/sbilibin2017/tcg-trading-api/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Card with ID 42 does not exist
	Error string `json:"error"`

	// Field level failures, present only for validation errors
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// MessageResponse represents a plain success response
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Card deleted successfully
	Message string `json:"message"`
}

const internalError = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service or database error to a status code and an error body.
func writeServiceError(w http.ResponseWriter, err error) {
	var sqlErr *sqlerr.Error
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, "Username or email already exists")
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrSameUserTrade),
		errors.Is(err, services.ErrInvalidTradeQuantities),
		errors.Is(err, services.ErrRarityOrSetNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &sqlErr):
		if sqlErr.Code == sqlerr.UniqueViolation || sqlErr.Code == sqlerr.ForeignKeyInUse {
			writeError(w, http.StatusConflict, sqlErr.Error())
			return
		}
		writeError(w, http.StatusBadRequest, sqlErr.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, internalError)
	}
}

// parseID reads the {id} path parameter. Only positive integers are valid.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// decodeRequest decodes the JSON body into dst and validates it. On failure
// it writes a 400 response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	err := validation.Struct(dst)
	if err == nil {
		return true
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Errors: fieldErrs})
		return false
	}
	logger.Log.Errorw("failed to validate request", "err", err)
	writeError(w, http.StatusInternalServerError, internalError)
	return false
}
