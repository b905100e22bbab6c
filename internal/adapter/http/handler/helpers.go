package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps err to a status and writes it. Internal errors are
// reported without details.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	status := mapDomainError(err)
	resp := dto.ErrorResponse{Error: message}

	if status < http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		resp.Message = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		resp.Fields = map[string]string{verr.Field: verr.Reason}
	}

	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}

	writeJSON(w, status, resp)
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrVoucherNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTaxCodeNotFound),
		errors.Is(err, domain.ErrBillNotFound),
		errors.Is(err, domain.ErrInstanceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidVoucherType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidStructure),
		errors.Is(err, domain.ErrUnbalanced),
		errors.Is(err, domain.ErrRateUnresolved),
		errors.Is(err, domain.ErrOverAllocation),
		errors.Is(err, domain.ErrWorkflowNotFound),
		errors.Is(err, domain.ErrWorkflowHasNoSteps),
		errors.Is(err, domain.ErrApprovalLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNumberingConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotAssignedApprover):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrPostingBusy):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeRequest decodes the JSON body into req and runs its validation
// tags. It writes the error response and returns false on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if fields := dto.Validate(req); fields != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:  "invalid request",
			Fields: fields,
		})
		return false
	}

	return true
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
