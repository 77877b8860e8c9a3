package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it
// against the struct's validation tags. If it returns an error, the HTTP
// response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

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

// GetOptionalQueryParam retrieves an optional query parameter, falling
// back to defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetPagination parses page and page_size query parameters. Missing
// parameters fall back to defaults; non-numeric values are rejected.
// If ok is false the response has already been written.
func GetPagination(r *http.Request, w http.ResponseWriter) (page, pageSize int, ok bool) {
	page, err := strconv.Atoi(GetOptionalQueryParam(r, "page", "1"))
	if err != nil || page < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPage)
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(GetOptionalQueryParam(r, "page_size", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPageSize)
		return 0, 0, false
	}

	return page, pageSize, true
}
