package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

const maxJSONBody = 1 << 20

// envelope is the body of every API response.
type envelope struct {
	Success    bool           `json:"success"`
	Data       any            `json:"data,omitempty"`
	Message    string         `json:"message,omitempty"`
	Pagination *paginationDTO `json:"pagination,omitempty"`
	Error      string         `json:"error,omitempty"`
	Details    []fieldDTO     `json:"details,omitempty"`
}

type paginationDTO struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type fieldDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeOK(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

func writeList(w http.ResponseWriter, data any, p domain.Pagination) {
	writeJSON(w, http.StatusOK, envelope{
		Success:    true,
		Data:       data,
		Pagination: &paginationDTO{Total: p.Total, Page: p.Page, Limit: p.Limit, Pages: p.Pages},
	})
}

func writeFailure(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, envelope{Message: message, Error: kind})
}

// writeError maps a service error onto its HTTP status and stable error kind.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		details := make([]fieldDTO, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			details = append(details, fieldDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error(), Error: "validation", Details: details})
	case errors.Is(err, domain.ErrValidation):
		writeFailure(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrPreconditionFailed):
		writeFailure(w, http.StatusBadRequest, "precondition_failed", err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeFailure(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeFailure(w, http.StatusBadRequest, "conflict", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeFailure(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeFailure(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, domain.ErrStorage):
		log.WarnContext(r.Context(), "storage failure", slog.String("error", err.Error()))
		writeFailure(w, http.StatusBadGateway, "storage_failed", err.Error())
	case errors.Is(err, domain.ErrGeneration):
		log.WarnContext(r.Context(), "generation failure", slog.String("error", err.Error()))
		writeFailure(w, http.StatusBadGateway, "generation_failed", err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeFailure(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return domain.NewValidationError("body", "invalid JSON request body")
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// NotFound answers unknown paths with the failure envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusNotFound, "not_found", "route "+r.Method+" "+r.URL.Path+" not found")
}

// MethodNotAllowed answers known paths requested with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusMethodNotAllowed, "method_not_allowed", "method "+r.Method+" not allowed on "+r.URL.Path)
}
