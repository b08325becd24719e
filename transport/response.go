package transport

import (
	"encoding/json"
	"net/http"

	"github.com/ksagri/agroexport-api/model"
	"github.com/ksagri/agroexport-api/utils/errors"
	"github.com/ksagri/agroexport-api/utils/logger"
	"go.uber.org/zap"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success      bool                `json:"success"`
	Data         interface{}         `json:"data,omitempty"`
	Message      string              `json:"message,omitempty"`
	Error        string              `json:"error,omitempty"`
	Errors       []errors.FieldError `json:"errors,omitempty"`
	Pagination   *model.Pagination   `json:"pagination,omitempty"`
	StatusCounts map[string]int64    `json:"statusCounts,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, data interface{}, message string) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func writeCreated(w http.ResponseWriter, data interface{}, message string) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

func writeList(w http.ResponseWriter, data interface{}, pagination model.Pagination) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data, Pagination: &pagination})
}

// writeError maps the closed error taxonomy onto status-coded envelopes.
// Anything outside the taxonomy surfaces as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	if verr, ok := errors.AsValidation(err); ok {
		writeJSON(w, verr.ErrorHTTPCode(), Response{
			Success: false,
			Message: "validation errors",
			Errors:  verr.Fields,
		})
		return
	}

	if cerr, ok := err.(errors.CustomError); ok {
		writeJSON(w, cerr.ErrorHTTPCode(), Response{
			Success: false,
			Message: cerr.Error(),
			Error:   cerr.ErrorCode(),
		})
		return
	}

	logger.Error("unhandled error", zap.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Message: "internal server error",
	})
}

// writeError on the handler additionally exposes unknown-error detail in
// development mode.
func (s *RestHandler) writeError(w http.ResponseWriter, err error) {
	if _, ok := errors.AsValidation(err); ok {
		writeError(w, err)
		return
	}
	if _, ok := err.(errors.CustomError); ok {
		writeError(w, err)
		return
	}

	logger.Error("unhandled error", zap.String("error", err.Error()))
	resp := Response{Success: false, Message: "internal server error"}
	if s.cfg.IsDevelopment() {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
