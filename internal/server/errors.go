package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/rnaviz/pkg/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code     errors.Code `json:"code"`
	Message  string      `json:"message"`
	RenderID string      `json:"render_id,omitempty"`
}

// StatusFor maps a pipeline error to an HTTP status.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeParse, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeStructure, errors.ErrCodeMissingStructure:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("render failed", "id", RenderID(r.Context()), "err", err)
		if code == errors.ErrCodeInternal {
			msg = "internal error"
		}
	}
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:     code,
		Message:  msg,
		RenderID: RenderID(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
