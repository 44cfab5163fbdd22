package server

import (
	"encoding/json"
	"net/http"

	"jobapply-server/internal/common/errors"
)

// submitResponse is the body returned by the submission endpoint.
type submitResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"application_id,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	Pages         int    `json:"pages,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps a structured error onto the wire: the human message plus
// the stable machine-readable error code.
func writeError(w http.ResponseWriter, stdErr *errors.StandardError) {
	writeJSON(w, errors.HTTPStatus(stdErr.Code), submitResponse{
		Success:   false,
		Message:   stdErr.Message,
		ErrorCode: string(stdErr.Code),
	})
}
