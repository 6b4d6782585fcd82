// Package v1 exposes the catalog REST API over gorilla/mux.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/realmforge/catalog-api/internal/errors"
)

type successResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}

func writeData(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, successResponse{Data: data, Message: message})
}

// writeError maps the error code to an HTTP status and, for validation
// failures, surfaces every violated rule in one response.
func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: errors.GetMessage(err)}

	if meta := errors.GetMeta(err); meta != nil {
		if msgs, ok := meta["validation_errors"].([]string); ok {
			resp.Errors = msgs
		}
	}

	writeJSON(w, errors.GetCode(err).HTTPStatus(), resp)
}

// parseID extracts the numeric {id} path segment. Non-numeric input is
// rejected here, before any use case runs.
func parseID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("id must be a number, got %q", raw)
	}
	return id, nil
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.InvalidArgument("request body must be valid JSON")
	}
	return nil
}
