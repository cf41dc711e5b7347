package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L().Error("encode response failed", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

// decodeJSON reads a request body of at most 1 MiB into dst, rejecting
// unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second value means trailing garbage after the JSON document.
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
