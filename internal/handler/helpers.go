package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// envelope is the only response shape of the JSON API.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode JSON response", zap.Error(err))
	}
}
