package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"bestchungsan/internal/model"
)

const (
	relayOK   = "의뢰서가 성공적으로 제출되었습니다."
	relayFail = "의뢰서 제출 중 오류가 발생했습니다."

	maxRelayBody = 1 << 20
)

type relaySender interface {
	Send(ctx context.Context, sub model.Submission) (string, error)
}

// RelayHandler serves POST /api/send-email. It answers 200 or 500 only.
type RelayHandler struct {
	relay  relaySender
	logger *zap.Logger
}

func NewRelayHandler(relay relaySender, logger *zap.Logger) *RelayHandler {
	return &RelayHandler{relay: relay, logger: logger}
}

func (h *RelayHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var sub model.Submission
	body := http.MaxBytesReader(w, r.Body, maxRelayBody)
	if err := json.NewDecoder(body).Decode(&sub); err != nil {
		h.logger.Error("Email sending error", zap.Error(err), zap.String("stage", "decode"))
		writeJSON(w, h.logger, http.StatusInternalServerError, envelope{Success: false, Message: relayFail})
		return
	}

	if _, err := h.relay.Send(r.Context(), sub); err != nil {
		h.logger.Error("Email sending error", zap.Error(err), zap.String("stage", "send"))
		writeJSON(w, h.logger, http.StatusInternalServerError, envelope{Success: false, Message: relayFail})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, envelope{Success: true, Message: relayOK})
}
