package handler

import (
	"net/http"

	"go.uber.org/zap"

	"bestchungsan/internal/web"
)

type PageHandler struct {
	pages  *web.Pages
	logger *zap.Logger
}

func NewPageHandler(pages *web.Pages, logger *zap.Logger) *PageHandler {
	return &PageHandler{pages: pages, logger: logger}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Render(w, web.PageHome, web.NewHomePage()); err != nil {
		h.logger.Error("error rendering home page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
