package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bestchungsan/internal/handler"
	mw "bestchungsan/internal/middleware"
)

func New(
	logger *zap.Logger,
	pageH *handler.PageHandler,
	requestH *handler.RequestHandler,
	relayH *handler.RelayHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", pageH.Health)
	r.Get("/", pageH.Home)

	r.Get("/request", requestH.Show)
	r.Post("/request", requestH.Submit)

	r.Post("/api/send-email", relayH.SendEmail)

	return r
}
