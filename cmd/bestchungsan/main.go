package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bestchungsan/internal/config"
	"bestchungsan/internal/domain"
	"bestchungsan/internal/handler"
	"bestchungsan/internal/router"
	"bestchungsan/internal/service/direct"
	"bestchungsan/internal/service/mail"
	"bestchungsan/internal/service/notify"
	"bestchungsan/internal/service/relay"
	"bestchungsan/internal/service/session"
	"bestchungsan/internal/web"
	pkg_config "bestchungsan/pkg/config"
	"bestchungsan/pkg/emailjs"
	"bestchungsan/pkg/masker"
	"bestchungsan/pkg/zaplogger"
)

const (
	sessionTTL      = 24 * time.Hour
	sessionCleanup  = time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger, err := zaplogger.New("info")
	if err != nil {
		panic(err)
	}

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg := config.Config{}
	if err := pkg_config.LoadEnv(envFile, &cfg, logger); err != nil {
		logger.Fatal("error loading configs", zap.Error(err))
	}

	if logger, err = zaplogger.New(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := masker.LogConfigs(logger, &cfg); err != nil {
		logger.Fatal("error logging configs", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	transport, err := mail.NewTransport(ctx, cfg.MailConfig)
	if err != nil {
		logger.Error("mail transport is not configured, relay submissions will fail", zap.Error(err))
	}

	var notifier domain.Notifier
	if cfg.TelegramConfig.BotToken != "" {
		tn, err := notify.NewTelegramNotifier(cfg.TelegramConfig.BotToken, cfg.TelegramConfig.Admins, logger)
		if err != nil {
			logger.Fatal("error creating telegram notifier", zap.Error(err))
		}
		defer tn.Stop()
		notifier = tn
	}

	emailClient := emailjs.New(cfg.EmailJSConfig.Endpoint, &http.Client{Timeout: 30 * time.Second})
	if err := emailClient.Init(cfg.EmailJSConfig.PublicKey); err != nil {
		logger.Error("emailjs is not initialized, direct submissions will fail", zap.Error(err))
	}

	pages, err := web.NewPages()
	if err != nil {
		logger.Fatal("error parsing templates", zap.Error(err))
	}

	relayService := relay.NewService(transport, notifier, cfg.MailConfig, logger)
	directSender := direct.NewSender(emailClient, notifier, cfg.EmailJSConfig, logger)
	store := session.NewStore(sessionTTL, sessionCleanup)

	r := router.New(
		logger,
		handler.NewPageHandler(pages, logger),
		handler.NewRequestHandler(store, directSender, pages, logger),
		handler.NewRelayHandler(relayService, logger),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPConfig.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTPConfig.ReadTimeout,
		WriteTimeout: cfg.HTTPConfig.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		logger.Fatal("error serving http", zap.Error(err))
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))
	}
}
