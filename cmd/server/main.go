package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/valiantdoor/backend/internal/config"
	"github.com/valiantdoor/backend/internal/handler"
	"github.com/valiantdoor/backend/internal/logging"
	"github.com/valiantdoor/backend/internal/mailer"
	"github.com/valiantdoor/backend/internal/model"
	"github.com/valiantdoor/backend/internal/service"
	"github.com/valiantdoor/backend/internal/store"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		})
		if err != nil {
			logging.Fatal("sentry init failed", "err", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	backend, cleanup, err := newBackend(ctx, cfg)
	cancel()
	if err != nil {
		logging.Fatal("storage backend init failed", "err", err)
	}
	defer cleanup()

	requests := store.NewCollection[model.QuoteRequest](backend, "requests", cfg.MaxRequests)
	reviews := store.NewCollection[model.Review](backend, "reviews", cfg.MaxReviews)

	var m mailer.Mailer = mailer.Disabled{}
	if cfg.MailConfigured() {
		smtp, err := mailer.NewSMTPMailer(mailer.Options{
			Host:   cfg.SMTPHost,
			Port:   cfg.SMTPPort,
			Secure: cfg.SMTPSecure,
			User:   cfg.SMTPUser,
			Pass:   cfg.SMTPPass,
			From:   cfg.EmailFrom,
			To:     cfg.EmailTo,
		})
		if err != nil {
			logging.Fatal("mail transport init failed", "err", err)
		}
		m = smtp
	}

	router := handler.NewRouter(handler.Deps{
		Env:          cfg.AppEnv,
		PublicDir:    cfg.PublicDir,
		FrontendURL:  cfg.FrontendURL,
		StorageName:  backend.Name(),
		Requests:     service.NewRequestService(requests, m),
		Reviews:      service.NewReviewService(reviews),
		Mailer:       m,
		TestEmailKey: cfg.TestEmailKey,
		AdminKey:     cfg.AdminKey,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"env", cfg.AppEnv,
			"storage", backend.Name(),
			"email", m.Configured(),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
	}
}

// newBackend picks the storage backend from configuration: MongoDB when a
// URI is present, then Postgres, then local files.
func newBackend(ctx context.Context, cfg *config.Config) (store.Backend, func(), error) {
	if cfg.MongoURI != "" {
		b, err := store.NewMongoBackend(ctx, cfg.MongoURI, cfg.MongoDB, cfg.KVPrefix)
		if err != nil {
			return nil, nil, err
		}
		return b, func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := b.Disconnect(disconnectCtx); err != nil {
				slog.Error("mongodb disconnect failed", "err", err)
			}
		}, nil
	}

	if cfg.DatabaseURL != "" {
		b, err := store.NewPgBackend(ctx, cfg.DatabaseURL, cfg.KVPrefix)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	}

	b := store.NewFileBackend(cfg.DataDir)
	if err := b.Ping(ctx); err != nil {
		return nil, nil, err
	}
	return b, func() {}, nil
}
