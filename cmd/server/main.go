// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobapply-server/internal/common/config"
	"jobapply-server/internal/common/logger"
	"jobapply-server/internal/layout"
	"jobapply-server/internal/notify"
	"jobapply-server/internal/pdf"
	"jobapply-server/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting application intake server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// --- Document renderer ---
	theme := layout.DefaultTheme()
	if cfg.Render.FontName != "" {
		theme.FontFamily = cfg.Render.FontName
	}
	factory := pdf.NewFactory(pdf.Options{
		FontName: cfg.Render.FontName,
		FontPath: cfg.Render.FontPath,
	})
	renderer := layout.NewRenderer(theme, cfg.App.CompanyName, factory, log)

	// --- Notification dispatcher ---
	dispatcher, err := newDispatcher(cfg, log)
	if err != nil {
		zapLog.Fatal("dispatcher init failed", zap.Error(err))
	}
	notifier := notify.NewNotifier(dispatcher, cfg.Notifications, cfg.App.CompanyName, log)

	if smtpDispatcher, ok := dispatcher.(*notify.SMTPDispatcher); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := smtpDispatcher.TestConnection(ctx); err != nil {
			zapLog.Warn("SMTP connection test failed, continuing anyway", zap.Error(err))
		}
		cancel()
	}

	// --- HTTP server ---
	handler := server.NewHandler(cfg, renderer, notifier, log)
	router := server.NewRouter(cfg, handler, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Server stopped")
}

// newDispatcher selects the delivery provider from configuration.
func newDispatcher(cfg *config.Config, log logger.Logger) (notify.Dispatcher, error) {
	switch cfg.Notifications.Provider {
	case "ses":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return notify.NewSESDispatcher(ctx, cfg.Notifications.SES.Region, log)
	default:
		return notify.NewSMTPDispatcher(cfg.Notifications.SMTP, log), nil
	}
}
