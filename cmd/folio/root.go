package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/folio/internal/api"
	"github.com/hyperengineering/folio/internal/config"
	"github.com/hyperengineering/folio/internal/contact"
	"github.com/hyperengineering/folio/internal/content"
	"github.com/hyperengineering/folio/internal/mail"
	"github.com/hyperengineering/folio/internal/site"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:          "folio",
	Short:        "Folio - portfolio site server",
	Long:         "Serves the portfolio site and relays contact form submissions. Subcommands pre-render and publish the static build.",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(routesCmd)
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateMail(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLogger(os.Stdout, cfg)

	catalog, s, err := loadSite()
	if err != nil {
		return err
	}
	slog.Info("content loaded", "projects", len(catalog.Projects()))

	relay := contact.NewRelay(newSender(cfg), relayConfig(cfg, catalog.Profile()))
	slog.Info("relay initialized", "email_service", cfg.MailConfigured())

	handler := api.NewHandler(s, relay, Version)
	router := api.NewRouter(handler, api.WithAllowedOrigins(cfg.Server.AllowedOrigins...))
	slog.Info("router initialized", "allowed_origins", cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	go func() {
		slog.Info("server starting", "address", addr)
		// ErrServerClosed means Shutdown was called; anything else is fatal.
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown initiated")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout))
	defer shutdownCancel()

	// Drains in-flight requests, including relays still sending.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// loadSite parses the embedded content and prepares the page templates.
func loadSite(opts ...site.Option) (*content.Catalog, *site.Site, error) {
	catalog, err := content.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load content: %w", err)
	}
	s, err := site.New(catalog, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare site: %w", err)
	}
	return catalog, s, nil
}

// newSender returns the EmailJS client, or a LogSender when credentials are
// absent (only reachable in dev mode).
func newSender(cfg *config.Config) mail.Sender {
	if !cfg.MailConfigured() {
		slog.Warn("email service not configured, messages will be logged", "component", "mail")
		return mail.LogSender{}
	}
	return mail.NewEmailJS(mail.EmailJSConfig{
		Endpoint:   cfg.Mail.Endpoint,
		ServiceID:  cfg.Mail.ServiceID,
		PublicKey:  cfg.Mail.PublicKey,
		PrivateKey: cfg.Mail.PrivateKey,
		Timeout:    time.Duration(cfg.Mail.Timeout),
	})
}

func relayConfig(cfg *config.Config, owner content.Profile) contact.RelayConfig {
	email := owner.Email
	if cfg.Mail.NotifyEmail != "" {
		email = cfg.Mail.NotifyEmail
	}
	return contact.RelayConfig{
		ConfirmationTemplate: cfg.Mail.ConfirmationTemplate,
		NotificationTemplate: cfg.Mail.NotificationTemplate,
		OwnerName:            owner.Name,
		OwnerFirstName:       firstName(owner.Name),
		OwnerEmail:           email,
	}
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}

// initLogger installs the configured logger as the default before anything
// else is logged.
func initLogger(w io.Writer, cfg *config.Config) {
	slog.SetDefault(newLogger(w, cfg.Log))
	slog.Info("configuration loaded")
	slog.Info("logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format)
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
