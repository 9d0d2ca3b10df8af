package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/commonshub/signup/internal/directus"
	"github.com/commonshub/signup/internal/email"
	"github.com/commonshub/signup/internal/github"
	"github.com/commonshub/signup/internal/handler"
	"github.com/commonshub/signup/pkg/config"
	"github.com/commonshub/signup/pkg/httpserver"
	"github.com/commonshub/signup/pkg/logger"
	"github.com/commonshub/signup/pkg/ratelimit"
)

// appConfig covers the settings that belong to the service itself rather
// than to one of its clients.
type appConfig struct {
	// Submission throttle: attempts per client IP per endpoint.
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"3"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1h"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg)
	logger.SetAsDefault(log)

	var (
		appCfg      appConfig
		directusCfg directus.Config
		emailCfg    email.Config
		githubCfg   github.Config
		httpCfg     httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&directusCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&githubCfg)
	config.MustLoad(&httpCfg)

	cms, err := directus.New(directusCfg)
	if err != nil {
		fatal(log, "directus client init failed", err)
	}

	sender := newSender(emailCfg, logCfg.Env, log)

	githubSvc := github.NewService(githubCfg)
	defer githubSvc.Close()

	store := ratelimit.NewMemoryStore()
	defer func() { _ = store.Close() }()

	limiter, err := ratelimit.NewFixedWindow(store, appCfg.RateLimit, appCfg.RateWindow)
	if err != nil {
		fatal(log, "rate limiter init failed", err)
	}

	signup := handler.NewSignupHandler(cms, sender, emailCfg.AdminEmail, log)
	router := handler.NewRouter(cms, githubSvc, signup, limiter, appCfg.AllowedOrigins, log)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		fatal(log, "server stopped with error", err)
	}
}

// newSender picks Postmark when credentials are configured and falls back
// to the logging sender otherwise, so development environments run
// without provider tokens.
func newSender(cfg email.Config, env string, log *slog.Logger) email.Sender {
	if cfg.PostmarkServerToken == "" || cfg.PostmarkAccountToken == "" {
		if env == "production" {
			log.Warn("postmark tokens missing, outbound email disabled",
				logger.Component("email"),
			)
		}
		return email.NewLogSender(log)
	}

	sender, err := email.NewPostmarkSender(cfg)
	if err != nil {
		fatal(log, "postmark sender init failed", err)
	}
	return sender
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, logger.Error(err))
	os.Exit(1)
}
