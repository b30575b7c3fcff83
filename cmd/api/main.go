package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/techforing/jobboard/internal/config"
	"github.com/techforing/jobboard/internal/handler"
	"github.com/techforing/jobboard/internal/migrate"
	"github.com/techforing/jobboard/internal/notify"
	"github.com/techforing/jobboard/internal/repository"
	"github.com/techforing/jobboard/internal/service"
	"github.com/techforing/jobboard/internal/store"
	"github.com/techforing/jobboard/internal/token"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration (.env first, then the environment)
	_ = godotenv.Load()
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Apply schema migrations
	if err := migrate.Up(context.Background(), cfg.DBConn); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize layers. The store handle dials lazily on first use.
	st := store.New(cfg.DBConn)
	defer st.Close()
	repo := repository.NewRepository(st)
	tokens := token.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	mailer := notify.NewMailer(cfg, logger)
	var notifier service.WelcomeNotifier
	if mailer.Enabled() {
		notifier = mailer
	}

	authSvc := service.NewAuthService(repo, tokens, logger, notifier)
	catalogSvc := service.NewCatalogService(repo, logger)
	h := handler.NewHandler(authSvc, catalogSvc, logger, cfg.CookieName, cfg.Production())

	// Scheduled posting digest
	if mailer.Enabled() {
		digest := notify.NewDigest(mailer, repo, repo, logger)
		c := cron.New()
		if _, err := c.AddFunc(cfg.DigestSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			digest.Run(ctx)
		}); err != nil {
			logger.Fatalf("Invalid DIGEST_SCHEDULE: %v", err)
		}
		c.Start()
		defer c.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h.Router(tokens),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
