package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/krishisathi/backend/internal/adapter/postgres"
	chatrepo "github.com/krishisathi/backend/internal/adapter/postgres/chat"
	"github.com/krishisathi/backend/internal/adapter/postgres/detection"
	issuerepo "github.com/krishisathi/backend/internal/adapter/postgres/issue"
	marketrepo "github.com/krishisathi/backend/internal/adapter/postgres/market"
	subsidyrepo "github.com/krishisathi/backend/internal/adapter/postgres/subsidy"
	userrepo "github.com/krishisathi/backend/internal/adapter/postgres/user"
	"github.com/krishisathi/backend/internal/adapter/provider/classifier"
	"github.com/krishisathi/backend/internal/adapter/provider/llm"
	"github.com/krishisathi/backend/internal/adapter/storage"
	"github.com/krishisathi/backend/internal/auth"
	"github.com/krishisathi/backend/internal/config"
	authsvc "github.com/krishisathi/backend/internal/service/auth"
	"github.com/krishisathi/backend/internal/service/chat"
	"github.com/krishisathi/backend/internal/service/disease"
	"github.com/krishisathi/backend/internal/service/farmer"
	"github.com/krishisathi/backend/internal/service/issue"
	"github.com/krishisathi/backend/internal/service/market"
	"github.com/krishisathi/backend/internal/service/subsidy"
	"github.com/krishisathi/backend/internal/transport/middleware"
	"github.com/krishisathi/backend/internal/transport/rest"
	"github.com/krishisathi/backend/internal/workflow"
)

const rateLimitCleanup = 5 * time.Minute

// NewHandler wires adapters, services and the REST router on top of pool.
// The returned stop func releases background workers.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	// Adapters.
	files, err := storage.NewLocal(cfg.Storage.UploadDir, cfg.Storage.PublicPrefix, cfg.Storage.MaxUploadBytes)
	if err != nil {
		return nil, nil, err
	}
	chatClient, err := llm.New(cfg.Chat, logger)
	if err != nil {
		return nil, nil, err
	}
	model := classifier.New(cfg.Classifier.URL, cfg.Classifier.Timeout, logger)

	tx := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	issues := issuerepo.New(pool)
	apps := subsidyrepo.New(pool)
	detections := detection.New(pool)
	messages := chatrepo.New(pool)
	prices := marketrepo.New(pool)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	// Services.
	authService := authsvc.NewService(logger, users, tokens, hasher)
	farmerService := farmer.NewService(logger, users)
	issueService := issue.NewService(logger, issues, files, tx)
	subsidyService := subsidy.NewService(logger, apps, files, tx)
	diseaseService := disease.NewService(logger, detections, model, files)
	chatService := chat.NewService(logger, messages, chatClient)
	marketService := market.NewService(logger, prices)

	// Metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		workflow.TransitionsCollector(),
	)
	metrics := middleware.NewMetrics(registry)
	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	maxUpload := cfg.Storage.MaxUploadBytes
	health := rest.NewHealthHandler(Version,
		rest.Check{Name: "database", Fn: pool.Ping},
		rest.Check{Name: "storage", Fn: dirCheck(files.Root())},
	)

	router := rest.NewRouter(rest.Handlers{
		Health:  health,
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(farmerService, logger),
		Issue:   rest.NewIssueHandler(issueService, logger, maxUpload),
		Subsidy: rest.NewSubsidyHandler(subsidyService, logger, maxUpload),
		Disease: rest.NewDiseaseHandler(diseaseService, logger, maxUpload),
		Chat:    rest.NewChatHandler(chatService, logger),
		Market:  rest.NewMarketHandler(marketService, logger),
	}, rest.RouterDeps{
		Logger:     logger,
		Tokens:     authService,
		Authors:    users,
		Limiter:    limiter,
		Metrics:    metrics,
		Gatherer:   registry,
		CORS:       cfg.CORS,
		RateLimit:  cfg.RateLimit,
		UploadDir:  files.Root(),
		UploadPath: files.Prefix(),
	})

	return router, limiter.Stop, nil
}

// dirCheck reports whether dir still exists and is a directory.
func dirCheck(dir string) func(context.Context) error {
	return func(context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		return nil
	}
}
