package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/alumnet/admin-gateway/api/swagger"
	"github.com/alumnet/admin-gateway/internal/handler"
	internalmiddleware "github.com/alumnet/admin-gateway/internal/middleware"
	"github.com/alumnet/admin-gateway/internal/repository"
	"github.com/alumnet/admin-gateway/internal/service"
	"github.com/alumnet/admin-gateway/internal/session"
	"github.com/alumnet/admin-gateway/internal/upstream"
	"github.com/alumnet/admin-gateway/pkg/cache"
	"github.com/alumnet/admin-gateway/pkg/config"
	"github.com/alumnet/admin-gateway/pkg/database"
	"github.com/alumnet/admin-gateway/pkg/logger"
	corsmiddleware "github.com/alumnet/admin-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/alumnet/admin-gateway/pkg/middleware/requestid"
)

// @title Alumni Network Admin Gateway
// @version 1.0.0
// @description Proxy gateway for the alumni-network admin dashboard
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}

	var auditRepo *repository.AuditRepository
	if cfg.Audit.Enabled {
		db, err := database.NewAuditPostgres(cfg.Audit)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect audit database", "error", err)
		}
		auditRepo = repository.NewAuditRepository(db)
	}

	validate := validator.New()
	client := upstream.New(cfg.Upstream, logr)
	sessions := session.NewStore(rdb, cfg.Session.TTL, cfg.Session.JWTSecret)
	metrics := service.NewMetricsService()
	aggregates := service.NewAggregateCache(rdb, cfg.Dashboard.CacheTTL, cfg.Analytics.CacheTTL, metrics, logr)

	router := &handler.Router{
		Auth:       handler.NewAuthHandler(service.NewAuthService(client, sessions, logr), cfg.Session),
		Dashboard:  handler.NewDashboardHandler(service.NewDashboardService(client, aggregates, logr)),
		Analytics:  handler.NewAnalyticsHandler(service.NewAnalyticsService(client, aggregates, logr)),
		Alumni:     handler.NewAlumniHandler(service.NewAlumniService(client, aggregates, logr)),
		Users:      handler.NewUserHandler(service.NewUserService(client, aggregates, logr)),
		Events:     handler.NewEventHandler(service.NewEventService(client, aggregates, logr)),
		Jobs:       handler.NewJobHandler(service.NewJobService(client, validate, aggregates, logr)),
		Referrals:  handler.NewReferralHandler(service.NewReferralService(client, aggregates, logr)),
		Contacts:   handler.NewContactHandler(service.NewContactService(client, validate, aggregates, logr)),
		Views:      handler.NewViewStateHandler(service.NewViewStateService(rdb, cfg.Session.TTL, logr)),
		Exports:    handler.NewExportHandler(service.NewExportService(client, cfg.Export.MaxRows, cfg.Export.FetchPageSize, logr)),
		Metrics:    handler.NewMetricsHandler(metrics),
		Sessions:   sessions,
		CookieName: cfg.Session.CookieName,
		Audit:      auditRepo,
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.WithResponseMeta())
	r.Use(internalmiddleware.Metrics(metrics))

	router.Register(r)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
