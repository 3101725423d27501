package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/acehive/acehive-admin-api/api/swagger"
	"github.com/acehive/acehive-admin-api/internal/handler"
	"github.com/acehive/acehive-admin-api/internal/middleware"
	"github.com/acehive/acehive-admin-api/internal/repository"
	"github.com/acehive/acehive-admin-api/internal/service"
	"github.com/acehive/acehive-admin-api/pkg/cache"
	"github.com/acehive/acehive-admin-api/pkg/config"
	"github.com/acehive/acehive-admin-api/pkg/database"
	"github.com/acehive/acehive-admin-api/pkg/logger"
	corsmiddleware "github.com/acehive/acehive-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/acehive/acehive-admin-api/pkg/middleware/requestid"
)

// @title Acehive Admin API
// @version 1.0.0
// @description Staff console backend for the academic resource catalog
// @BasePath /api/v1
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Browse.CacheEnabled || cfg.Dashboard.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	validate := validator.New()

	authRepo := repository.NewAuthRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	tableRepo := repository.NewTableRepository(db)

	authSvc := service.NewAuthService(authRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	classificationSvc := service.NewClassificationService(validate, logr)
	submissionSvc := service.NewSubmissionService(classificationSvc, resourceRepo, metricsSvc, logr, cfg.Submission.InsertTimeout)
	policy := service.NewColumnPolicy(cfg.Browse.ResourcesHidden)
	browseSvc := service.NewBrowseService(tableRepo, policy, cacheSvc, metricsSvc, logr, service.BrowseServiceConfig{
		AllowedTables: cfg.Browse.AllowedTables,
		FetchTimeout:  cfg.Browse.FetchTimeout,
		CacheEnabled:  cfg.Browse.CacheEnabled,
		CacheTTL:      cfg.Browse.CacheTTL,
	})
	dashboardSvc := service.NewDashboardService(tableRepo, cacheSvc, logr, cfg.Browse.AllowedTables, cfg.Dashboard.CacheTTL)

	var exportSvc *service.ExportService
	if cfg.Export.Enabled {
		exportSvc = service.NewExportService(browseSvc, logr, cfg.Export.MaxRows)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	resourceHandler := handler.NewResourceHandler(submissionSvc)
	browseHandler := handler.NewBrowseHandler(browseSvc, exportSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	protected.POST("/auth/logout", authHandler.Logout)

	protected.POST("/resources", resourceHandler.Submit)
	protected.GET("/resources/status", resourceHandler.Status)
	protected.POST("/resources/acknowledge", resourceHandler.Acknowledge)

	protected.GET("/tables/:name", browseHandler.Select)
	protected.POST("/tables/:name/filters", browseHandler.Filter)
	protected.DELETE("/tables/:name/filters", browseHandler.Reset)
	protected.GET("/tables/:name/search", browseHandler.Search)
	protected.GET("/tables/:name/export", browseHandler.Export)

	protected.GET("/taxonomy", dashboardHandler.Taxonomy)
	if cfg.Dashboard.Enabled {
		protected.GET("/dashboard", dashboardHandler.Summary)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
