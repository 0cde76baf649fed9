package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/khaCey/Teachers-Calendar/api/swagger"
	"github.com/khaCey/Teachers-Calendar/internal/gateway"
	"github.com/khaCey/Teachers-Calendar/internal/handler"
	"github.com/khaCey/Teachers-Calendar/internal/middleware"
	"github.com/khaCey/Teachers-Calendar/internal/models"
	"github.com/khaCey/Teachers-Calendar/internal/repository"
	"github.com/khaCey/Teachers-Calendar/internal/service"
	"github.com/khaCey/Teachers-Calendar/pkg/cache"
	"github.com/khaCey/Teachers-Calendar/pkg/config"
	"github.com/khaCey/Teachers-Calendar/pkg/database"
	"github.com/khaCey/Teachers-Calendar/pkg/logger"
	corsmiddleware "github.com/khaCey/Teachers-Calendar/pkg/middleware/cors"
	reqidmiddleware "github.com/khaCey/Teachers-Calendar/pkg/middleware/requestid"
	"github.com/khaCey/Teachers-Calendar/pkg/storage"
)

// @title Teachers Calendar API
// @version 1.0.0
// @description Daily lesson cache built from the school calendar
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
	sugar := logr.Sugar()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		sugar.Fatalw("postgres connection failed", "error", err)
	}
	defer db.Close() //nolint:errcheck

	tz, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		sugar.Fatalw("invalid calendar timezone", "timezone", cfg.Calendar.Timezone, "error", err)
	}

	docStorage, err := storage.NewLocalStorage(cfg.Documents.StorageDir)
	if err != nil {
		sugar.Fatalw("document storage init failed", "dir", cfg.Documents.StorageDir, "error", err)
	}

	metricsSvc := service.NewMetricsService()

	// Redis is optional: without it the lessons endpoints read straight
	// from Postgres.
	var cacheRepo *repository.CacheRepository
	if redisClient, err := cache.NewRedis(cfg.Redis); err != nil {
		sugar.Warnw("redis unavailable, continuing without read cache", "error", err)
	} else {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
		defer cacheRepo.Close() //nolint:errcheck
	}
	var cacheService *service.CacheService
	if cacheRepo != nil {
		cacheService = service.NewCacheService(cacheRepo, metricsSvc, cfg.Lessons.CacheTTL, logr, cfg.Lessons.CacheEnabled)
	}

	validate := validator.New()

	lessonCacheRepo := repository.NewLessonCacheRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	calendarClient := gateway.NewCalendarClient(cfg.Calendar, logr)

	// Recolors are rate-limited upstream; applying them from background
	// workers keeps the sync response fast and retries transient failures.
	recolorQueue := gateway.NewRecolorQueue(calendarClient, gateway.RecolorQueueConfig{
		Workers:    1,
		RetryDelay: 5 * time.Second,
		Logger:     logr,
	})
	recolorQueue.Start(ctx)
	syncCalendar := gateway.NewAsyncCalendar(calendarClient, recolorQueue)

	authService := service.NewAuthService(cfg.Auth.Secret, 24*time.Hour)
	syncService := service.NewSyncService(syncCalendar, studentRepo, lessonCacheRepo, cfg.Calendar.SourceIDs, tz, cacheService, metricsSvc, logr)
	lessonService := service.NewLessonService(lessonCacheRepo, cacheService, logr)
	studentService := service.NewStudentService(studentRepo, teacherRepo, logr)
	historyService := service.NewHistoryService(historyRepo, lessonCacheRepo, validate, logr)
	evaluationService := service.NewEvaluationService(evaluationRepo, logr)
	documentService := service.NewDocumentService(docStorage, evaluationRepo, lessonCacheRepo, validate, logr)

	syncHandler := handler.NewSyncHandler(syncService)
	lessonHandler := handler.NewLessonHandler(lessonService)
	studentHandler := handler.NewStudentHandler(studentService)
	historyHandler := handler.NewHistoryHandler(historyService)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService)
	documentHandler := handler.NewDocumentHandler(documentService)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db.DB)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(authService))
	{
		api.POST("/sync", middleware.RequireRoles(models.RoleAdmin), syncHandler.Run)

		api.GET("/lessons", lessonHandler.List)
		api.GET("/lessons/statuses", lessonHandler.Statuses)
		api.GET("/lessons/export", lessonHandler.Export)
		api.PATCH("/lessons/:eventId/status", lessonHandler.SetStatus)

		api.GET("/students/:name/links", studentHandler.Links)
		api.GET("/students/:name/evaluations", evaluationHandler.ListByStudent)
		api.GET("/folders", studentHandler.FoldersAndTeachers)
		api.GET("/folders/:folderKey/students", studentHandler.NamesByFolder)
		api.GET("/folders/:folderKey/history", historyHandler.ListByFolder)

		api.POST("/history", historyHandler.Record)
		api.POST("/documents/lesson-note", documentHandler.LessonNote)
		api.POST("/documents/evaluation", documentHandler.Evaluation)
		api.GET("/documents/files/*path", documentHandler.Download)
		api.DELETE("/documents/files/*path", middleware.RequireRoles(models.RoleAdmin), documentHandler.Delete)
	}

	var scheduler *cron.Cron
	if cfg.Sync.Enabled {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Sync.CronExpr, func() {
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()
			if _, err := syncService.Run(runCtx, ""); err != nil {
				sugar.Errorw("scheduled sync failed", "error", err)
			}
		})
		if err != nil {
			sugar.Fatalw("invalid sync cron expression", "expr", cfg.Sync.CronExpr, "error", err)
		}
		scheduler.Start()
		sugar.Infow("sync scheduler started", "expr", cfg.Sync.CronExpr)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		sugar.Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("shutting down")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	recolorQueue.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("shutdown failed", "error", err)
	}
}
