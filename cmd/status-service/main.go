package main

import (
	"VCS_Status_Monitor/internal/status-service/aggregator"
	"VCS_Status_Monitor/internal/status-service/api/handler"
	"VCS_Status_Monitor/internal/status-service/api/middleware"
	"VCS_Status_Monitor/internal/status-service/api/routes"
	"VCS_Status_Monitor/internal/status-service/cache"
	"VCS_Status_Monitor/internal/status-service/config"
	"VCS_Status_Monitor/internal/status-service/events"
	"VCS_Status_Monitor/internal/status-service/probe"
	"VCS_Status_Monitor/internal/status-service/registry"
	"VCS_Status_Monitor/internal/status-service/report"
	"VCS_Status_Monitor/internal/status-service/service"
	"VCS_Status_Monitor/internal/status-service/sso"
	"VCS_Status_Monitor/internal/status-service/stream"
	"VCS_Status_Monitor/internal/status-service/uptime"
	"VCS_Status_Monitor/pkg/infra"
	"VCS_Status_Monitor/pkg/logger"
	"VCS_Status_Monitor/pkg/mail"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// set up logger
	logFile, err := logger.OpenReopenableFile(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	defer logFile.Close()
	zapLogger, _ := logger.New(logger.Options{
		Level:   appConfig.Server.LogLevel,
		Service: "status-service",
		Version: appConfig.Server.Version,
	}, logFile)
	defer zapLogger.Sync()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go logger.ReopenOnSignal(ctx, logFile, hup, zapLogger)

	// set up registry
	reg, err := registry.Load(appConfig.Monitor.RegistryFile)
	if err != nil {
		zapLogger.Fatal("failed to load service registry", zap.Error(err))
	}
	zapLogger.Info("loaded service registry", zap.Int("services", reg.Len()))

	// set up kafka
	publisher := events.NewNopPublisher()
	if appConfig.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.Topic))
		zapLogger.Info("publishing status changes to kafka", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.Topic))
	}
	defer publisher.Close()

	// set up status pipeline
	executor := probe.NewExecutor(appConfig.Monitor.ProbeTimeout)
	agg := aggregator.NewAggregator(executor, appConfig.Monitor.ProbeConcurrency, zapLogger)
	tracker := uptime.NewTracker(appConfig.Monitor.UptimeCountDegraded)
	snapshotCache := cache.NewSnapshotCache(appConfig.Monitor.CacheTTL, zapLogger)
	statusService := service.NewStatusService(reg, agg, tracker, snapshotCache, publisher, zapLogger)

	// set up sso
	ssoClient := sso.NewClient(sso.Config{
		Issuer:       appConfig.SSO.Issuer,
		ClientID:     appConfig.SSO.ClientID,
		ClientSecret: appConfig.SSO.ClientSecret,
		CallbackURL:  appConfig.SSO.CallbackURL,
		Timeout:      appConfig.SSO.Timeout,
	})
	var verifier sso.Verifier = ssoClient
	if appConfig.SSO.JWTSecret != "" {
		verifier = sso.NewJWTVerifier(appConfig.SSO.JWTSecret)
	}
	if appConfig.Redis.Enabled() {
		var redisClient *redis.Client
		redisClient, err = infra.NewRedisConnection(ctx, infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if err != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(err))
		} else {
			zapLogger.Info("connected to redis successfully")
		}
		defer redisClient.Close()
		verifier = sso.NewCachedVerifier(redisClient, verifier, appConfig.SSO.VerifyTTL, zapLogger)
	}
	m := middleware.NewSSOMiddleware(appConfig.SSO.Enabled, verifier, ssoClient.LoginURL(), zapLogger)

	// set up streams
	broadcaster := stream.NewBroadcaster(statusService, appConfig.Monitor.StreamInterval, zapLogger)
	go broadcaster.Run(ctx)
	wsServer := stream.NewWebSocketServer(broadcaster, handler.SnapshotEncoder(appConfig.Server.Version), appConfig.Server.AllowedOrigins, zapLogger)

	handlerLogger := handler.NewLogger(zapLogger)
	statusHandler := handler.NewStatusHandler(statusService, handlerLogger, appConfig.Server.Version)
	authHandler := handler.NewAuthHandler(ssoClient, handlerLogger)
	streamHandler := handler.NewStreamHandler(broadcaster, wsServer, handlerLogger, appConfig.Server.Version)

	// Create cronjobs for cache warm-up and daily report
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Monitor.RefreshSchedule, func() {
		ctx2, cancel2 := context.WithTimeout(ctx, appConfig.Monitor.ProbeTimeout+5*time.Second)
		defer cancel2()
		if _, e := statusService.GetSnapshot(ctx2); e != nil {
			zapLogger.Error("scheduled refresh failed", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for status refresh", zap.Error(err))
	}
	if appConfig.Mail.Enabled() {
		mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
		reportService := report.NewReportService(statusService, mailSender, appConfig.Mail.AdminMailAddress)
		_, err = cronJob.AddFunc(appConfig.Mail.ReportSchedule, func() {
			ctx2, cancel2 := context.WithTimeout(ctx, 30*time.Second)
			defer cancel2()
			zapLogger.Info("daily report cronjob called")
			if e := reportService.SendDailyReport(ctx2); e != nil {
				zapLogger.Error("failed to send daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.SetUpStatusRoutes(r, statusHandler, streamHandler, m)
	routes.SetUpAuthRoutes(r, authHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	<-cronJob.Stop().Done()
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
