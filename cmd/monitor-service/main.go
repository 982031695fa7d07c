package main

import (
	"VCS_Uptime_Monitor/internal/monitor-service/api/handler"
	"VCS_Uptime_Monitor/internal/monitor-service/api/routes"
	"VCS_Uptime_Monitor/internal/monitor-service/config"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/probe"
	"VCS_Uptime_Monitor/internal/monitor-service/proxy"
	"VCS_Uptime_Monitor/internal/monitor-service/publisher"
	"VCS_Uptime_Monitor/internal/monitor-service/repository"
	"VCS_Uptime_Monitor/internal/monitor-service/scheduler"
	"VCS_Uptime_Monitor/internal/monitor-service/service"
	"VCS_Uptime_Monitor/pkg/infra"
	"VCS_Uptime_Monitor/pkg/logger"
	"VCS_Uptime_Monitor/pkg/mail"
	"VCS_Uptime_Monitor/pkg/middleware"
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
	"github.com/go-chi/cors"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type storage struct {
	monitors repository.MonitorRepository
	proxy    repository.ProxyConfigRepository
	db       *gorm.DB
}

func openStorage(cfg config.AppConfig) (storage, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := infra.NewPostgresConnection(infra.PostgresConfig{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			DBName:   cfg.Postgres.DBName,
			SSLMode:  cfg.Postgres.SSLMode,
		})
		if err != nil {
			return storage{}, err
		}
		if err = repository.Migrate(db); err != nil {
			return storage{}, err
		}
		return storage{
			monitors: repository.NewMonitorRepository(db),
			proxy:    repository.NewProxyConfigRepository(db),
			db:       db,
		}, nil
	case "file", "":
		repo, err := repository.NewFileRepository(cfg.Storage.DataDir, cfg.Storage.FileFormat)
		if err != nil {
			return storage{}, err
		}
		return storage{monitors: repo, proxy: repo}, nil
	default:
		return storage{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewFileSyncer(appConfig.Server.LogFile, appConfig.Server.LogRotate,
		appConfig.Server.LogMaxSizeMB, appConfig.Server.LogMaxBackups)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "monitor-service"))
	defer zapLogger.Sync()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			<-hup
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up storage
	store, err := openStorage(appConfig)
	if err != nil {
		zapLogger.Fatal("failed to open storage", zap.String("driver", appConfig.Storage.Driver), zap.Error(err))
	}
	zapLogger.Info("storage ready", zap.String("driver", appConfig.Storage.Driver))
	if store.db != nil {
		sqlDB, e := store.db.DB()
		if e != nil {
			zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(e))
		}
		defer sqlDB.Close()
	}

	// set up status sinks
	hub := publisher.NewHub(appConfig.Server.AllowedOrigins, zapLogger)
	sinks := []publisher.Publisher{hub}

	var kafkaWriter *kafka.Writer
	if appConfig.Kafka.Enabled() {
		kafkaWriter = infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
		sinks = append(sinks, publisher.NewKafkaPublisher(kafkaWriter))
		zapLogger.Info("publishing statuses to kafka", zap.String("topic", appConfig.Kafka.Topic))
	}
	if appConfig.Redis.Enabled() {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		sinks = append(sinks, publisher.NewRedisPublisher(redisClient, appConfig.Redis.StatusTTL))
		zapLogger.Info("connected to redis successfully")
	}
	if appConfig.Mail.Enabled() {
		mailSender := mail.NewMailSender(mail.SenderConfig{
			Email:    appConfig.Mail.Email,
			Password: appConfig.Mail.Password,
			Host:     appConfig.Mail.Host,
			Port:     appConfig.Mail.Port,
			FromName: appConfig.Mail.FromName,
			Timeout:  appConfig.Mail.SendTimeout,
		})
		sinks = append(sinks, publisher.NewAlertNotifier(mailSender, appConfig.Mail.AlertEmails,
			rate.Every(appConfig.Mail.AlertInterval), appConfig.Mail.AlertBurst, zapLogger))
	}
	dispatcher := publisher.NewDispatcher(publisher.NewMultiPublisher(sinks...),
		appConfig.Monitor.PublishQueueSize, appConfig.Monitor.PublishTimeout, zapLogger)
	dispatcher.Start()

	// set up monitoring core
	resolver := proxy.NewResolver(nil, appConfig.Monitor.ProbeTimeout, zapLogger)
	prober := probe.NewStrategy(
		probe.NewHTTPProber(appConfig.Monitor.ProbeTimeout),
		probe.NewICMPProber(probe.NewPing(appConfig.Monitor.ICMPPrivileged), appConfig.Monitor.ProbeTimeout),
		zapLogger,
	)
	monitorList := service.NewMonitorList()
	sched := scheduler.NewScheduler(resolver, prober, zapLogger,
		scheduler.WithMerger(monitorList),
		scheduler.WithDefaultFrequency(appConfig.Monitor.DefaultFrequency),
		scheduler.WithResultBuffer(appConfig.Monitor.ResultBuffer),
	)
	monitorService := service.NewMonitorService(monitorList, store.monitors, store.proxy, sched, resolver,
		func(m model.Monitor) {
			if !dispatcher.Enqueue(m) {
				zapLogger.Warn("status queue full, dropping update", zap.String("monitor_id", m.ID))
			}
		},
		func(id string) { dispatcher.Forget(id) },
		zapLogger)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = monitorService.Boot(bootCtx)
	bootCancel()
	if err != nil {
		zapLogger.Fatal("failed to load monitors", zap.Error(err))
	}

	// persist merged statuses periodically
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Monitor.FlushSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if e := monitorService.FlushStatuses(ctx); e != nil {
			zapLogger.Error("failed to flush monitor statuses", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for status flush", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	monitorHandler := handler.NewMonitorHandler(zapLogger, monitorService, hub)
	proxyHandler := handler.NewProxyHandler(zapLogger, monitorService)
	m := middleware.NewAuthMiddleware(appConfig.Auth.JWTSecret)
	routes.SetUpMonitorRoutes(r, monitorHandler, proxyHandler, m)

	corsHandler := cors.AllowAll().Handler
	if len(appConfig.Server.AllowedOrigins) > 0 {
		corsHandler = cors.Handler(cors.Options{
			AllowedOrigins: appConfig.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		})
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: corsHandler(r),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	grp, groupCtx := errgroup.WithContext(runCtx)
	grp.Go(func() error {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			return e
		}
		return nil
	})
	grp.Go(func() error {
		<-groupCtx.Done()
		zapLogger.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	if err = grp.Wait(); err != nil {
		zapLogger.Error("server stopped with error", zap.Error(err))
	}

	<-cronJob.Stop().Done()
	sched.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = monitorService.FlushStatuses(ctx); err != nil {
		zapLogger.Error("failed to flush monitor statuses", zap.Error(err))
	}
	dispatcher.Stop()

	var closeErr error
	closeErr = multierr.Append(closeErr, hub.Close())
	if kafkaWriter != nil {
		closeErr = multierr.Append(closeErr, kafkaWriter.Close())
	}
	if closeErr != nil {
		zapLogger.Error("failed to close status sinks", zap.Error(closeErr))
	}
	zapLogger.Info("server exiting")
}
