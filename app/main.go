// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-gmao/internal/listeners"
	"smart-gmao/internal/repositories"
	"smart-gmao/internal/routes"
	"smart-gmao/pkg/broker"
	"smart-gmao/pkg/config"
	"smart-gmao/pkg/customvalidator"
	"smart-gmao/pkg/database/postgresql"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/eventbus"
	"smart-gmao/pkg/filestorage"
	applogger "smart-gmao/pkg/logger"
	appmiddleware "smart-gmao/pkg/middleware"
	"smart-gmao/pkg/service"
	"smart-gmao/pkg/utils"
	"smart-gmao/pkg/websocket"
	"smart-gmao/seeders"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))
	e.Use(appmiddleware.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 3. Файлы и хранилище
	files, err := filestorage.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("не удалось подготовить директорию загрузок", zap.Error(err), zap.String("dir", cfg.Upload.Dir))
	}
	e.Static("/uploads", cfg.Upload.Dir)

	healthChecks := map[string]routes.HealthCheck{}
	var repos routes.Repositories

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		if cfg.Postgres.RunMigrations {
			if err := postgresql.Migrate(cfg.Postgres.DSN, logger); err != nil {
				logger.Fatal("не удалось применить миграции", zap.Error(err))
			}
		}
		dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
		if err != nil {
			logger.Fatal("не удалось подключиться к PostgreSQL", zap.Error(err))
		}
		defer dbConn.Close()

		repos = routes.Repositories{
			Users:      repositories.NewUserRepository(dbConn, logger),
			Equipments: repositories.NewEquipmentRepository(dbConn, logger),
			Tickets:    repositories.NewTicketRepository(dbConn, logger),
		}
		healthChecks["postgres"] = dbConn.Ping
	case config.StorageMemory:
		logger.Warn("Используется хранилище в памяти, данные будут потеряны при перезапуске")
		repos = routes.Repositories{
			Users:      repositories.NewMemoryUserRepository(),
			Equipments: repositories.NewMemoryEquipmentRepository(),
			Tickets:    repositories.NewMemoryTicketRepository(),
		}
	default:
		logger.Fatal("неизвестный драйвер хранилища", zap.String("driver", cfg.Storage.Driver))
	}

	// 4. Кеш для блокировки входа
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		defer redisClient.Close()

		repos.Cache = repositories.NewRedisCacheRepository(redisClient)
		healthChecks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	} else {
		repos.Cache = repositories.NewMemoryCacheRepository()
	}

	// 5. Сервисы и события
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, logger)
	bus := eventbus.New(logger)

	var publisher broker.Publisher
	if cfg.Broker.URL != "" {
		amqpPublisher := broker.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange, logger)
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}
	listeners.NewTicketAuditListener(publisher, logger).Register(bus)

	hub := websocket.NewHub(logger.Named("ws"))
	go hub.Run(ctx)
	listeners.NewTicketFeedListener(hub, logger).Register(bus)

	// 6. Начальные данные
	seeder := seeders.New(repos.Users, repos.Equipments, repos.Tickets, cfg.Seed, logger)
	if err := seeder.Run(ctx, seeders.Options{Admin: true, Samples: cfg.Seed.SampleData}); err != nil {
		logger.Fatal("ошибка начального заполнения данных", zap.Error(err))
	}

	// 7. Роуты
	routes.InitRouter(e, &routes.Dependencies{
		Repos:        repos,
		JWT:          jwtSvc,
		Bus:          bus,
		Files:        files,
		Hub:          hub,
		Config:       cfg,
		HealthChecks: healthChecks,
		Loggers: &routes.Loggers{
			Main:      logger,
			Auth:      logger.Named("auth"),
			Equipment: logger.Named("equipment"),
			Ticket:    logger.Named("ticket"),
		},
	})

	// 8. Запуск и остановка
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("🚀 Сервер запущен", zap.String("addr", addr), zap.String("storage", cfg.Storage.Driver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	bus.Wait()
}
