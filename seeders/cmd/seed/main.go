package main

import (
	"context"
	"flag"
	"log"

	"smart-gmao/internal/repositories"
	"smart-gmao/pkg/config"
	"smart-gmao/pkg/database/postgresql"
	"smart-gmao/pkg/logger"
	"smart-gmao/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runAdmin := flag.Bool("admin", false, "Создать администратора по умолчанию")
	runSamples := flag.Bool("samples", false, "Загрузить демонстрационное оборудование и тикеты")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -admin -samples)")

	flag.Parse()

	if !*runAdmin && !*runSamples && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -admin")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	appLogger := logger.NewLogger(cfg.Log.Level, "")
	defer appLogger.Sync()

	if err := postgresql.Migrate(cfg.Postgres.DSN, appLogger); err != nil {
		log.Fatalf("❌ Ошибка миграций: %v", err)
	}

	ctx := context.Background()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, appLogger)
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к БД: %v", err)
	}
	defer dbPool.Close()

	log.Println("======================================================")

	s := seeders.New(
		repositories.NewUserRepository(dbPool, appLogger),
		repositories.NewEquipmentRepository(dbPool, appLogger),
		repositories.NewTicketRepository(dbPool, appLogger),
		cfg.Seed,
		appLogger,
	)
	opts := seeders.Options{
		Admin:   *runAll || *runAdmin,
		Samples: *runAll || *runSamples,
	}
	if err := s.Run(ctx, opts); err != nil {
		log.Fatalf("❌ Ошибка сидирования: %v", err)
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
