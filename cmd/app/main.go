package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sc-Mae/squad-service/internal/config"
	"github.com/Sc-Mae/squad-service/internal/repository"
	"github.com/Sc-Mae/squad-service/internal/repository/memory"
	"github.com/Sc-Mae/squad-service/internal/repository/postgres"
	httpTransport "github.com/Sc-Mae/squad-service/internal/transport/http"
	"github.com/Sc-Mae/squad-service/internal/transport/http/handler"
	"github.com/Sc-Mae/squad-service/internal/usecase"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	// Инициализируем хранилище
	var (
		squadRepo  repository.SquadRepository
		memberRepo repository.MemberRepository
		statsRepo  repository.StatisticsRepository
		txManager  repository.TransactionManager
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.GetDSN())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		log.Println("Successfully connected to database")

		if err := runMigrations(cfg.GetDSN()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		log.Println("Migrations applied successfully")

		squadRepo = postgres.NewSquadRepository(pool)
		memberRepo = postgres.NewMemberRepository(pool)
		statsRepo = postgres.NewStatisticsRepository(pool)
		txManager = postgres.NewTransactionManager(pool)

	case config.StorageMemory:
		log.Println("Using in-memory storage, data will not be persisted")

		store := memory.NewStore()
		squadRepo = memory.NewSquadRepository(store)
		memberRepo = memory.NewMemberRepository(store)
		statsRepo = memory.NewStatisticsRepository(store)
		txManager = memory.NewTransactionManager()
	}

	// Инициализируем use cases
	squadUseCase := usecase.NewSquadUseCase(squadRepo, memberRepo, txManager)
	memberUseCase := usecase.NewMemberUseCase(memberRepo, squadRepo)
	statsUseCase := usecase.NewStatisticsUseCase(statsRepo)
	exportUseCase := usecase.NewExportUseCase(squadUseCase)

	// Импортируем стартовый документ с отрядами, если задан
	if cfg.SeedFile != "" {
		if err := importSeedFile(ctx, squadUseCase, cfg.SeedFile); err != nil {
			// Ошибка импорта не валит сервис
			slog.Error("failed to import seed file", "file", cfg.SeedFile, "error", err)
		}
	}

	// Инициализируем handlers
	squadHandler := handler.NewSquadHandler(squadUseCase)
	memberHandler := handler.NewMemberHandler(memberUseCase)
	statsHandler := handler.NewStatisticsHandler(statsUseCase)
	exportHandler := handler.NewExportHandler(exportUseCase)
	healthHandler := handler.NewHealthHandler()

	// Создаем роутер
	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		SquadHandler:      squadHandler,
		MemberHandler:     memberHandler,
		StatisticsHandler: statsHandler,
		ExportHandler:     exportHandler,
		HealthHandler:     healthHandler,
		AdminToken:        cfg.AdminToken,
	})

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// setupLogger настраивает уровень slog по конфигурации
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

// importSeedFile загружает отряды из JSON-файла при старте
func importSeedFile(ctx context.Context, squadUseCase *usecase.SquadUseCase, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	count, err := squadUseCase.ImportSquads(ctx, f)
	if err != nil {
		return err
	}

	log.Printf("Imported %d squads from %s", count, path)
	return nil
}

// Применяем миграции базы данных
func runMigrations(dsn string) error {
	m, err := migrate.New(
		"file://migrations",
		dsn,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
