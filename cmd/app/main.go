package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"dinepos/cmd"
	"dinepos/internal/adapters/out/postgres/invoicerepo"
	"dinepos/internal/adapters/out/postgres/orderrepo"
	"dinepos/internal/adapters/out/postgres/settingsrepo"
	"dinepos/internal/adapters/out/postgres/tablerepo"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	dbConnectAttempts = 5
	dbConnectBackoff  = 5 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db := connectDB(configs, logger)
	migrateDB(db)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, reading configuration from the environment")
	}

	return cmd.Config{
		HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
		DBHost:      envOrDefault("DB_HOST", "localhost"),
		DBPort:      envOrDefault("DB_PORT", "5432"),
		DBUser:      envOrDefault("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      envOrDefault("DB_NAME", "dinepos"),
		DBSslMode:   envOrDefault("DB_SSLMODE", "disable"),
		CORSOrigins: os.Getenv("CORS_ORIGINS"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// connectDB opens the database with a bounded retry: the database container
// may still be starting when the process comes up.
func connectDB(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	var lastErr error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
			}
			if pingErr == nil {
				logger.Info("Connected to database", "host", configs.DBHost, "attempt", attempt)
				return db
			}
			err = pingErr
		}

		lastErr = err
		logger.Warn("Database connection failed, retrying",
			"attempt", attempt, "of", dbConnectAttempts, "error", err)
		time.Sleep(dbConnectBackoff)
	}

	log.Fatalf("Could not connect to database after %d attempts: %v", dbConnectAttempts, lastErr)
	return nil
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&tablerepo.TableDTO{},
		&orderrepo.TableOrderDTO{},
		&invoicerepo.InvoiceDTO{},
		&settingsrepo.KOTConfigDTO{},
		&settingsrepo.BillConfigDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins(configs.CORSOrigins),
	}))

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func corsOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}

	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
