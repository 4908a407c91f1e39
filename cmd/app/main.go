package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ecommerce/cmd"
	httpadapter "ecommerce/internal/adapters/in/http"
	"ecommerce/internal/adapters/out/postgres/customerrepo"
	"ecommerce/internal/adapters/out/postgres/orderrepo"
	"ecommerce/internal/adapters/out/postgres/productrepo"
	"ecommerce/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderSchedule,
		configs.StaleOrderMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		StaleOrderSchedule: goDotEnvVariable("STALE_ORDER_SCHEDULE"),
		StaleOrderMaxAge:   parseDuration(goDotEnvVariable("STALE_ORDER_MAX_AGE")),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration %q: %v", value, err)
	}
	return duration
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateUpdateCustomerCommandHandler(),
		app.CreateDeleteCustomerCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllCustomersQueryHandler(),
		app.CreateGetAllProductsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
