package main

import (
	"fmt"
	"os"
	"time"

	"fulfilment/cmd"
	httpadapter "fulfilment/internal/adapters/in/http"
	"fulfilment/internal/adapters/in/http/middleware"
	"fulfilment/internal/adapters/out/postgres/catalogrepo"
	"fulfilment/internal/adapters/out/postgres/orderrepo"
	"fulfilment/internal/jobs"
	"fulfilment/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := logging.Init("fulfilment", configs.LogFilePath)

	db := mustOpenDB(configs)

	root := cmd.NewCompositionRoot(configs, db, logger)
	defer root.Close()

	jobManager := jobs.NewJobManager(root.CreateGetDegradedOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		PredictServiceURL:        goDotEnvVariable("PREDICT_SERVICE_URL"),
		SubstitutionServiceURL:   goDotEnvVariable("SUBSTITUTION_SERVICE_URL"),
		DecisionServiceURL:       goDotEnvVariable("DECISION_SERVICE_URL"),
		GatewayTimeout:           gatewayTimeout(),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderFinalizedTopic: goDotEnvVariable("KAFKA_ORDER_FINALIZED_TOPIC"),
		LogFilePath:              goDotEnvVariable("LOG_FILE_PATH"),
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

func gatewayTimeout() time.Duration {
	raw := goDotEnvVariable("GATEWAY_TIMEOUT")
	if raw == "" {
		return 5 * time.Second
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid GATEWAY_TIMEOUT %q: %v", raw, err)
	}
	return timeout
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&catalogrepo.WarehouseItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Metrics())

	server := httpadapter.NewServer(
		root.CreateProcessOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
