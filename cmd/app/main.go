package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orgtrack/cmd"
	"orgtrack/internal/adapters/out/postgres/carrierrepo"
	"orgtrack/internal/adapters/out/postgres/checklistrepo"
	"orgtrack/internal/adapters/out/postgres/shipmentrepo"
	"orgtrack/internal/adapters/out/postgres/transportrepo"
	"orgtrack/internal/adapters/out/postgres/userrepo"
	"orgtrack/internal/adapters/out/postgres/vehiclerepo"
)

const startupTimeout = 30 * time.Second

func main() {
	configs := getConfigs()

	gormDB, err := connectPostgres(configs)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}

	mongoDB, err := connectMongo(configs)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(configs, gormDB, mongoDB, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	if err := root.EnsureDocumentIndexes(startupTimeout); err != nil {
		log.Fatalf("document indexes: %v", err)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		MongoURI:         goDotEnvVariable("MONGO_URI"),
		MongoDBName:      goDotEnvVariable("MONGO_DB_NAME"),
		OpenRouteBaseURL: goDotEnvVariable("OPENROUTE_BASE_URL"),
		OpenRouteAPIKey:  goDotEnvVariable("OPENROUTE_API_KEY"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		JWTTTL:           durationEnvVariable("JWT_TTL", 4*time.Hour),
		QRCredentialTTL:  durationEnvVariable("QR_CREDENTIAL_TTL", 15*time.Minute),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func connectPostgres(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&carrierrepo.CarrierDTO{},
		&vehiclerepo.VehicleDTO{},
		&transportrepo.TransportTypeDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.AssignmentDTO{},
		&shipmentrepo.CargoDTO{},
		&checklistrepo.PreTripChecklistDTO{},
		&checklistrepo.PostTripChecklistDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func connectMongo(configs cmd.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(configs.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client.Database(configs.MongoDBName), nil
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
