package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"dispatch/cmd"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if configs.AssignJobEnabled {
		jobManager := app.CreateJobManager()
		if startErr := jobManager.StartAll(); startErr != nil {
			log.Fatalf("Failed to start background jobs: %v", startErr)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; the environment and defaults still apply.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:         envOr("HTTP_PORT", cmd.DefaultHTTPPort),
		DeliveryDuration: deliveryDurationFromEnv(),
		DriverNames:      driverNamesFromEnv(),
		AssignJobEnabled: assignJobEnabledFromEnv(),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func deliveryDurationFromEnv() time.Duration {
	raw := os.Getenv("DELIVERY_DURATION_MINUTES")
	if raw == "" {
		return cmd.DefaultDeliveryDuration
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Fatalf("Invalid DELIVERY_DURATION_MINUTES %q", raw)
	}
	return time.Duration(minutes) * time.Minute
}

func driverNamesFromEnv() []string {
	raw := os.Getenv("DRIVER_NAMES")
	if raw == "" {
		return cmd.DefaultDriverNames()
	}

	names := make([]string, 0)
	for _, name := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		log.Fatalf("DRIVER_NAMES %q contains no names", raw)
	}
	return names
}

func assignJobEnabledFromEnv() bool {
	raw := os.Getenv("ASSIGN_JOB_ENABLED")
	if raw == "" {
		return true
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid ASSIGN_JOB_ENABLED %q", raw)
	}
	return enabled
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
