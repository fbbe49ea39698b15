package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"tourcatalog/cmd"
	httpin "tourcatalog/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	apiSpec := loadAPISpec(configs.OpenAPIPath)

	server := httpin.NewServer(
		app.Catalog(),
		app.CreateUpdatePackageCommandHandler(),
		app.CreateDeletePackageCommandHandler(),
		app.CreatePurchasePackageCommandHandler(logger),
		app.CreateSearchPackagesQueryHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateExportPackagesReportQueryHandler(),
		apiSpec,
	)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	err := startWebServer(server, configs.HTTPPort)
	jobManager.StopAll()
	log.Fatalf("Web server stopped: %v", err)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		BackendBaseURL:         goDotEnvVariable("BACKEND_BASE_URL"),
		SessionFile:            goDotEnvVariable("SESSION_FILE"),
		OpenAPIPath:            goDotEnvVariable("OPENAPI_PATH"),
		CatalogRefreshSchedule: goDotEnvVariable("CATALOG_REFRESH_SCHEDULE"),
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

func loadAPISpec(path string) *openapi3.T {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	if err := spec.Validate(loader.Context); err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}
	return spec
}

func startWebServer(server *httpin.Server, port string) error {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	return e.Start(fmt.Sprintf("0.0.0.0:%s", port))
}
