// @title			Doc-Gestor RH API
// @version		1.0
// @description	Cadastro e listagem de funcionários. O login é simulado e não autentica.
// @BasePath		/
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docgestor-backend/docs"
	httphandlers "github.com/rafabene/docgestor-backend/internal/handlers/http"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/auth"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/config"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/i18n"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/logging"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/docgestor-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger, err := logging.NewZapLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting doc-gestor rh backend",
		"env", cfg.Env,
		"version", docs.SwaggerInfo.Version,
	)

	// Conectar ao banco de dados
	db, err := gormdb.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	employeeRepo := gormdb.NewEmployeeRepository(db)
	uow := gormdb.NewUnitOfWork(db)
	migrator := gormdb.NewMigrator(db)

	// Inicializar services
	employeeService := services.NewEmployeeService(employeeRepo, uow, logger)
	authService := services.NewAuthService(auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry), logger)
	schemaService := services.NewSchemaService(migrator, logger)

	// Criar tabelas se não existirem
	if err := schemaService.EnsureSchema(context.Background()); err != nil {
		log.Fatal(err)
	}

	if cfg.Database.SeedSample {
		created, err := employeeService.SeedSampleEmployees(context.Background())
		if err != nil {
			logger.Error("failed to seed sample employees", "error", err)
			log.Fatal(err)
		}
		logger.Info("sample employees seeded", "created", created)
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(
		httphandlers.RouterConfig{
			BaseURL:        cfg.Server.BaseURL,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			SwaggerEnabled: cfg.Swagger.Enabled,
		},
		httphandlers.Handlers{
			Employee: httphandlers.NewEmployeeHandler(employeeService),
			Auth:     httphandlers.NewAuthHandler(authService),
			System:   httphandlers.NewSystemHandler(schemaService),
		},
		i18nService,
		logger,
	)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
