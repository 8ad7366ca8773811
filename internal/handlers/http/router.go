package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/docgestor-backend/docs"
	"github.com/rafabene/docgestor-backend/internal/domain/ports"
	"github.com/rafabene/docgestor-backend/internal/handlers/dto"
	"github.com/rafabene/docgestor-backend/internal/handlers/middleware"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/i18n"
)

// RouterConfig agrupa o que o roteador precisa da configuração
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins string
	SwaggerEnabled bool
}

// Handlers agrupa os handlers registrados nas rotas
type Handlers struct {
	Employee *EmployeeHandler
	Auth     *AuthHandler
	System   *SystemHandler
}

// NewRouter monta o engine Gin com middlewares e rotas
func NewRouter(cfg RouterConfig, handlers Handlers, i18nService *i18n.Service, logger ports.Logger) *gin.Engine {
	dto.RegisterValidatorTagNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/", handlers.System.Home)
	router.GET("/init_db", handlers.System.InitDB)

	api := router.Group("/api")
	{
		employees := api.Group("/employees")
		{
			employees.POST("", handlers.Employee.CreateEmployee)
			employees.GET("", handlers.Employee.ListEmployees)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Auth.Login)
		}
	}

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}
