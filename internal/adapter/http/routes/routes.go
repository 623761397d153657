package routes

import (
	"time"

	_ "motomind/docs" // swagger spec registration
	"motomind/internal/adapter/http/handlers"
	"motomind/internal/adapter/http/middleware"
	"motomind/internal/domain/catalog"
	"motomind/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Records    usecase.IRecordUseCase
	Connection usecase.IConnectionUseCase
	Catalog    *catalog.Catalog
	Auth       *middleware.JWTManager
	Heartbeat  time.Duration
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, handlers.NewCatalogHandler(d.Catalog))

	authed := v1.Group("", middleware.RequireWorkshop(d.Auth))
	addRecordRoutes(authed, handlers.NewRecordHandler(d.Records))
	addConnectionRoutes(authed, handlers.NewConnectionHandler(d.Connection, d.Heartbeat))

	return router
}
