package routes

import (
	"motomind/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRecords    = "/records"
	PathConnection = "/connection"
	PathCatalog    = "/catalog"
)

func addRecordRoutes(rg *gin.RouterGroup, h *handlers.RecordHandler) {
	records := rg.Group(PathRecords)
	{
		records.GET("", h.ListRecords)
		records.POST("", h.CreateRecord)
		records.GET("/:id", h.GetRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.POST("/:id/finalize", h.FinalizeRecord)
		records.POST("/:id/send", h.SendBill)
	}
}

func addConnectionRoutes(rg *gin.RouterGroup, h *handlers.ConnectionHandler) {
	conn := rg.Group(PathConnection)
	{
		conn.GET("", h.GetStatus)
		conn.POST("/connect", h.Connect)
		conn.POST("/cancel", h.CancelPairing)
		conn.GET("/events", h.Events)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathCatalog, h.GetCatalog)
}
