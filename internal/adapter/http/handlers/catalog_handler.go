package handlers

import (
	"net/http"

	response "motomind/internal/adapter/http/dto/response"
	"motomind/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// GetCatalog godoc
// @Summary Parts, services and bike models offered by the workshop
// @Tags catalog
// @Produce json
// @Success 200 {object} response.CatalogResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog))
}
