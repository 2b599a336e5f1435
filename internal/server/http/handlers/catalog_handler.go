package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carsline/api/internal/server/http/dto"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// ServiceTypes handles GET /api/catalog/service-types.
func (h *CatalogHandler) ServiceTypes(c *gin.Context) {
	types, err := h.facade.ServiceTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ServiceTypeResponse, 0, len(types))
	for _, st := range types {
		response = append(response, dto.ServiceTypeResponse{
			ID:          st.ID,
			Name:        st.Name,
			Description: st.Description,
			BasePrice:   st.BasePrice,
		})
	}
	c.JSON(http.StatusOK, response)
}

// ExtraServices handles GET /api/catalog/extra-services.
func (h *CatalogHandler) ExtraServices(c *gin.Context) {
	services, err := h.facade.ExtraServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ExtraServiceResponse, 0, len(services))
	for _, es := range services {
		response = append(response, dto.ExtraServiceResponse{
			ID:          es.ID,
			Name:        es.Name,
			Description: es.Description,
			Price:       es.Price,
			Category:    es.Category,
		})
	}
	c.JSON(http.StatusOK, response)
}
