package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/server/http/dto"
)

// ClientHandler manages the client registry endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client payload"})
		return
	}

	client := clientFromRequest(req)
	if err := h.facade.CreateClient(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(*client))
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client payload"})
		return
	}

	client := clientFromRequest(req)
	client.ID = id
	if err := h.facade.UpdateClient(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(*client))
}

// FindByPhone handles GET /api/clients/by-phone/:phone.
func (h *ClientHandler) FindByPhone(c *gin.Context) {
	clients, err := h.facade.ClientsByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		response = append(response, toClientResponse(cl))
	}
	c.JSON(http.StatusOK, response)
}

func clientFromRequest(req dto.ClientRequest) *model.Client {
	return &model.Client{
		FullName:     req.FullName,
		TaxID:        req.TaxID,
		MobilePhone:  req.MobilePhone,
		HomePhone:    req.HomePhone,
		Email:        req.Email,
		Street:       req.Street,
		ExtNumber:    req.ExtNumber,
		Neighborhood: req.Neighborhood,
		Municipality: req.Municipality,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
	}
}

func toClientResponse(cl model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           cl.ID,
		FullName:     cl.FullName,
		TaxID:        cl.TaxID,
		MobilePhone:  cl.MobilePhone,
		HomePhone:    cl.HomePhone,
		Email:        cl.Email,
		Street:       cl.Street,
		ExtNumber:    cl.ExtNumber,
		Neighborhood: cl.Neighborhood,
		Municipality: cl.Municipality,
		State:        cl.State,
		Country:      cl.Country,
		PostalCode:   cl.PostalCode,
	}
}
