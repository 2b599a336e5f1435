package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/server/http/dto"
	"github.com/carsline/api/internal/usecase"
)

// AuthHandler processes sign-in and user administration.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	usr, token, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: toUserResponse(*usr)})
}

// CreateUser handles POST /api/auth/users.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user payload"})
		return
	}

	usr, err := h.facade.CreateUser(c.Request.Context(), CurrentUserID(c), usecase.CreateUserInput{
		FullName: req.FullName,
		Username: req.Username,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*usr))
}

// Users handles GET /api/auth/users.
func (h *AuthHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// Roles handles GET /api/auth/roles.
func (h *AuthHandler) Roles(c *gin.Context) {
	roles, err := h.facade.Roles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		response = append(response, dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	c.JSON(http.StatusOK, response)
}

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		RoleID:    u.RoleID,
		RoleName:  u.RoleName,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		Active:    u.Active,
	}
}
