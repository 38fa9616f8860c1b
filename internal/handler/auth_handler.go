package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"apjatelpmo/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		ID       string `json:"id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, vendor, err := h.auth.Login(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid vendor id or password"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "login backend unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  vendor,
	})
}
