package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antologiabox23-boop/antologia-pro/internal/api"
	"github.com/antologiabox23-boop/antologia-pro/internal/logger"
)

type Handler struct {
	adminUser     string
	adminPassword string
	jwtSecret     string
}

func NewHandler(adminUser, adminPassword, jwtSecret string) *Handler {
	return &Handler{
		adminUser:     adminUser,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	Role         string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// Login godoc
// @Summary Staff login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Username != h.adminUser || !CheckPassword(h.adminPassword, req.Password) {
		logger.Infof("Rejected login attempt for %q", req.Username)
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
		return
	}

	accessToken, refreshToken, err := GenerateTokens(req.Username, "admin", h.jwtSecret)
	if err != nil {
		logger.Errorf("Failed to issue tokens: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Username:     req.Username,
		Role:         "admin",
	})
}

// Refresh godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	accessToken, _, err := RefreshAccessToken(req.RefreshToken, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{AccessToken: accessToken})
}
