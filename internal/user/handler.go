package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antologiabox23-boop/antologia-pro/internal/api"
	"github.com/antologiabox23-boop/antologia-pro/internal/logger"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Register a member
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Member data"
// @Success 201 {object} User
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /users [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "document already registered"})
		case errors.Is(err, vigency.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid birthdate, expected YYYY-MM-DD"})
		default:
			logger.Errorf("Failed to create user: %v", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create user"})
		}
		return
	}

	logger.Infof("User created: ID=%s, Name=%s", u.ID, u.Name)
	c.JSON(http.StatusCreated, u)
}

// Update godoc
// @Summary Update a member
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Member data"
// @Success 200 {object} User
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, vigency.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid birthdate, expected YYYY-MM-DD"})
		default:
			logger.Errorf("Failed to update user %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, u)
}

// Get godoc
// @Summary Get a member by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} User
// @Failure 404 {object} api.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, u)
}

// List godoc
// @Summary List members
// @Tags users
// @Produce json
// @Param active query bool false "Only active members"
// @Success 200 {array} User
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	var (
		users []User
		err   error
	)

	if c.Query("active") == "true" {
		users, err = h.service.ListActive(c.Request.Context())
	} else {
		users, err = h.service.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// Deactivate godoc
// @Summary Deactivate a member
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /users/{id}/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to deactivate user"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deactivated"})
}

// Delete godoc
// @Summary Delete a member and their history
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		logger.Errorf("Failed to delete user %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete user"})
		return
	}

	logger.Infof("User deleted: ID=%s", c.Param("id"))
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted"})
}
