package membership

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/antologiabox23-boop/antologia-pro/internal/api"
	"github.com/antologiabox23-boop/antologia-pro/internal/logger"
	"github.com/antologiabox23-boop/antologia-pro/internal/user"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// asOfDate resolves the optional as_of query parameter, defaulting to today.
func asOfDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return vigency.DateOnly(time.Now()), true
	}

	d, err := vigency.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid as_of date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

// MemberStatus godoc
// @Summary Vigency status for a member
// @Tags membership
// @Produce json
// @Param id path string true "User ID"
// @Param as_of query string false "Evaluation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} VigencyStatus
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /members/{id}/vigency [get]
func (h *Handler) MemberStatus(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	status, err := h.service.MemberStatus(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, ErrMissingCoverageWindow):
			logger.Errorf("Member %s has a payment without coverage dates", c.Param("id"))
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "inconsistent payment data"})
		default:
			logger.Errorf("Failed to classify member %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to classify member"})
		}
		return
	}

	c.JSON(http.StatusOK, status)
}

// Alerts godoc
// @Summary Members flagged for inactivity, most severe first
// @Tags membership
// @Produce json
// @Param as_of query string false "Evaluation date (YYYY-MM-DD), defaults to today"
// @Param threshold query int false "Days without a visit before flagging"
// @Success 200 {array} Alert
// @Failure 400 {object} api.ErrorResponse
// @Router /alerts [get]
func (h *Handler) Alerts(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	threshold := 0
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "threshold must be a positive integer"})
			return
		}
		threshold = v
	}

	alerts, err := h.service.Alerts(c.Request.Context(), asOf, threshold)
	if err != nil {
		logger.Errorf("Failed to compute inactivity alerts: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to compute alerts"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// Stats godoc
// @Summary Membership compliance overview
// @Tags membership
// @Produce json
// @Param as_of query string false "Evaluation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} Stats
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), asOf)
	if err != nil {
		logger.Errorf("Failed to build membership stats: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// NotifyInactive godoc
// @Summary Queue an inactivity reminder for a member
// @Tags membership
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} api.MessageResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /alerts/{id}/notify [post]
func (h *Handler) NotifyInactive(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	err := h.service.NotifyInactive(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, ErrNotEligible):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "member is not compliance eligible"})
		case errors.Is(err, ErrNoEmail):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "member has no email address"})
		default:
			logger.Errorf("Failed to queue inactivity reminder for %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to queue reminder"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "reminder queued"})
}
