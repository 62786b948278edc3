package attendance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antologiabox23-boop/antologia-pro/internal/api"
	"github.com/antologiabox23-boop/antologia-pro/internal/logger"
	"github.com/antologiabox23-boop/antologia-pro/internal/metrics"
	"github.com/antologiabox23-boop/antologia-pro/internal/user"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Mark godoc
// @Summary Mark attendance for a member on a date
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body MarkRequest true "Attendance mark"
// @Success 200 {object} Record
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /attendance [post]
func (h *Handler) Mark(c *gin.Context) {
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	rec, err := h.service.Mark(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, vigency.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		default:
			logger.Errorf("Failed to mark attendance: %v", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to mark attendance"})
		}
		return
	}

	metrics.RecordAttendanceMark(string(rec.Status))
	c.JSON(http.StatusOK, rec)
}

// MarkAll godoc
// @Summary Mark all active members present on a date
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body MarkAllRequest true "Date"
// @Success 200 {object} api.MessageResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /attendance/mark-all [post]
func (h *Handler) MarkAll(c *gin.Context) {
	var req MarkAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := vigency.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	marked, err := h.service.MarkAllPresent(c.Request.Context(), date)
	if err != nil {
		logger.Errorf("Failed to mark all present on %s: %v", req.Date, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to mark attendance"})
		return
	}

	logger.Infof("Marked %d members present on %s", marked, req.Date)
	c.JSON(http.StatusOK, gin.H{"marked": marked})
}

// ListByDate godoc
// @Summary List attendance marks for a date
// @Tags attendance
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} Record
// @Failure 400 {object} api.ErrorResponse
// @Router /attendance [get]
func (h *Handler) ListByDate(c *gin.Context) {
	date, err := vigency.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	records, err := h.service.ListByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// ListByUser godoc
// @Summary List a member's attendance history, most recent first
// @Tags attendance
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} Record
// @Router /users/{id}/attendance [get]
func (h *Handler) ListByUser(c *gin.Context) {
	records, err := h.service.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Report godoc
// @Summary Attendance report for a date range
// @Tags attendance
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} Report
// @Failure 400 {object} api.ErrorResponse
// @Router /attendance/report [get]
func (h *Handler) Report(c *gin.Context) {
	from, err := vigency.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := vigency.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
		return
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from must not be after to"})
		return
	}

	report, err := h.service.Report(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
