package payment

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

func writeServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
	case errors.Is(err, ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "payment not found"})
	case errors.Is(err, vigency.ErrUnknownPaymentType):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "unknown payment type"})
	case errors.Is(err, vigency.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
	case errors.Is(err, ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start date must not be after end date"})
	default:
		logger.Errorf("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to " + action})
	}
}

// Record godoc
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RecordPaymentRequest true "Payment data"
// @Success 201 {object} Payment
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /payments [post]
func (h *Handler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "record payment")
		return
	}

	logger.Infof("Payment recorded: ID=%s, User=%s, Type=%s", p.ID, p.UserID, p.PaymentType)
	metrics.RecordPayment(string(p.PaymentType))

	c.JSON(http.StatusCreated, p)
}

// Update godoc
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body UpdatePaymentRequest true "Payment data"
// @Success 200 {object} Payment
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /payments/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err, "update payment")
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListByUser godoc
// @Summary List a member's payments, most recent first
// @Tags payments
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} Payment
// @Router /users/{id}/payments [get]
func (h *Handler) ListByUser(c *gin.Context) {
	payments, err := h.service.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "load payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// SuggestDates godoc
// @Summary Suggest payment/start/end dates for a member's next payment
// @Tags payments
// @Produce json
// @Param id path string true "User ID"
// @Param type query string true "Payment type"
// @Success 200 {object} vigency.Suggestion
// @Failure 400 {object} api.ErrorResponse
// @Router /users/{id}/payments/suggest [get]
func (h *Handler) SuggestDates(c *gin.Context) {
	suggestion, err := h.service.SuggestDates(c.Request.Context(), c.Param("id"), c.Query("type"))
	if err != nil {
		writeServiceError(c, err, "suggest payment dates")
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// Delete godoc
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /payments/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err, "delete payment")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "payment deleted"})
}

// Summarize godoc
// @Summary Income summary for a date range
// @Tags payments
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} Summary
// @Failure 400 {object} api.ErrorResponse
// @Router /payments/summary [get]
func (h *Handler) Summarize(c *gin.Context) {
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

	summary, err := h.service.Summarize(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, err, "summarize payments")
		return
	}

	c.JSON(http.StatusOK, summary)
}
