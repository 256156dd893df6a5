package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/affiliatedb/pkg/api/errors"
	"github.com/jordanlanch/affiliatedb/pkg/attribution"
	"github.com/jordanlanch/affiliatedb/pkg/metrics"
	"github.com/jordanlanch/affiliatedb/pkg/models"
)

// PaymentsHandler consumes normalized payment-confirmed events. Gateway
// webhook parsing and signature verification happen upstream; this endpoint
// only receives the already-verified {order_id, referral_code} event.
type PaymentsHandler struct {
	attribution *attribution.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewPaymentsHandler creates a new payments handler
func NewPaymentsHandler(attr *attribution.Service, m *metrics.Metrics) *PaymentsHandler {
	return &PaymentsHandler{
		attribution: attr,
		metrics:     m,
		validator:   validator.New(),
	}
}

// PaymentConfirmed attributes the confirmed order to its referring affiliate
func (h *PaymentsHandler) PaymentConfirmed(c echo.Context) error {
	var req models.PaymentConfirmedRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	summary, err := h.attribution.AttributeSale(c.Request().Context(), req.OrderID, req.ReferralCode)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if !summary.AlreadyAttributed && h.metrics != nil {
		h.metrics.CommissionsPosted.Inc()
	}
	return c.JSON(http.StatusOK, summary)
}
