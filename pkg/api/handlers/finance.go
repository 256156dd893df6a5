package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/api/errors"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/metrics"
	"github.com/jordanlanch/affiliatedb/pkg/models"
	"github.com/jordanlanch/affiliatedb/pkg/reporting"
	"github.com/jordanlanch/affiliatedb/pkg/withdrawal"
)

// FinanceHandler handles balance, statement, withdrawal and report endpoints
type FinanceHandler struct {
	affiliates  *affiliate.Service
	ledger      *ledger.Service
	withdrawals *withdrawal.Service
	reports     *reporting.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(affiliates *affiliate.Service, led *ledger.Service, wd *withdrawal.Service, rep *reporting.Service, m *metrics.Metrics) *FinanceHandler {
	return &FinanceHandler{
		affiliates:  affiliates,
		ledger:      led,
		withdrawals: wd,
		reports:     rep,
		metrics:     m,
		validator:   validator.New(),
	}
}

func toWithdrawalResponse(wr *ent.WithdrawalRequest) models.WithdrawalResponse {
	return models.WithdrawalResponse{
		ID:            wr.ID,
		AffiliateID:   wr.AffiliateID,
		Amount:        wr.Amount,
		Status:        string(wr.Status),
		PaymentMethod: wr.PaymentMethod,
		AdminNotes:    wr.AdminNotes,
		RequestedAt:   wr.RequestedAt,
		ProcessedAt:   wr.ProcessedAt,
	}
}

// GetBalance returns the authenticated affiliate's balance snapshot
func (h *FinanceHandler) GetBalance(c echo.Context) error {
	aff, ok := resolveOwnAffiliate(c, h.affiliates)
	if !ok {
		return nil
	}

	snap, err := h.ledger.GetBalance(c.Request().Context(), aff.ID)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// ListTransactions returns the authenticated affiliate's statement
func (h *FinanceHandler) ListTransactions(c echo.Context) error {
	aff, ok := resolveOwnAffiliate(c, h.affiliates)
	if !ok {
		return nil
	}

	filter := ledger.TransactionFilter{
		Type: c.QueryParam("type"),
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if from, err := time.Parse(time.RFC3339, c.QueryParam("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.RFC3339, c.QueryParam("to")); err == nil {
		filter.To = &to
	}

	txns, total, err := h.ledger.ListTransactions(c.Request().Context(), aff.ID, filter)
	if err != nil {
		return errors.DomainError(c, err)
	}

	resp := models.TransactionListResponse{
		Transactions: make([]models.TransactionResponse, 0, len(txns)),
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, models.TransactionResponse{
			ID:              txn.ID,
			Type:            string(txn.Type),
			Amount:          txn.Amount,
			Description:     txn.Description,
			ReferenceID:     txn.ReferenceID,
			TransactionDate: txn.TransactionDate,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateWithdrawal opens a withdrawal request for the authenticated affiliate
func (h *FinanceHandler) CreateWithdrawal(c echo.Context) error {
	aff, ok := resolveOwnAffiliate(c, h.affiliates)
	if !ok {
		return nil
	}

	var req models.WithdrawalCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	wr, err := h.withdrawals.CreateRequest(c.Request().Context(), aff.ID, req.Amount, req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, toWithdrawalResponse(wr))
}

// ListWithdrawals lists withdrawal requests. Admins see everything and may
// filter by affiliate; affiliates only see their own.
func (h *FinanceHandler) ListWithdrawals(c echo.Context) error {
	filter := withdrawal.RequestFilter{
		Status: c.QueryParam("status"),
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	role, _ := c.Get("user_role").(string)
	if role == "admin" || role == "manager" {
		filter.AffiliateID, _ = strconv.Atoi(c.QueryParam("affiliate_id"))
	} else {
		aff, ok := resolveOwnAffiliate(c, h.affiliates)
		if !ok {
			return nil
		}
		filter.AffiliateID = aff.ID
	}

	wrs, total, err := h.withdrawals.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return errors.DomainError(c, err)
	}

	resp := models.WithdrawalListResponse{
		Withdrawals: make([]models.WithdrawalResponse, 0, len(wrs)),
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	for _, wr := range wrs {
		resp.Withdrawals = append(resp.Withdrawals, toWithdrawalResponse(wr))
	}
	return c.JSON(http.StatusOK, resp)
}

// ProcessWithdrawal applies an admin decision to a withdrawal request
func (h *FinanceHandler) ProcessWithdrawal(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}
	withdrawalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.WithdrawalProcessRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	wr, _, err := h.withdrawals.ProcessRequest(c.Request().Context(), adminID, withdrawalID, req.Status, req.AdminNotes)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if wr.Status == withdrawalrequest.StatusPaid && h.metrics != nil {
		h.metrics.WithdrawalsSettled.Inc()
	}
	return c.JSON(http.StatusOK, toWithdrawalResponse(wr))
}

// PostAdjustment posts a manual ledger correction on behalf of an admin
func (h *FinanceHandler) PostAdjustment(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.AdjustmentRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	txn, err := h.ledger.Adjust(c.Request().Context(), adminID, req.AffiliateID, req.Amount, req.Reason)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, txn)
}

// GetReport returns the financial report for a period
func (h *FinanceHandler) GetReport(c echo.Context) error {
	affiliateID, _ := strconv.Atoi(c.QueryParam("affiliate_id"))

	var from, to time.Time
	if v, err := time.Parse(time.RFC3339, c.QueryParam("from")); err == nil {
		from = v
	}
	if v, err := time.Parse(time.RFC3339, c.QueryParam("to")); err == nil {
		to = v
	}

	report, err := h.reports.GenerateFinancialReport(c.Request().Context(), affiliateID, from, to)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
