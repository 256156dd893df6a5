package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/api/errors"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/models"
)

// AffiliateHandler handles affiliate directory endpoints
type AffiliateHandler struct {
	affiliates *affiliate.Service
	baseURL    string
	validator  *validator.Validate
}

// NewAffiliateHandler creates a new affiliate handler
func NewAffiliateHandler(affiliates *affiliate.Service, baseURL string) *AffiliateHandler {
	return &AffiliateHandler{
		affiliates: affiliates,
		baseURL:    baseURL,
		validator:  validator.New(),
	}
}

func toAffiliateResponse(aff *ent.Affiliate) models.AffiliateResponse {
	return models.AffiliateResponse{
		ID:             aff.ID,
		UserID:         aff.UserID,
		ReferralCode:   aff.ReferralCode,
		CommissionRate: aff.CommissionRate,
		IsGlobal:       aff.IsGlobal,
		RequestStatus:  string(aff.RequestStatus),
		Reason:         aff.Reason,
		CreatedAt:      aff.CreatedAt,
	}
}

// RequestAffiliation enrolls the authenticated user into the program
func (h *AffiliateHandler) RequestAffiliation(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.AffiliationRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}
	if req.CommissionRate == 0 {
		req.CommissionRate = 0.05
	}

	aff, err := h.affiliates.RequestAffiliation(c.Request().Context(), userID, req.CommissionRate, req.IsGlobal)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, toAffiliateResponse(aff))
}

// GetAffiliateLink returns the authenticated affiliate's referral link
func (h *AffiliateHandler) GetAffiliateLink(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	link, err := h.affiliates.AffiliateLink(c.Request().Context(), userID, h.baseURL)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"link": link})
}

// ListMySales returns the authenticated affiliate's attributed sales
func (h *AffiliateHandler) ListMySales(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	sales, err := h.affiliates.ListSales(c.Request().Context(), userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	resp := make([]models.SaleResponse, 0, len(sales))
	for _, s := range sales {
		resp = append(resp, models.SaleResponse{
			ID:          s.ID,
			AffiliateID: s.AffiliateID,
			OrderID:     s.OrderID,
			Commission:  s.Commission,
			CreatedAt:   s.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// ListRequests lists affiliate records for admins, filtered by status
func (h *AffiliateHandler) ListRequests(c echo.Context) error {
	affs, err := h.affiliates.ListRequests(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.DomainError(c, err)
	}

	resp := make([]models.AffiliateResponse, 0, len(affs))
	for _, aff := range affs {
		resp = append(resp, toAffiliateResponse(aff))
	}
	return c.JSON(http.StatusOK, resp)
}

// ProcessRequest applies an admin decision to an affiliation request
func (h *AffiliateHandler) ProcessRequest(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}
	affiliateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.ProcessAffiliationRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	aff, err := h.affiliates.ProcessRequest(c.Request().Context(), adminID, affiliateID, *req.Approve, req.Reason)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, toAffiliateResponse(aff))
}

// UpsertProductTerms sets per-product commission terms for an affiliate
func (h *AffiliateHandler) UpsertProductTerms(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}
	affiliateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.ProductTermsRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	terms, err := h.affiliates.UpsertProductTerms(c.Request().Context(), adminID, affiliateID, productID,
		req.CommissionType, req.CommissionValue, req.Status)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, terms)
}

// resolveOwnAffiliate resolves the authenticated user's affiliate record or
// writes the error response.
func resolveOwnAffiliate(c echo.Context, affiliates *affiliate.Service) (*ent.Affiliate, bool) {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		_ = errors.UnauthorizedError(c, "missing user")
		return nil, false
	}
	aff, err := affiliates.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		if domain.IsNotFound(err) {
			_ = errors.NotFoundError(c, "affiliate")
		} else {
			_ = errors.DomainError(c, err)
		}
		return nil, false
	}
	return aff, true
}
