package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/affiliatedb/ent"
	entaffiliate "github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/enttest"
	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/attribution"
	"github.com/jordanlanch/affiliatedb/pkg/audit"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
	"github.com/jordanlanch/affiliatedb/pkg/orders"
)

func setupPaymentsTest(t *testing.T) (*PaymentsHandler, *ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")

	log := logger.New("error", "text")
	auditSvc := audit.NewService(client)
	affiliates := affiliate.NewService(client, auditSvc, log)
	ledgerSvc := ledger.NewService(client, nil, auditSvc, log)
	orderSvc := orders.NewService(client)
	attributionSvc := attribution.NewService(client, affiliates, orderSvc, ledgerSvc, auditSvc, log)

	handler := NewPaymentsHandler(attributionSvc, nil)
	return handler, client, func() { client.Close() }
}

func seedAttributableOrder(t *testing.T, client *ent.Client) (*ent.Affiliate, *ent.Order) {
	ctx := context.Background()

	aff, err := client.Affiliate.
		Create().
		SetUserID(1).
		SetReferralCode("REFCAFE0001").
		SetCommissionRate(0.10).
		SetIsGlobal(true).
		SetRequestStatus(entaffiliate.RequestStatusApproved).
		Save(ctx)
	require.NoError(t, err)

	o, err := client.Order.
		Create().
		SetUserID(2).
		SetTotal(100.0).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.OrderItem.
		Create().
		SetOrderID(o.ID).
		SetProductID(1).
		SetPrice(100.0).
		SetQuantity(1).
		Save(ctx)
	require.NoError(t, err)

	return aff, o
}

func postPaymentConfirmed(handler *PaymentsHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirmed", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler.PaymentConfirmed(c)
	return rec
}

func TestPaymentConfirmed(t *testing.T) {
	t.Run("Success - Attributes order and credits commission", func(t *testing.T) {
		handler, client, cleanup := setupPaymentsTest(t)
		defer cleanup()

		_, order := seedAttributableOrder(t, client)

		rec := postPaymentConfirmed(handler,
			`{"order_id": `+strconv.Itoa(order.ID)+`, "referral_code": "REFCAFE0001"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"commission":10`)

		saleCount, err := client.Sale.Query().Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, saleCount)
	})

	t.Run("Success - Retry of the same event is idempotent", func(t *testing.T) {
		handler, client, cleanup := setupPaymentsTest(t)
		defer cleanup()

		_, order := seedAttributableOrder(t, client)
		body := `{"order_id": ` + strconv.Itoa(order.ID) + `, "referral_code": "REFCAFE0001"}`

		first := postPaymentConfirmed(handler, body)
		second := postPaymentConfirmed(handler, body)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Contains(t, second.Body.String(), `"already_attributed":true`)

		saleCount, err := client.Sale.Query().Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, saleCount)
	})

	t.Run("Failure - Unknown referral code returns 404", func(t *testing.T) {
		handler, client, cleanup := setupPaymentsTest(t)
		defer cleanup()

		_, order := seedAttributableOrder(t, client)

		rec := postPaymentConfirmed(handler,
			`{"order_id": `+strconv.Itoa(order.ID)+`, "referral_code": "REFDEADBEEF"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Failure - Order claimed under a different code returns 409", func(t *testing.T) {
		handler, client, cleanup := setupPaymentsTest(t)
		defer cleanup()

		_, order := seedAttributableOrder(t, client)
		_, err := client.Affiliate.
			Create().
			SetUserID(3).
			SetReferralCode("REFCAFE0002").
			SetCommissionRate(0.10).
			SetIsGlobal(true).
			SetRequestStatus(entaffiliate.RequestStatusApproved).
			Save(context.Background())
		require.NoError(t, err)

		first := postPaymentConfirmed(handler,
			`{"order_id": `+strconv.Itoa(order.ID)+`, "referral_code": "REFCAFE0001"}`)
		second := postPaymentConfirmed(handler,
			`{"order_id": `+strconv.Itoa(order.ID)+`, "referral_code": "REFCAFE0002"}`)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("Failure - Missing referral code fails validation", func(t *testing.T) {
		handler, _, cleanup := setupPaymentsTest(t)
		defer cleanup()

		rec := postPaymentConfirmed(handler, `{"order_id": 1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
