package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

func TestForLine(t *testing.T) {
	t.Run("Success - Percentage terms", func(t *testing.T) {
		line := domain.OrderLine{ProductID: 1, Quantity: 1, UnitPrice: 100.0}
		amount := ForLine(line, affiliate.Percentage(10))
		assert.Equal(t, 10.0, money.ToFloat(amount))
	})

	t.Run("Success - Fixed terms are per unit", func(t *testing.T) {
		line := domain.OrderLine{ProductID: 2, Quantity: 2, UnitPrice: 50.0}
		amount := ForLine(line, affiliate.FixedPerUnit(8.0))
		assert.Equal(t, 16.0, money.ToFloat(amount))
	})

	t.Run("Success - No commission terms yield zero", func(t *testing.T) {
		line := domain.OrderLine{ProductID: 3, Quantity: 5, UnitPrice: 99.99}
		amount := ForLine(line, affiliate.NoCommission())
		assert.True(t, amount.IsZero())
	})

	t.Run("Success - Zero value percentage yields zero", func(t *testing.T) {
		line := domain.OrderLine{ProductID: 4, Quantity: 1, UnitPrice: 10.0}
		amount := ForLine(line, affiliate.Percentage(0))
		assert.True(t, amount.IsZero())
	})

	t.Run("Success - No mid-calculation rounding", func(t *testing.T) {
		// 3 units at 9.99 with 7.5%: 29.97 * 0.075 = 2.24775, still exact here
		line := domain.OrderLine{ProductID: 5, Quantity: 3, UnitPrice: 9.99}
		amount := ForLine(line, affiliate.Percentage(7.5))
		assert.True(t, amount.Equal(decimal.RequireFromString("2.24775")))
		assert.Equal(t, 2.25, money.ToFloat(amount))
	})
}

func TestForOrder(t *testing.T) {
	t.Run("Success - Two line order with mixed terms", func(t *testing.T) {
		lines := []domain.OrderLine{
			{ProductID: 1, Quantity: 1, UnitPrice: 100.0},
			{ProductID: 2, Quantity: 2, UnitPrice: 50.0},
		}
		terms := []affiliate.CommissionTerms{
			affiliate.Percentage(10),
			affiliate.FixedPerUnit(8.0),
		}

		bd := ForOrder(lines, terms)

		assert.Len(t, bd.Lines, 2)
		assert.Equal(t, 10.0, money.ToFloat(bd.Lines[0].Amount))
		assert.Equal(t, 16.0, money.ToFloat(bd.Lines[1].Amount))
		assert.Equal(t, 26.0, money.ToFloat(bd.Total))
	})

	t.Run("Success - Ineligible lines excluded from breakdown", func(t *testing.T) {
		lines := []domain.OrderLine{
			{ProductID: 1, Quantity: 1, UnitPrice: 100.0},
			{ProductID: 2, Quantity: 4, UnitPrice: 25.0},
		}
		terms := []affiliate.CommissionTerms{
			affiliate.NoCommission(),
			affiliate.Percentage(5),
		}

		bd := ForOrder(lines, terms)

		assert.Len(t, bd.Lines, 1)
		assert.Equal(t, 2, bd.Lines[0].ProductID)
		assert.Equal(t, 5.0, money.ToFloat(bd.Total))
	})

	t.Run("Success - All lines ineligible yields zero total", func(t *testing.T) {
		lines := []domain.OrderLine{
			{ProductID: 1, Quantity: 1, UnitPrice: 100.0},
		}
		terms := []affiliate.CommissionTerms{
			affiliate.NoCommission(),
		}

		bd := ForOrder(lines, terms)

		assert.Empty(t, bd.Lines)
		assert.True(t, bd.Total.IsZero())
	})

	t.Run("Success - Rounding error does not compound across lines", func(t *testing.T) {
		// Ten lines each earning 0.105 exactly: total must be 1.05, not the
		// drifted sum ten float additions would give.
		lines := make([]domain.OrderLine, 10)
		terms := make([]affiliate.CommissionTerms, 10)
		for i := range lines {
			lines[i] = domain.OrderLine{ProductID: i + 1, Quantity: 1, UnitPrice: 1.05}
			terms[i] = affiliate.Percentage(10)
		}

		bd := ForOrder(lines, terms)

		assert.True(t, bd.Total.Equal(decimal.RequireFromString("1.05")))
	})
}
