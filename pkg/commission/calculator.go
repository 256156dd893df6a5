// Package commission computes commission amounts for order lines. It is
// pure: no database access, no side effects. Amounts stay in decimal form
// until the caller persists them.
package commission

import (
	"github.com/shopspring/decimal"

	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

var oneHundred = decimal.NewFromInt(100)

// LineCommission is the commission computed for one eligible order line.
type LineCommission struct {
	ProductID int
	Quantity  int
	UnitPrice float64
	Terms     affiliate.CommissionTerms
	Amount    decimal.Decimal
}

// Breakdown is the itemized result for one order: only lines that earned a
// commission appear in Lines.
type Breakdown struct {
	Lines []LineCommission
	Total decimal.Decimal
}

// ForLine computes the commission for one order line under resolved terms.
//
//	percentage: unit_price * quantity * value / 100
//	fixed:      value * quantity (value is per unit)
//	none:       zero
func ForLine(line domain.OrderLine, terms affiliate.CommissionTerms) decimal.Decimal {
	if !terms.Eligible() {
		return decimal.Zero
	}

	qty := decimal.NewFromInt(int64(line.Quantity))
	value := money.FromFloat(terms.Value)

	switch terms.Kind {
	case affiliate.TermsPercentage:
		price := money.FromFloat(line.UnitPrice)
		return price.Mul(qty).Mul(value).Div(oneHundred)
	case affiliate.TermsFixed:
		return value.Mul(qty)
	default:
		return decimal.Zero
	}
}

// ForOrder computes the itemized breakdown for a set of order lines, each
// paired with its resolved terms. Lines that earn nothing are excluded from
// the breakdown. The total is not rounded; rounding happens at persistence.
func ForOrder(lines []domain.OrderLine, terms []affiliate.CommissionTerms) Breakdown {
	bd := Breakdown{Total: decimal.Zero}
	for i, line := range lines {
		t := terms[i]
		amount := ForLine(line, t)
		if amount.IsZero() {
			continue
		}
		bd.Lines = append(bd.Lines, LineCommission{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Terms:     t,
			Amount:    amount,
		})
		bd.Total = bd.Total.Add(amount)
	}
	return bd
}
