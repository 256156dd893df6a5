// Package orders exposes read access to confirmed orders for the attribution
// flow. Checkout and cart management live outside this service; by the time
// an order is read here its payment has already been confirmed upstream.
package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/orderitem"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

// Service implements domain.OrderSource on top of the orders tables.
type Service struct {
	db *ent.Client
}

// NewService creates a new order source service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// GetConfirmedOrder returns one order with its line items. The total is
// recomputed from the lines rather than trusted from the order row.
func (s *Service) GetConfirmedOrder(ctx context.Context, orderID int) (*domain.ConfirmedOrder, error) {
	o, err := s.db.Order.Get(ctx, orderID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Order")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := s.db.OrderItem.
		Query().
		Where(orderitem.OrderIDEQ(orderID)).
		Order(ent.Asc(orderitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}

	order := &domain.ConfirmedOrder{
		ID:     o.ID,
		UserID: o.UserID,
		Lines:  make([]domain.OrderLine, 0, len(items)),
	}

	total := decimal.Zero
	for _, item := range items {
		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
		total = total.Add(money.FromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	order.Total = money.ToFloat(total)

	return order, nil
}
