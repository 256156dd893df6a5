package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/order"
	"github.com/jordanlanch/affiliatedb/ent/user"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

// SeedConfig configures how much data to generate
type SeedConfig struct {
	Users          int
	Products       int
	Affiliates     int // approved affiliates, taken from the generated users
	Orders         int
	CommissionRate float64
}

// DefaultSeedConfig returns a config suitable for local development
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Users:          50,
		Products:       20,
		Affiliates:     10,
		Orders:         100,
		CommissionRate: 0.05,
	}
}

// Generator seeds the database with fake shop data for local development
type Generator struct {
	db *ent.Client
}

// NewGenerator creates a new test data generator
func NewGenerator(db *ent.Client) *Generator {
	return &Generator{db: db}
}

// Seed populates users, products, affiliates and delivered orders
func (g *Generator) Seed(ctx context.Context, cfg SeedConfig) error {
	users, err := g.seedUsers(ctx, cfg.Users)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	products, err := g.seedProducts(ctx, cfg.Products)
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	if err := g.seedAffiliates(ctx, users, cfg.Affiliates, cfg.CommissionRate); err != nil {
		return fmt.Errorf("failed to seed affiliates: %w", err)
	}

	if err := g.seedOrders(ctx, users, products, cfg.Orders); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	return nil
}

func (g *Generator) seedUsers(ctx context.Context, count int) ([]*ent.User, error) {
	users := make([]*ent.User, 0, count)
	for i := 0; i < count; i++ {
		u, err := g.db.User.Create().
			SetName(gofakeit.Name()).
			SetEmail(fmt.Sprintf("%d.%s", i, gofakeit.Email())).
			SetPasswordHash(gofakeit.UUID()).
			SetRole(user.RoleUser).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (g *Generator) seedProducts(ctx context.Context, count int) ([]*ent.Product, error) {
	products := make([]*ent.Product, 0, count)
	for i := 0; i < count; i++ {
		p, err := g.db.Product.Create().
			SetName(gofakeit.ProductName()).
			SetDescription(gofakeit.ProductDescription()).
			SetPrice(money.Round(gofakeit.Price(5, 500))).
			SetStock(gofakeit.Number(0, 1000)).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (g *Generator) seedAffiliates(ctx context.Context, users []*ent.User, count int, rate float64) error {
	if count > len(users) {
		count = len(users)
	}
	for i := 0; i < count; i++ {
		code := fmt.Sprintf("REF%08X", rand.Uint32())
		_, err := g.db.Affiliate.Create().
			SetUserID(users[i].ID).
			SetReferralCode(code).
			SetCommissionRate(rate).
			SetIsGlobal(true).
			SetRequestStatus(affiliate.RequestStatusApproved).
			Save(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) seedOrders(ctx context.Context, users []*ent.User, products []*ent.Product, count int) error {
	if len(users) == 0 || len(products) == 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		buyer := users[rand.Intn(len(users))]

		o, err := g.db.Order.Create().
			SetUserID(buyer.ID).
			SetStatus(order.StatusDelivered).
			SetTotal(0).
			Save(ctx)
		if err != nil {
			return err
		}

		total := 0.0
		lines := 1 + rand.Intn(3)
		for j := 0; j < lines; j++ {
			p := products[rand.Intn(len(products))]
			qty := 1 + rand.Intn(5)

			_, err := g.db.OrderItem.Create().
				SetOrderID(o.ID).
				SetProductID(p.ID).
				SetQuantity(qty).
				SetPrice(p.Price).
				Save(ctx)
			if err != nil {
				return err
			}
			total = money.Add(total, p.Price*float64(qty))
		}

		if _, err := g.db.Order.UpdateOneID(o.ID).SetTotal(total).Save(ctx); err != nil {
			return err
		}
	}
	return nil
}
