package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jordanlanch/affiliatedb/config"
	"github.com/jordanlanch/affiliatedb/pkg/database"
	"github.com/jordanlanch/affiliatedb/pkg/testdata"
)

func main() {
	users := flag.Int("users", 50, "number of users to create")
	products := flag.Int("products", 20, "number of products to create")
	affiliates := flag.Int("affiliates", 10, "number of approved affiliates to create")
	orders := flag.Int("orders", 100, "number of delivered orders to create")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	seedCfg := testdata.SeedConfig{
		Users:          *users,
		Products:       *products,
		Affiliates:     *affiliates,
		Orders:         *orders,
		CommissionRate: cfg.DefaultCommissionRate,
	}

	gen := testdata.NewGenerator(db.Ent)
	if err := gen.Seed(ctx, seedCfg); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("seeded %d users, %d products, %d affiliates, %d orders",
		seedCfg.Users, seedCfg.Products, seedCfg.Affiliates, seedCfg.Orders)
}
