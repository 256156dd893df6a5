package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jordanlanch/affiliatedb/config"
	custommw "github.com/jordanlanch/affiliatedb/pkg/api/middleware"
	"github.com/jordanlanch/affiliatedb/pkg/container"
	custommiddleware "github.com/jordanlanch/affiliatedb/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Wire infrastructure, services and handlers
	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer c.Close()

	// Nightly ledger reconciliation
	if err := c.Cron.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	c.Cron.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	paymentsRateLimiter := custommiddleware.NewRateLimiter(300, 50)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(ec echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger.Info("request",
				"method", ec.Request().Method,
				"uri", v.URI,
				"status", v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(c.Metrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]any{
			"name":        "AffiliateDB API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(ec echo.Context) error {
		ctx, cancel := context.WithTimeout(ec.Request().Context(), 2*time.Second)
		defer cancel()

		if err := c.DB.Ping(ctx); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := c.Cache.Redis.Ping(ctx).Result(); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return ec.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", c.Metrics.Handler())

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Payment-confirmed events from the payments pipeline. Verified upstream,
	// rate limited here.
	v1.POST("/payments/confirmed", c.PaymentsHandler.PaymentConfirmed, paymentsRateLimiter.RateLimitMiddleware())

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, c.TokenBlacklist, c.DB.Ent))
	requireAdmin := custommiddleware.RequireAdmin(c.DB.Ent)
	{
		affiliatesGroup := protected.Group("/affiliates")
		{
			affiliatesGroup.POST("/request", c.AffiliateHandler.RequestAffiliation)
			affiliatesGroup.GET("/link", c.AffiliateHandler.GetAffiliateLink)
			affiliatesGroup.GET("/sales", c.AffiliateHandler.ListMySales)

			affiliatesGroup.GET("/requests", c.AffiliateHandler.ListRequests, requireAdmin)
			affiliatesGroup.PUT("/:id/status", c.AffiliateHandler.ProcessRequest, requireAdmin)
			affiliatesGroup.PUT("/:id/products/:product_id/terms", c.AffiliateHandler.UpsertProductTerms, requireAdmin)
		}

		financeGroup := protected.Group("/finance")
		{
			financeGroup.GET("/balance", c.FinanceHandler.GetBalance)
			financeGroup.GET("/transactions", c.FinanceHandler.ListTransactions)
			financeGroup.POST("/withdrawals", c.FinanceHandler.CreateWithdrawal)
			// Admins see every request, affiliates only their own.
			financeGroup.GET("/withdrawals", c.FinanceHandler.ListWithdrawals)

			financeGroup.PUT("/withdrawals/:id", c.FinanceHandler.ProcessWithdrawal, requireAdmin)
			financeGroup.POST("/adjustments", c.FinanceHandler.PostAdjustment, requireAdmin)
			financeGroup.GET("/reports", c.FinanceHandler.GetReport, requireAdmin)
		}
	}

	// Start server with graceful shutdown
	go func() {
		addr := cfg.APIHost + ":" + cfg.APIPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()
	log.Printf("🚀 Server started on %s:%s", cfg.APIHost, cfg.APIPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server shutdown error: %v", err)
	}
	log.Printf("✅ Server stopped")
}
