package container

import (
	"github.com/jordanlanch/affiliatedb/config"
	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/api/handlers"
	"github.com/jordanlanch/affiliatedb/pkg/attribution"
	"github.com/jordanlanch/affiliatedb/pkg/audit"
	"github.com/jordanlanch/affiliatedb/pkg/auth"
	"github.com/jordanlanch/affiliatedb/pkg/cache"
	"github.com/jordanlanch/affiliatedb/pkg/database"
	"github.com/jordanlanch/affiliatedb/pkg/jobs"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
	"github.com/jordanlanch/affiliatedb/pkg/metrics"
	"github.com/jordanlanch/affiliatedb/pkg/orders"
	"github.com/jordanlanch/affiliatedb/pkg/reporting"
	"github.com/jordanlanch/affiliatedb/pkg/withdrawal"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger logger.Logger

	// Infrastructure
	DB      *database.Client
	Cache   *cache.Client
	Metrics *metrics.Metrics

	// Services
	AuditLogger        *audit.Service
	AffiliateService   *affiliate.Service
	OrderService       *orders.Service
	LedgerService      *ledger.Service
	AttributionService *attribution.Service
	WithdrawalService  *withdrawal.Service
	ReportingService   *reporting.Service

	// Auth
	TokenBlacklist *auth.TokenBlacklist

	// Jobs
	Cron *jobs.CronManager

	// Handlers
	AffiliateHandler *handlers.AffiliateHandler
	FinanceHandler   *handlers.FinanceHandler
	PaymentsHandler  *handlers.PaymentsHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel, cfg.LogFormat),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	c.Logger.Info("Container initialized successfully",
		"environment", cfg.APIEnvironment,
		"database", "connected",
		"cache", "connected")

	return c, nil
}

// initInfrastructure initializes database and cache connections
func (c *Container) initInfrastructure() error {
	var err error

	// Database
	c.DB, err = database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	// Cache
	c.Cache, err = cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		return err
	}

	c.Metrics = metrics.New()

	return nil
}

// initServices initializes all domain services
func (c *Container) initServices() {
	c.TokenBlacklist = auth.NewTokenBlacklist(c.Cache)

	c.AuditLogger = audit.NewService(c.DB.Ent)
	c.AffiliateService = affiliate.NewService(c.DB.Ent, c.AuditLogger, c.Logger)
	c.OrderService = orders.NewService(c.DB.Ent)
	c.LedgerService = ledger.NewService(c.DB.Ent, c.Cache, c.AuditLogger, c.Logger)
	c.AttributionService = attribution.NewService(
		c.DB.Ent,
		c.AffiliateService,
		c.OrderService,
		c.LedgerService,
		c.AuditLogger,
		c.Logger,
	)
	c.WithdrawalService = withdrawal.NewService(
		c.DB.Ent,
		c.LedgerService,
		c.AuditLogger,
		c.Logger,
		c.Config.MinWithdrawalAmount,
	)
	c.ReportingService = reporting.NewService(c.DB.Ent, c.LedgerService)

	c.Cron = jobs.NewCronManager(c.LedgerService, c.Metrics, c.Config.ReconcileCronSpec, c.Logger)

	c.Logger.Info("Services initialized",
		"affiliate_service", "ready",
		"ledger_service", "ready",
		"attribution_service", "ready",
		"withdrawal_service", "ready")
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.AffiliateHandler = handlers.NewAffiliateHandler(c.AffiliateService, c.Config.AffiliateBaseURL)
	c.FinanceHandler = handlers.NewFinanceHandler(
		c.AffiliateService,
		c.LedgerService,
		c.WithdrawalService,
		c.ReportingService,
		c.Metrics,
	)
	c.PaymentsHandler = handlers.NewPaymentsHandler(c.AttributionService, c.Metrics)

	c.Logger.Info("Handlers initialized")
}

// Close closes all resources (database, cache connections)
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if c.Cron != nil {
		c.Cron.Stop()
	}

	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database", "error", err)
		return err
	}

	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache", "error", err)
		return err
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
