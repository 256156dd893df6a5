package jobs

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/robfig/cron/v3"

	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
	"github.com/jordanlanch/affiliatedb/pkg/metrics"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	ledger  *ledger.Service
	metrics *metrics.Metrics
	spec    string
	logger  logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(led *ledger.Service, m *metrics.Metrics, reconcileSpec string, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		ledger:  led,
		metrics: m,
		spec:    reconcileSpec,
		logger:  log,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Info("Setting up cron jobs", "reconcile_spec", cm.spec)

	_, err := cm.cron.AddFunc(cm.spec, func() {
		cm.logger.Info("Running ledger reconciliation job")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		drifts := cm.ledger.ReconcileAll(ctx)
		if len(drifts) == 0 {
			cm.logger.Info("Ledger reconciliation completed, no drift found")
			return
		}

		for _, drift := range drifts {
			cm.logger.Error("Ledger drift detected", "error", drift)
			if cm.metrics != nil {
				cm.metrics.LedgerDriftDetected.Inc()
			}
			sentry.CaptureException(drift)
		}
		cm.logger.Error("Ledger reconciliation completed with drift", "count", len(drifts))
	})
	if err != nil {
		return err
	}

	cm.logger.Info("Cron jobs configured")
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Info("Starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Info("Stopping cron scheduler")
	cm.cron.Stop()
}
