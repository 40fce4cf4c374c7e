package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics tracks company registrations and transfer activity.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	companiesCreated *Counter
	transfersCreated *Counter
	transferAmount   *Histogram

	companiesRegistered *Gauge

	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	statsProvider CompanyStatsProvider
}

// CompanyStatsProvider reports how many companies are registered per type.
type CompanyStatsProvider interface {
	CountByType(ctx context.Context) (map[string]int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter         metric.Meter
	Logger        *zap.Logger
	StatsProvider CompanyStatsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:         cfg.Meter,
		logger:        logger,
		stopChan:      make(chan struct{}),
		statsProvider: cfg.StatsProvider,
	}

	var err error
	bm.companiesCreated, err = NewCounter(
		cfg.Meter,
		"companies_created_total",
		"Total number of companies registered",
		"{companies}",
	)
	if err != nil {
		return nil, err
	}

	bm.transfersCreated, err = NewCounter(
		cfg.Meter,
		"transfers_created_total",
		"Total number of transfers recorded",
		"{transfers}",
	)
	if err != nil {
		return nil, err
	}

	bm.transferAmount, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "transfer_amount",
		Description: "Distribution of recorded transfer amounts",
		Unit:        "ARS",
		Boundaries:  TransferAmountBuckets,
	})
	if err != nil {
		return nil, err
	}

	bm.companiesRegistered, err = NewGauge(
		cfg.Meter,
		"companies_registered",
		"Companies currently registered",
		"{companies}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// RecordCompanyCreated counts a newly registered company by type.
func (bm *BusinessMetrics) RecordCompanyCreated(ctx context.Context, companyType string) {
	bm.companiesCreated.Inc(ctx, AttrCompanyType.String(companyType))
}

// RecordTransferCreated counts a transfer and records its amount.
func (bm *BusinessMetrics) RecordTransferCreated(ctx context.Context, amount decimal.Decimal) {
	bm.transfersCreated.Inc(ctx)
	bm.transferAmount.Record(ctx, amount.InexactFloat64())
}

// StartPeriodicCollection samples the companies_registered gauge every
// interval (default 5 minutes) until Stop is called or ctx is done.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		go bm.runPeriodicCollection(ctx, interval)
	})
}

func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.CollectCompanyStats(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			bm.CollectCompanyStats(ctx)
		}
	}
}

// CollectCompanyStats records the current company count per type.
func (bm *BusinessMetrics) CollectCompanyStats(ctx context.Context) {
	if bm.statsProvider == nil {
		bm.logger.Debug("No company stats provider configured, skipping collection")
		return
	}

	counts, err := bm.statsProvider.CountByType(ctx)
	if err != nil {
		bm.logger.Warn("Failed to count companies for metrics", zap.Error(err))
		return
	}
	for companyType, n := range counts {
		bm.companiesRegistered.Record(ctx, n, AttrCompanyType.String(companyType))
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
