package db

import (
	"context"
	"time"

	"github.com/morlord/builders-service/internal/db/model"
	"github.com/morlord/builders-service/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetAnalyticsCache(ctx context.Context, queryID string) (result *model.AnalyticsCacheDocument, err error) {
	//nolint:errcheck
	d.run("GetAnalyticsCache", func() error {
		result, err = d.db.GetAnalyticsCache(ctx, queryID)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertAnalyticsCache(ctx context.Context, doc *model.AnalyticsCacheDocument) error {
	return d.run("UpsertAnalyticsCache", func() error {
		return d.db.UpsertAnalyticsCache(ctx, doc)
	})
}

func (d *DbWithMetrics) DeleteAnalyticsCache(ctx context.Context, queryID string) (deleted int64, err error) {
	//nolint:errcheck
	d.run("DeleteAnalyticsCache", func() error {
		deleted, err = d.db.DeleteAnalyticsCache(ctx, queryID)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
