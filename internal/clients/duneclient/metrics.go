package duneclient

import (
	"context"
	"time"

	"github.com/morlord/builders-service/internal/observability/metrics"
)

type duneClientWithMetrics struct {
	dune DuneInterface
}

func NewDuneClientWithMetrics(dune DuneInterface) *duneClientWithMetrics {
	return &duneClientWithMetrics{dune: dune}
}

func (d *duneClientWithMetrics) GetQueryResults(ctx context.Context, queryID string) ([]map[string]any, error) {
	return runDuneClientMethodWithMetrics("GetQueryResults", func() ([]map[string]any, error) {
		return d.dune.GetQueryResults(ctx, queryID)
	})
}

func runDuneClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordDuneClientLatency(duration, method, err != nil)
	return v, err
}
