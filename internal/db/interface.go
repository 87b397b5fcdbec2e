package db

import (
	"context"

	"github.com/morlord/builders-service/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	GetAnalyticsCache(ctx context.Context, queryID string) (*model.AnalyticsCacheDocument, error)
	UpsertAnalyticsCache(ctx context.Context, doc *model.AnalyticsCacheDocument) error
	DeleteAnalyticsCache(ctx context.Context, queryID string) (int64, error)
}
