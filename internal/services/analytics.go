package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/morlord/builders-service/internal/db"
	"github.com/morlord/builders-service/internal/db/model"
	"github.com/morlord/builders-service/internal/observability/metrics"
	"github.com/morlord/builders-service/internal/utils/poller"
)

type AnalyticsView struct {
	QueryID   string           `json:"queryId"`
	Rows      []map[string]any `json:"rows"`
	Cached    bool             `json:"cached"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// GetAnalytics serves analytics rows cache-first. Fresh entries are returned
// as-is, a miss fetches from the upstream API and fills the cache, and when
// the upstream is down a stale entry is still better than nothing.
func (s *Service) GetAnalytics(ctx context.Context, queryID string) (*AnalyticsView, error) {
	now := time.Now().UTC()

	cached, err := s.db.GetAnalyticsCache(ctx, queryID)
	if err != nil && !db.IsNotFoundError(err) {
		log.Ctx(ctx).Warn().Err(err).Str("query_id", queryID).Msg("analytics cache lookup failed")
	}

	if cached != nil && !cached.Stale(now) {
		metrics.RecordAnalyticsCacheHit()
		return &AnalyticsView{
			QueryID:   queryID,
			Rows:      cached.Rows,
			Cached:    true,
			FetchedAt: cached.FetchedAt,
		}, nil
	}
	metrics.RecordAnalyticsCacheMiss()

	rows, fetchErr := s.fetchAndCacheAnalytics(ctx, queryID, now)
	if fetchErr != nil {
		if cached != nil {
			log.Ctx(ctx).Warn().
				Err(fetchErr).
				Str("query_id", queryID).
				Msg("analytics fetch failed, serving stale cache entry")
			return &AnalyticsView{
				QueryID:   queryID,
				Rows:      cached.Rows,
				Cached:    true,
				FetchedAt: cached.FetchedAt,
			}, nil
		}
		return nil, fetchErr
	}

	return &AnalyticsView{
		QueryID:   queryID,
		Rows:      rows,
		FetchedAt: now,
	}, nil
}

func (s *Service) fetchAndCacheAnalytics(ctx context.Context, queryID string, now time.Time) ([]map[string]any, error) {
	rows, err := s.dune.GetQueryResults(ctx, queryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analytics: %w", err)
	}

	doc := &model.AnalyticsCacheDocument{
		QueryID:   queryID,
		Rows:      rows,
		FetchedAt: now,
		ExpiresAt: now.Add(s.cfg.Cache.AnalyticsTTL),
	}
	if err := s.db.UpsertAnalyticsCache(ctx, doc); err != nil {
		// serving the fetched rows matters more than caching them
		log.Ctx(ctx).Warn().Err(err).Str("query_id", queryID).Msg("failed to cache analytics rows")
	}

	return rows, nil
}

// RevalidateAnalytics drops the cached entry for queryID so the next read
// fetches fresh rows. Returns how many entries were removed.
func (s *Service) RevalidateAnalytics(ctx context.Context, queryID string) (int64, error) {
	deleted, err := s.db.DeleteAnalyticsCache(ctx, queryID)
	if err != nil {
		return 0, fmt.Errorf("failed to revalidate analytics cache: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("query_id", queryID).
		Int64("deleted", deleted).
		Msg("analytics cache revalidated")
	return deleted, nil
}

// StartAnalyticsRefresher keeps the configured analytics queries warm in the
// cache so dashboard reads rarely wait on the upstream API.
func (s *Service) StartAnalyticsRefresher(ctx context.Context) {
	if !s.cfg.Poller.Enabled || len(s.cfg.Dune.Queries) == 0 {
		log.Ctx(ctx).Info().Msg("analytics refresher disabled")
		return
	}

	refresher := poller.NewPoller(
		s.cfg.Poller.AnalyticsRefreshInterval,
		metrics.RecordPollerDuration("analytics_refresh", s.refreshAnalytics),
	)
	go refresher.Start(ctx)
}

func (s *Service) refreshAnalytics(ctx context.Context) error {
	now := time.Now().UTC()

	var errs []error
	for _, queryID := range s.cfg.Dune.Queries {
		if _, err := s.fetchAndCacheAnalytics(ctx, queryID, now); err != nil {
			errs = append(errs, fmt.Errorf("query %s: %w", queryID, err))
		}
	}

	return errors.Join(errs...)
}
