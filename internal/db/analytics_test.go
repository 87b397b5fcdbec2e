//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morlord/builders-service/internal/db"
	"github.com/morlord/builders-service/internal/db/model"
)

func TestAnalyticsCache(t *testing.T) {
	ctx := t.Context()

	t.Run("not found", func(t *testing.T) {
		doc, err := testDB.GetAnalyticsCache(ctx, "unknown-query")
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, doc)
	})

	t.Run("upsert and get", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Millisecond)
		doc := &model.AnalyticsCacheDocument{
			QueryID:   "query-1",
			Rows:      []map[string]any{{"staked": "100", "network": "arbitrum"}},
			FetchedAt: now,
			ExpiresAt: now.Add(time.Minute),
		}
		err := testDB.UpsertAnalyticsCache(ctx, doc)
		require.NoError(t, err)

		found, err := testDB.GetAnalyticsCache(ctx, "query-1")
		require.NoError(t, err)
		assert.Equal(t, doc.Rows, found.Rows)
		assert.False(t, found.Stale(now))

		// upsert again replaces the entry
		doc.Rows = []map[string]any{{"staked": "200", "network": "base"}}
		err = testDB.UpsertAnalyticsCache(ctx, doc)
		require.NoError(t, err)

		found, err = testDB.GetAnalyticsCache(ctx, "query-1")
		require.NoError(t, err)
		assert.Equal(t, doc.Rows, found.Rows)
	})

	t.Run("delete", func(t *testing.T) {
		now := time.Now().UTC()
		doc := &model.AnalyticsCacheDocument{
			QueryID:   "query-2",
			Rows:      []map[string]any{},
			FetchedAt: now,
			ExpiresAt: now.Add(time.Minute),
		}
		require.NoError(t, testDB.UpsertAnalyticsCache(ctx, doc))

		deleted, err := testDB.DeleteAnalyticsCache(ctx, "query-2")
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)

		// deleting again is a no-op
		deleted, err = testDB.DeleteAnalyticsCache(ctx, "query-2")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
