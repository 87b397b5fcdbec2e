package model

import "time"

const AnalyticsCacheCollection = "analytics_cache"

// AnalyticsCacheDocument is one cached analytics query result. Entries are
// served while fresh, refreshed by the background poller and dropped either
// by the mongo TTL index or an explicit revalidate call.
type AnalyticsCacheDocument struct {
	QueryID   string           `bson:"_id"`
	Rows      []map[string]any `bson:"rows"`
	FetchedAt time.Time        `bson:"fetched_at"`
	ExpiresAt time.Time        `bson:"expires_at"`
}

// Stale reports whether the entry is past its TTL but not yet evicted. Stale
// entries are still served (stale-while-revalidate) while a refresh runs.
func (d *AnalyticsCacheDocument) Stale(now time.Time) bool {
	return now.After(d.ExpiresAt)
}
