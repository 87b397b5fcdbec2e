package model

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/morlord/builders-service/internal/config"
)

// ttlEvictionDelaySeconds keeps evicted entries around for one extra hour so
// stale-while-revalidate can still serve them shortly after expiry.
const ttlEvictionDelaySeconds = 3600

// Setup connects to the database and makes sure the collections and indexes
// this service relies on exist.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	database := client.Database(cfg.DbName)

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(ttlEvictionDelaySeconds),
	}
	_, err = database.Collection(AnalyticsCacheCollection).Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create ttl index on %s: %w", AnalyticsCacheCollection, err)
	}

	return nil
}
