package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/morlord/builders-service/internal/db/model"
)

func (db *Database) GetAnalyticsCache(ctx context.Context, queryID string) (*model.AnalyticsCacheDocument, error) {
	filter := bson.M{"_id": queryID}
	res := db.collection(model.AnalyticsCacheCollection).FindOne(ctx, filter)

	var doc model.AnalyticsCacheDocument
	err := res.Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     queryID,
				Message: "analytics cache entry not found",
			}
		}
		return nil, err
	}

	return &doc, nil
}

func (db *Database) UpsertAnalyticsCache(ctx context.Context, doc *model.AnalyticsCacheDocument) error {
	filter := bson.M{"_id": doc.QueryID}
	update := bson.M{"$set": bson.M{
		"rows":       doc.Rows,
		"fetched_at": doc.FetchedAt,
		"expires_at": doc.ExpiresAt,
	}}
	_, err := db.collection(model.AnalyticsCacheCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))

	return err
}

// DeleteAnalyticsCache drops the cached entry for the given query, returning
// how many documents were removed. Used by the revalidate routes.
func (db *Database) DeleteAnalyticsCache(ctx context.Context, queryID string) (int64, error) {
	res, err := db.collection(model.AnalyticsCacheCollection).
		DeleteOne(ctx, bson.M{"_id": queryID})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}
