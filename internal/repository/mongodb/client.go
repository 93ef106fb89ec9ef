package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func Connect(ctx context.Context, dsn string) (*mongo.Client, error) {
	const op = "mongodb.Connect"

	client, err := mongo.Connect(options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return client, nil
}

// Index is a named index a repository wants to exist.
type Index = mongo.IndexModel

// EnsureIndexes creates missing indexes. Existing ones with the same keys are left alone.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection, indexes ...Index) error {
	if len(indexes) == 0 {
		return nil
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return WrapError("mongodb.EnsureIndexes "+coll.Name(), err)
	}
	return nil
}
